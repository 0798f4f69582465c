// file: internals/features/membership/enrollment/model/enrollment_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentPeriodModel struct {
	EnrollmentPeriodId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_period_id" json:"enrollment_period_id"`

	EnrollmentPeriodMemberId uuid.UUID `gorm:"type:uuid;not null;column:enrollment_period_member_id;uniqueIndex:uq_enrollment_period_member_number" json:"enrollment_period_member_id"`

	// 1-based, unik per member (urutan periode keanggotaan)
	EnrollmentPeriodNumber int `gorm:"not null;column:enrollment_period_number;uniqueIndex:uq_enrollment_period_member_number" json:"enrollment_period_number"`

	// NULL join = sudah anggota sejak sebelum pencatatan; NULL leave = masih anggota
	EnrollmentPeriodJoinDate  *time.Time `gorm:"type:date;column:enrollment_period_join_date"  json:"enrollment_period_join_date,omitempty"`
	EnrollmentPeriodLeaveDate *time.Time `gorm:"type:date;column:enrollment_period_leave_date" json:"enrollment_period_leave_date,omitempty"`

	// Flag review: tanggalnya diragukan (hasil migrasi data lama / input tidak pasti).
	// TIDAK mengubah aturan containment, hanya muncul di daftar review admin.
	EnrollmentPeriodIsUncertain bool `gorm:"not null;default:false;column:enrollment_period_is_uncertain" json:"enrollment_period_is_uncertain"`

	EnrollmentPeriodMemo *string `gorm:"column:enrollment_period_memo" json:"enrollment_period_memo,omitempty"`

	EnrollmentPeriodCreatedAt time.Time  `gorm:"column:enrollment_period_created_at;autoCreateTime" json:"enrollment_period_created_at"`
	EnrollmentPeriodUpdatedAt *time.Time `gorm:"column:enrollment_period_updated_at;autoUpdateTime" json:"enrollment_period_updated_at,omitempty"`
}

func (EnrollmentPeriodModel) TableName() string { return "enrollment_periods" }
