// file: internals/features/membership/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	MemberLocalityId uuid.UUID `gorm:"type:uuid;not null;column:member_locality_id" json:"member_locality_id"`

	// Penempatan SAAT INI (distrik & kelompok kecil). Filter "local-only" pada
	// rekap membaca kolom ini apa adanya, bukan histori penempatan per pekan.
	MemberDistrictId *uuid.UUID `gorm:"type:uuid;column:member_district_id" json:"member_district_id,omitempty"`
	MemberGroupId    *uuid.UUID `gorm:"type:uuid;column:member_group_id"    json:"member_group_id,omitempty"`

	MemberFullName string  `gorm:"not null;column:member_full_name" json:"member_full_name"`
	MemberNote     *string `gorm:"column:member_note"               json:"member_note,omitempty"`

	// Pasangan tanggal lama (sebelum ada tabel enrollment_periods).
	// Masih dipakai resolver sebagai fallback kalau member belum punya periode.
	MemberLegacyJoinDate  *time.Time `gorm:"type:date;column:member_legacy_join_date"  json:"member_legacy_join_date,omitempty"`
	MemberLegacyLeaveDate *time.Time `gorm:"type:date;column:member_legacy_leave_date" json:"member_legacy_leave_date,omitempty"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index"          json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
