// file: internals/features/membership/enrollment/dto/enrollment_period_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "churchstats_backend/internals/features/membership/enrollment/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON) — periode baru selalu ditambah, tidak pernah menghapus otomatis
type CreateEnrollmentPeriodRequest struct {
	EnrollmentPeriodMemberId uuid.UUID `json:"enrollment_period_member_id" validate:"required,uuid4"`

	EnrollmentPeriodNumber int `json:"enrollment_period_number" validate:"required,min=1"`

	EnrollmentPeriodJoinDate  *time.Time `json:"enrollment_period_join_date"  validate:"omitempty"`
	EnrollmentPeriodLeaveDate *time.Time `json:"enrollment_period_leave_date" validate:"omitempty"`

	EnrollmentPeriodIsUncertain bool    `json:"enrollment_period_is_uncertain"`
	EnrollmentPeriodMemo        *string `json:"enrollment_period_memo" validate:"omitempty,max=500"`
}

func (r *CreateEnrollmentPeriodRequest) ToModel() *m.EnrollmentPeriodModel {
	return &m.EnrollmentPeriodModel{
		EnrollmentPeriodMemberId:    r.EnrollmentPeriodMemberId,
		EnrollmentPeriodNumber:      r.EnrollmentPeriodNumber,
		EnrollmentPeriodJoinDate:    r.EnrollmentPeriodJoinDate,
		EnrollmentPeriodLeaveDate:   r.EnrollmentPeriodLeaveDate,
		EnrollmentPeriodIsUncertain: r.EnrollmentPeriodIsUncertain,
		EnrollmentPeriodMemo:        r.EnrollmentPeriodMemo,
	}
}

// Update (partial JSON) — koreksi tanggal / flag / memo
type UpdateEnrollmentPeriodRequest struct {
	EnrollmentPeriodJoinDate  *time.Time `json:"enrollment_period_join_date"  validate:"omitempty"`
	EnrollmentPeriodLeaveDate *time.Time `json:"enrollment_period_leave_date" validate:"omitempty"`

	EnrollmentPeriodIsUncertain *bool   `json:"enrollment_period_is_uncertain" validate:"omitempty"`
	EnrollmentPeriodMemo        *string `json:"enrollment_period_memo"         validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type EnrollmentPeriodResponse struct {
	EnrollmentPeriodId       uuid.UUID `json:"enrollment_period_id"`
	EnrollmentPeriodMemberId uuid.UUID `json:"enrollment_period_member_id"`
	EnrollmentPeriodNumber   int       `json:"enrollment_period_number"`

	EnrollmentPeriodJoinDate  *time.Time `json:"enrollment_period_join_date,omitempty"`
	EnrollmentPeriodLeaveDate *time.Time `json:"enrollment_period_leave_date,omitempty"`

	EnrollmentPeriodIsUncertain bool    `json:"enrollment_period_is_uncertain"`
	EnrollmentPeriodMemo        *string `json:"enrollment_period_memo,omitempty"`
}

func ToEnrollmentPeriodResponse(p *m.EnrollmentPeriodModel) EnrollmentPeriodResponse {
	return EnrollmentPeriodResponse{
		EnrollmentPeriodId:          p.EnrollmentPeriodId,
		EnrollmentPeriodMemberId:    p.EnrollmentPeriodMemberId,
		EnrollmentPeriodNumber:      p.EnrollmentPeriodNumber,
		EnrollmentPeriodJoinDate:    p.EnrollmentPeriodJoinDate,
		EnrollmentPeriodLeaveDate:   p.EnrollmentPeriodLeaveDate,
		EnrollmentPeriodIsUncertain: p.EnrollmentPeriodIsUncertain,
		EnrollmentPeriodMemo:        p.EnrollmentPeriodMemo,
	}
}

// Item daftar review ketidakpastian keanggotaan (halaman admin)
type UncertainEnrollmentItem struct {
	MemberId       uuid.UUID                  `json:"member_id"`
	MemberFullName string                     `json:"member_full_name"`
	PeriodLabel    string                     `json:"period_label"`
	Periods        []EnrollmentPeriodResponse `json:"periods"`
}
