// file: internals/features/attendance/events/dto/attendance_event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "churchstats_backend/internals/features/attendance/events/model"
)

/* =========================================================
 * REQUESTS — entri laporan per sumber
 * ========================================================= */

type CreatePrimaryAttendanceRequest struct {
	PrimaryAttendanceMemberId   uuid.UUID `json:"primary_attendance_member_id" validate:"required,uuid4"`
	PrimaryAttendanceLocalityId uuid.UUID `json:"primary_attendance_locality_id" validate:"required,uuid4"`
	PrimaryAttendanceDate       time.Time `json:"primary_attendance_date" validate:"required"`
	PrimaryAttendanceAttended   *bool     `json:"primary_attendance_attended" validate:"omitempty"`
	PrimaryAttendanceMemo       *string   `json:"primary_attendance_memo" validate:"omitempty,max=500"`
}

func (r *CreatePrimaryAttendanceRequest) ToModel() *m.PrimaryAttendanceModel {
	attended := true
	if r.PrimaryAttendanceAttended != nil {
		attended = *r.PrimaryAttendanceAttended
	}
	return &m.PrimaryAttendanceModel{
		PrimaryAttendanceMemberId:   r.PrimaryAttendanceMemberId,
		PrimaryAttendanceLocalityId: r.PrimaryAttendanceLocalityId,
		PrimaryAttendanceDate:       r.PrimaryAttendanceDate,
		PrimaryAttendanceAttended:   attended,
		PrimaryAttendanceMemo:       r.PrimaryAttendanceMemo,
	}
}

type CreateGroupAttendanceRequest struct {
	GroupAttendanceMemberId   uuid.UUID  `json:"group_attendance_member_id" validate:"required,uuid4"`
	GroupAttendanceLocalityId uuid.UUID  `json:"group_attendance_locality_id" validate:"required,uuid4"`
	GroupAttendanceGroupId    *uuid.UUID `json:"group_attendance_group_id" validate:"omitempty,uuid4"`
	GroupAttendanceDate       time.Time  `json:"group_attendance_date" validate:"required"`
	GroupAttendanceAttended   *bool      `json:"group_attendance_attended" validate:"omitempty"`
	GroupAttendanceMemo       *string    `json:"group_attendance_memo" validate:"omitempty,max=500"`
}

func (r *CreateGroupAttendanceRequest) ToModel() *m.GroupAttendanceModel {
	attended := true
	if r.GroupAttendanceAttended != nil {
		attended = *r.GroupAttendanceAttended
	}
	return &m.GroupAttendanceModel{
		GroupAttendanceMemberId:   r.GroupAttendanceMemberId,
		GroupAttendanceLocalityId: r.GroupAttendanceLocalityId,
		GroupAttendanceGroupId:    r.GroupAttendanceGroupId,
		GroupAttendanceDate:       r.GroupAttendanceDate,
		GroupAttendanceAttended:   attended,
		GroupAttendanceMemo:       r.GroupAttendanceMemo,
	}
}

type CreatePrayerAttendanceRequest struct {
	PrayerAttendanceMemberId   uuid.UUID `json:"prayer_attendance_member_id" validate:"required,uuid4"`
	PrayerAttendanceLocalityId uuid.UUID `json:"prayer_attendance_locality_id" validate:"required,uuid4"`
	PrayerAttendanceDate       time.Time `json:"prayer_attendance_date" validate:"required"`
	PrayerAttendanceAttended   *bool     `json:"prayer_attendance_attended" validate:"omitempty"`
	PrayerAttendanceMemo       *string   `json:"prayer_attendance_memo" validate:"omitempty,max=500"`
}

func (r *CreatePrayerAttendanceRequest) ToModel() *m.PrayerAttendanceModel {
	attended := true
	if r.PrayerAttendanceAttended != nil {
		attended = *r.PrayerAttendanceAttended
	}
	return &m.PrayerAttendanceModel{
		PrayerAttendanceMemberId:   r.PrayerAttendanceMemberId,
		PrayerAttendanceLocalityId: r.PrayerAttendanceLocalityId,
		PrayerAttendanceDate:       r.PrayerAttendanceDate,
		PrayerAttendanceAttended:   attended,
		PrayerAttendanceMemo:       r.PrayerAttendanceMemo,
	}
}

// Pengutusan dicatat per pekan; tanggal bebas di-request akan dinormalisasi
// controller ke awal pekan (Senin) sebelum disimpan
type CreateDispatchRecordRequest struct {
	DispatchRecordMemberId   uuid.UUID `json:"dispatch_record_member_id" validate:"required,uuid4"`
	DispatchRecordLocalityId uuid.UUID `json:"dispatch_record_locality_id" validate:"required,uuid4"`
	DispatchRecordWeekStart  time.Time `json:"dispatch_record_week_start" validate:"required"`
	DispatchRecordOccurred   *bool     `json:"dispatch_record_occurred" validate:"omitempty"`
	DispatchRecordMemo       *string   `json:"dispatch_record_memo" validate:"omitempty,max=500"`
}

func (r *CreateDispatchRecordRequest) ToModel() *m.DispatchRecordModel {
	occurred := true
	if r.DispatchRecordOccurred != nil {
		occurred = *r.DispatchRecordOccurred
	}
	return &m.DispatchRecordModel{
		DispatchRecordMemberId:   r.DispatchRecordMemberId,
		DispatchRecordLocalityId: r.DispatchRecordLocalityId,
		DispatchRecordWeekStart:  r.DispatchRecordWeekStart,
		DispatchRecordOccurred:   occurred,
		DispatchRecordMemo:       r.DispatchRecordMemo,
	}
}

/* =========================================================
 * RESPONSE — gabungan event satu member satu tahun
 * ========================================================= */

type MemberEventsResponse struct {
	MemberId  uuid.UUID                 `json:"member_id"`
	Year      int                       `json:"year"`
	Primary   []m.PrimaryAttendanceModel `json:"primary"`
	Group     []m.GroupAttendanceModel   `json:"group"`
	Prayer    []m.PrayerAttendanceModel  `json:"prayer"`
	Dispatch  []m.DispatchRecordModel    `json:"dispatch"`
}
