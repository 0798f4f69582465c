// file: internals/features/attendance/events/model/attendance_event_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   EMPAT SUMBER KEHADIRAN
   1. sidang raya (primary)   — per tanggal, pekan Minggu
   2. kelompok kecil (group)  — per tanggal, pekan Senin
   3. doa (prayer)            — per tanggal
   4. pengutusan (dispatch)   — per AWAL PEKAN, boleh utk tamu
======================================================= */

type PrimaryAttendanceModel struct {
	PrimaryAttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:primary_attendance_id" json:"primary_attendance_id"`

	PrimaryAttendanceMemberId   uuid.UUID `gorm:"type:uuid;not null;column:primary_attendance_member_id;index" json:"primary_attendance_member_id"`
	PrimaryAttendanceLocalityId uuid.UUID `gorm:"type:uuid;not null;column:primary_attendance_locality_id"     json:"primary_attendance_locality_id"`

	PrimaryAttendanceDate     time.Time `gorm:"type:date;not null;column:primary_attendance_date" json:"primary_attendance_date"`
	PrimaryAttendanceAttended bool      `gorm:"not null;default:true;column:primary_attendance_attended" json:"primary_attendance_attended"`
	PrimaryAttendanceMemo     *string   `gorm:"column:primary_attendance_memo" json:"primary_attendance_memo,omitempty"`

	PrimaryAttendanceCreatedAt time.Time  `gorm:"column:primary_attendance_created_at;autoCreateTime" json:"primary_attendance_created_at"`
	PrimaryAttendanceUpdatedAt *time.Time `gorm:"column:primary_attendance_updated_at;autoUpdateTime" json:"primary_attendance_updated_at,omitempty"`
}

func (PrimaryAttendanceModel) TableName() string { return "primary_attendances" }

type GroupAttendanceModel struct {
	GroupAttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_attendance_id" json:"group_attendance_id"`

	GroupAttendanceMemberId   uuid.UUID  `gorm:"type:uuid;not null;column:group_attendance_member_id;index" json:"group_attendance_member_id"`
	GroupAttendanceLocalityId uuid.UUID  `gorm:"type:uuid;not null;column:group_attendance_locality_id"     json:"group_attendance_locality_id"`
	GroupAttendanceGroupId    *uuid.UUID `gorm:"type:uuid;column:group_attendance_group_id"                 json:"group_attendance_group_id,omitempty"`

	GroupAttendanceDate     time.Time `gorm:"type:date;not null;column:group_attendance_date" json:"group_attendance_date"`
	GroupAttendanceAttended bool      `gorm:"not null;default:true;column:group_attendance_attended" json:"group_attendance_attended"`
	GroupAttendanceMemo     *string   `gorm:"column:group_attendance_memo" json:"group_attendance_memo,omitempty"`

	GroupAttendanceCreatedAt time.Time  `gorm:"column:group_attendance_created_at;autoCreateTime" json:"group_attendance_created_at"`
	GroupAttendanceUpdatedAt *time.Time `gorm:"column:group_attendance_updated_at;autoUpdateTime" json:"group_attendance_updated_at,omitempty"`
}

func (GroupAttendanceModel) TableName() string { return "group_attendances" }

type PrayerAttendanceModel struct {
	PrayerAttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:prayer_attendance_id" json:"prayer_attendance_id"`

	PrayerAttendanceMemberId   uuid.UUID `gorm:"type:uuid;not null;column:prayer_attendance_member_id;index" json:"prayer_attendance_member_id"`
	PrayerAttendanceLocalityId uuid.UUID `gorm:"type:uuid;not null;column:prayer_attendance_locality_id"     json:"prayer_attendance_locality_id"`

	PrayerAttendanceDate     time.Time `gorm:"type:date;not null;column:prayer_attendance_date" json:"prayer_attendance_date"`
	PrayerAttendanceAttended bool      `gorm:"not null;default:true;column:prayer_attendance_attended" json:"prayer_attendance_attended"`
	PrayerAttendanceMemo     *string   `gorm:"column:prayer_attendance_memo" json:"prayer_attendance_memo,omitempty"`

	PrayerAttendanceCreatedAt time.Time  `gorm:"column:prayer_attendance_created_at;autoCreateTime" json:"prayer_attendance_created_at"`
	PrayerAttendanceUpdatedAt *time.Time `gorm:"column:prayer_attendance_updated_at;autoUpdateTime" json:"prayer_attendance_updated_at,omitempty"`
}

func (PrayerAttendanceModel) TableName() string { return "prayer_attendances" }

// Pengutusan/visitasi dicatat per pekan (konvensi Senin), bukan per tanggal,
// dan sasarannya boleh tamu — jadi TIDAK ikut filter enrolled-only.
type DispatchRecordModel struct {
	DispatchRecordId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:dispatch_record_id" json:"dispatch_record_id"`

	DispatchRecordMemberId   uuid.UUID `gorm:"type:uuid;not null;column:dispatch_record_member_id;index" json:"dispatch_record_member_id"`
	DispatchRecordLocalityId uuid.UUID `gorm:"type:uuid;not null;column:dispatch_record_locality_id"     json:"dispatch_record_locality_id"`

	DispatchRecordWeekStart time.Time `gorm:"type:date;not null;column:dispatch_record_week_start" json:"dispatch_record_week_start"`
	DispatchRecordOccurred  bool      `gorm:"not null;default:true;column:dispatch_record_occurred" json:"dispatch_record_occurred"`
	DispatchRecordMemo      *string   `gorm:"column:dispatch_record_memo" json:"dispatch_record_memo,omitempty"`

	DispatchRecordCreatedAt time.Time  `gorm:"column:dispatch_record_created_at;autoCreateTime" json:"dispatch_record_created_at"`
	DispatchRecordUpdatedAt *time.Time `gorm:"column:dispatch_record_updated_at;autoUpdateTime" json:"dispatch_record_updated_at,omitempty"`
}

func (DispatchRecordModel) TableName() string { return "dispatch_records" }
