// file: internals/features/meetings/model/meeting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MeetingTypePrimary   = "primary"   // sidang raya (lingkup distrik / lokalitas)
	MeetingTypeSecondary = "secondary" // kelompok kecil (lingkup kelompok)
)

type MeetingModel struct {
	MeetingId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meeting_id" json:"meeting_id"`

	MeetingEventDate time.Time `gorm:"type:date;not null;column:meeting_event_date;index" json:"meeting_event_date"`
	MeetingType      string    `gorm:"not null;column:meeting_type" json:"meeting_type"`

	// Hanya kolom scope yang relevan dengan tipenya yang terisi:
	// primary → district (atau locality kalau distriknya kosong), secondary → group
	MeetingDistrictId *uuid.UUID `gorm:"type:uuid;column:meeting_district_id" json:"meeting_district_id,omitempty"`
	MeetingLocalityId *uuid.UUID `gorm:"type:uuid;column:meeting_locality_id" json:"meeting_locality_id,omitempty"`
	MeetingGroupId    *uuid.UUID `gorm:"type:uuid;column:meeting_group_id"    json:"meeting_group_id,omitempty"`

	// Snapshot nama scope saat entri (biar diagnosa duplikat tetap terbaca
	// walau referensinya sudah di-rename)
	MeetingScopeSnapshot datatypes.JSONMap `gorm:"column:meeting_scope_snapshot;type:jsonb" json:"meeting_scope_snapshot,omitempty"`

	MeetingCreatedAt time.Time `gorm:"column:meeting_created_at;autoCreateTime" json:"meeting_created_at"`
}

func (MeetingModel) TableName() string { return "meetings" }

// Baris kehadiran yang menggantung di satu meeting — dihitung utk memandu
// operator memilih record yang paling aman dihapus
type MeetingAttendanceModel struct {
	MeetingAttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meeting_attendance_id" json:"meeting_attendance_id"`

	MeetingAttendanceMeetingId uuid.UUID `gorm:"type:uuid;not null;column:meeting_attendance_meeting_id;index" json:"meeting_attendance_meeting_id"`
	MeetingAttendanceMemberId  uuid.UUID `gorm:"type:uuid;not null;column:meeting_attendance_member_id"        json:"meeting_attendance_member_id"`

	MeetingAttendanceAttended bool    `gorm:"not null;default:true;column:meeting_attendance_attended" json:"meeting_attendance_attended"`
	MeetingAttendanceMemo     *string `gorm:"column:meeting_attendance_memo" json:"meeting_attendance_memo,omitempty"`

	MeetingAttendanceCreatedAt time.Time `gorm:"column:meeting_attendance_created_at;autoCreateTime" json:"meeting_attendance_created_at"`
}

func (MeetingAttendanceModel) TableName() string { return "meeting_attendances" }
