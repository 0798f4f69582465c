// file: internals/features/access/model/access_models.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type LocalityModel struct {
	LocalityId   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:locality_id" json:"locality_id"`
	LocalityName string    `gorm:"not null;column:locality_name" json:"locality_name"`

	LocalityCreatedAt time.Time `gorm:"column:locality_created_at;autoCreateTime" json:"locality_created_at"`
}

func (LocalityModel) TableName() string { return "localities" }

type DistrictModel struct {
	DistrictId         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:district_id" json:"district_id"`
	DistrictLocalityId uuid.UUID `gorm:"type:uuid;not null;column:district_locality_id;index" json:"district_locality_id"`
	DistrictName       string    `gorm:"not null;column:district_name" json:"district_name"`

	DistrictCreatedAt time.Time `gorm:"column:district_created_at;autoCreateTime" json:"district_created_at"`
}

func (DistrictModel) TableName() string { return "districts" }

// Role lokal per lokalitas (admin / co_admin / reporter / viewer)
type LocalRoleModel struct {
	LocalRoleId         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:local_role_id" json:"local_role_id"`
	LocalRoleUserId     uuid.UUID `gorm:"type:uuid;not null;column:local_role_user_id;index" json:"local_role_user_id"`
	LocalRoleLocalityId uuid.UUID `gorm:"type:uuid;not null;column:local_role_locality_id" json:"local_role_locality_id"`
	LocalRoleRole       string    `gorm:"not null;column:local_role_role" json:"local_role_role"`

	LocalRoleCreatedAt time.Time `gorm:"column:local_role_created_at;autoCreateTime" json:"local_role_created_at"`
}

func (LocalRoleModel) TableName() string { return "local_roles" }

// Snapshot akses per user, dimaterialisasi sekali per request oleh loader.
// Kolom array pakai pq.StringArray (uuid dalam bentuk teks).
type UserAccessProfileModel struct {
	UserAccessProfileId     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_access_profile_id" json:"user_access_profile_id"`
	UserAccessProfileUserId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_access_profile_user_id" json:"user_access_profile_user_id"`

	// NULL = user biasa tanpa role global
	UserAccessProfileGlobalRole *string `gorm:"column:user_access_profile_global_role" json:"user_access_profile_global_role,omitempty"`

	UserAccessProfileHomeLocalityId *uuid.UUID `gorm:"type:uuid;column:user_access_profile_home_locality_id" json:"user_access_profile_home_locality_id,omitempty"`
	UserAccessProfileMainDistrictId *uuid.UUID `gorm:"type:uuid;column:user_access_profile_main_district_id" json:"user_access_profile_main_district_id,omitempty"`

	UserAccessProfileAccessibleLocalityIds pq.StringArray `gorm:"type:text[];column:user_access_profile_accessible_locality_ids" json:"user_access_profile_accessible_locality_ids"`
	UserAccessProfileReporterDistrictIds   pq.StringArray `gorm:"type:text[];column:user_access_profile_reporter_district_ids"   json:"user_access_profile_reporter_district_ids"`

	UserAccessProfileUpdatedAt *time.Time `gorm:"column:user_access_profile_updated_at;autoUpdateTime" json:"user_access_profile_updated_at,omitempty"`
}

func (UserAccessProfileModel) TableName() string { return "user_access_profiles" }
