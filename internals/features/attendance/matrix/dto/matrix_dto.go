// file: internals/features/attendance/matrix/dto/matrix_dto.go
package dto

import (
	"github.com/google/uuid"

	svc "churchstats_backend/internals/features/attendance/matrix/service"
	"churchstats_backend/internals/helpers/weekly"
)

// Filter / query halaman rekap
type MatrixQueryRequest struct {
	Year         *int    `query:"year" validate:"omitempty,min=1900,max=2200"`
	LocalityId   *string `query:"locality_id" validate:"omitempty,uuid4"`
	DistrictId   *string `query:"district_id" validate:"omitempty"`
	EnrolledOnly *bool   `query:"enrolled_only" validate:"omitempty"`
	LocalOnly    *bool   `query:"local_only" validate:"omitempty"`
	WeekStartDay *string `query:"week_start" validate:"omitempty,oneof=sunday monday"`
}

type MemberMatrixItem struct {
	MemberId          uuid.UUID                    `json:"member_id"`
	MemberFullName    string                       `json:"member_full_name"`
	PerSource         map[string]map[string]bool   `json:"per_source"`
	Memos             map[string]map[string]string `json:"memos"`
	WeeksInScopeCount int                          `json:"weeks_in_scope_count"`
	DispatchCount     int                          `json:"dispatch_count"`
}

type MatrixResponse struct {
	Year             int                 `json:"year"`
	Weeks            []weekly.WeekBucket `json:"weeks"`
	Members          []MemberMatrixItem  `json:"members"`
	DegradedSources  []string            `json:"degraded_sources,omitempty"` // sumber yang gagal dibaca; UI boleh tawarkan retry
	LocalityId       *uuid.UUID          `json:"locality_id"`
	DistrictId       string              `json:"district_id"`
	LocalityDecision string              `json:"locality_decision"`
	DistrictDecision string              `json:"district_decision"`
}

type OverviewResponse struct {
	Overview        svc.Overview `json:"overview"`
	Year            int          `json:"year"`
	DegradedSources []string     `json:"degraded_sources,omitempty"`
}
