// file: internals/features/access/dto/scope_dto.go
package dto

import (
	"github.com/google/uuid"

	svc "churchstats_backend/internals/features/access/service"
)

type DistrictItem struct {
	DistrictId   uuid.UUID `json:"district_id"`
	DistrictName string    `json:"district_name"`
}

type LocalityItem struct {
	LocalityId   uuid.UUID `json:"locality_id"`
	LocalityName string    `json:"locality_name"`
}

// Jawaban GET /me/scope — scope efektif yang dipakai semua halaman ber-scope
type EffectiveScopeResponse struct {
	LocalityId       *uuid.UUID     `json:"locality_id"`
	LocalityDecision string         `json:"locality_decision"`
	DistrictId       string         `json:"district_id"` // uuid atau "__all__"
	DistrictDecision string         `json:"district_decision"`
	Districts        []DistrictItem `json:"districts"`
	Localities       []LocalityItem `json:"localities"`
	LocalRole        string         `json:"local_role,omitempty"`
	GlobalRole       *string        `json:"global_role,omitempty"`
	AllowAllDistrict bool           `json:"allow_all_district"`
}

func ToEffectiveScopeResponse(sc *svc.ScopeContext) EffectiveScopeResponse {
	districts := make([]DistrictItem, 0, len(sc.Districts))
	for _, dd := range sc.Districts {
		districts = append(districts, DistrictItem{DistrictId: dd.ID, DistrictName: dd.Name})
	}
	localities := make([]LocalityItem, 0, len(sc.AccessibleLocalities))
	for _, l := range sc.AccessibleLocalities {
		localities = append(localities, LocalityItem{LocalityId: l.ID, LocalityName: l.Name})
	}
	return EffectiveScopeResponse{
		LocalityId:       sc.Locality.LocalityID,
		LocalityDecision: string(sc.Locality.Decision),
		DistrictId:       sc.District.DistrictID,
		DistrictDecision: string(sc.District.Decision),
		Districts:        districts,
		Localities:       localities,
		LocalRole:        sc.LocalRole(),
		GlobalRole:       sc.Profile.GlobalRole,
		AllowAllDistrict: sc.AllowAll,
	}
}
