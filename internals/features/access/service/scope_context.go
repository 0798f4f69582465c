// file: internals/features/access/service/scope_context.go
package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchstats_backend/internals/constants"
	"churchstats_backend/internals/features/access/model"
)

/* =======================================================
   SCOPE CONTEXT
   Dulu hasil lookup profil/lokalitas di-cache global per
   request. Sekarang eksplisit: dimuat SEKALI di awal
   request lalu dioper ke bawah — tanpa state ambient.
======================================================= */

type ScopeContext struct {
	Profile              Profile
	AccessibleLocalities []LocalityRef

	Locality  LocalityResolution
	Districts []DistrictRef
	District  DistrictResolution
	AllowAll  bool
}

// DistrictVisible: data ber-distrik ini boleh dilihat dalam scope efektif?
// "__all__" membuka seluruh lokalitas; selain itu distriknya harus masuk
// daftar distrik in-scope. Data tanpa distrik hanya terlihat lewat "__all__".
func (sc *ScopeContext) DistrictVisible(districtID *uuid.UUID) bool {
	if sc.District.DistrictID == AllDistricts {
		return true
	}
	if districtID == nil {
		return false
	}
	for _, dd := range sc.Districts {
		if dd.ID == *districtID {
			return true
		}
	}
	return false
}

// LocalRole: role lokal user di lokalitas efektif ("" kalau tidak ada)
func (sc *ScopeContext) LocalRole() string {
	if sc.Locality.LocalityID == nil {
		return ""
	}
	return sc.Profile.LocalRoles[*sc.Locality.LocalityID]
}

func parseUUIDs(raw []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// allowAggregateView: siapa yang boleh minta "__all__"
func allowAggregateView(p Profile, localRole string) bool {
	if p.GlobalRole != nil {
		return true
	}
	switch localRole {
	case constants.LocalRoleAdmin, constants.LocalRoleCoAdmin, constants.LocalRoleReporter:
		return true
	}
	return false
}

// defaultDistrict: distrik utama kalau masuk scope; kalau tidak, distrik
// pertama in-scope urut nama; kalau scope kosong dan boleh agregat → "__all__"
func defaultDistrict(p Profile, inScope []DistrictRef, allowAll bool) string {
	if p.MainDistrictID != nil {
		for _, dd := range inScope {
			if dd.ID == *p.MainDistrictID {
				return dd.ID.String()
			}
		}
	}
	if len(inScope) > 0 {
		sorted := make([]DistrictRef, len(inScope))
		copy(sorted, inScope)
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
		return sorted[0].ID.String()
	}
	if allowAll {
		return AllDistricts
	}
	return ""
}

// LoadScopeContext: materialisasi snapshot profil + referensi, lalu jalankan
// resolver murni di atasnya. Error DB diteruskan apa adanya (recoverable di
// caller); profil yang tidak ada = akses kosong, bukan error.
func LoadScopeContext(ctx context.Context, db *gorm.DB, userID uuid.UUID, requestedLocality *uuid.UUID, requestedDistrict string) (*ScopeContext, error) {
	var row model.UserAccessProfileModel
	err := db.WithContext(ctx).
		Where("user_access_profile_user_id = ?", userID).
		First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	profile := Profile{
		UserID:                userID,
		GlobalRole:            row.UserAccessProfileGlobalRole,
		HomeLocalityID:        row.UserAccessProfileHomeLocalityId,
		MainDistrictID:        row.UserAccessProfileMainDistrictId,
		ReporterDistrictIDs:   parseUUIDs(row.UserAccessProfileReporterDistrictIds),
		AccessibleLocalityIDs: parseUUIDs(row.UserAccessProfileAccessibleLocalityIds),
		LocalRoles:            map[uuid.UUID]string{},
	}

	if profile.HomeLocalityID == nil && profile.MainDistrictID != nil {
		var dd model.DistrictModel
		err := db.WithContext(ctx).
			Where("district_id = ?", *profile.MainDistrictID).
			First(&dd).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if err == nil {
			loc := dd.DistrictLocalityId
			profile.MainDistrictLocalityID = &loc
		}
	}

	var localRoles []model.LocalRoleModel
	if err := db.WithContext(ctx).
		Where("local_role_user_id = ?", userID).
		Find(&localRoles).Error; err != nil {
		return nil, err
	}
	for _, lr := range localRoles {
		profile.LocalRoles[lr.LocalRoleLocalityId] = lr.LocalRoleRole
	}

	accessible := make([]LocalityRef, 0, len(profile.AccessibleLocalityIDs))
	if len(profile.AccessibleLocalityIDs) > 0 {
		var rows []model.LocalityModel
		if err := db.WithContext(ctx).
			Where("locality_id IN ?", profile.AccessibleLocalityIDs).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, l := range rows {
			accessible = append(accessible, LocalityRef{ID: l.LocalityId, Name: l.LocalityName})
		}
	}

	sc := &ScopeContext{
		Profile:              profile,
		AccessibleLocalities: accessible,
	}
	sc.Locality = EffectiveLocality(profile, accessible, requestedLocality)

	if sc.Locality.LocalityID != nil {
		var rows []model.DistrictModel
		if err := db.WithContext(ctx).
			Where("district_locality_id = ?", *sc.Locality.LocalityID).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		refs := make([]DistrictRef, 0, len(rows))
		for _, dd := range rows {
			refs = append(refs, DistrictRef{ID: dd.DistrictId, LocalityID: dd.DistrictLocalityId, Name: dd.DistrictName})
		}
		sc.Districts = DistrictsInScope(profile, *sc.Locality.LocalityID, refs)
	}

	sc.AllowAll = allowAggregateView(profile, sc.LocalRole())
	sc.District = EffectiveDistrict(requestedDistrict, sc.Districts, defaultDistrict(profile, sc.Districts, sc.AllowAll), sc.AllowAll)
	return sc, nil
}
