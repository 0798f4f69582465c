// file: internals/features/access/service/scope_resolver.go
package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"churchstats_backend/internals/constants"
)

/* =======================================================
   SCOPE RESOLVER
   Satu lokalitas/distrik efektif per request. Nilai yang
   diminta tapi di luar akses DIAM-DIAM diganti default —
   tidak pernah error, tidak pernah membocorkan scope lain.
======================================================= */

// Cabang keputusan — ikut dikembalikan supaya bisa diuji
type ScopeDecision string

const (
	ScopeExplicit        ScopeDecision = "explicit"
	ScopeProfileHome     ScopeDecision = "profile-home"
	ScopeFirstAccessible ScopeDecision = "first-accessible"
	ScopeNone            ScopeDecision = "none"

	DistrictExplicit ScopeDecision = "explicit"
	DistrictAll      ScopeDecision = "all"
	DistrictDefault  ScopeDecision = "default"
)

// Sentinel "semua distrik" utk tampilan agregat
const AllDistricts = "__all__"

type LocalityRef struct {
	ID   uuid.UUID
	Name string
}

type DistrictRef struct {
	ID         uuid.UUID
	LocalityID uuid.UUID
	Name       string
}

// Snapshot profil akses, dimaterialisasi sekali per request (lihat ScopeContext)
type Profile struct {
	UserID     uuid.UUID
	GlobalRole *string

	LocalRoles map[uuid.UUID]string // locality → role lokal

	HomeLocalityID      *uuid.UUID
	MainDistrictID      *uuid.UUID
	ReporterDistrictIDs []uuid.UUID

	// Lokalitas induk distrik utama (hasil lookup saat materialisasi).
	// Dipakai sebagai fallback "home" kalau HomeLocalityID kosong.
	MainDistrictLocalityID *uuid.UUID

	AccessibleLocalityIDs []uuid.UUID
}

type LocalityResolution struct {
	LocalityID *uuid.UUID    `json:"locality_id"`
	Decision   ScopeDecision `json:"decision"`
}

type DistrictResolution struct {
	DistrictID string        `json:"district_id"` // uuid string atau "__all__"
	Decision   ScopeDecision `json:"decision"`
}

func containsLocality(refs []LocalityRef, id uuid.UUID) bool {
	for _, r := range refs {
		if r.ID == id {
			return true
		}
	}
	return false
}

// EffectiveLocality — urutan prioritas:
//  1. pilihan eksplisit user, kalau memang boleh diakses
//  2. lokalitas asal di profil — atau, kalau kosong, lokalitas induk
//     distrik utama — kalau boleh diakses
//  3. lokalitas pertama menurut urutan kanonik (nama)
//  4. nil kalau daftar aksesnya kosong
func EffectiveLocality(profile Profile, accessible []LocalityRef, requested *uuid.UUID) LocalityResolution {
	if requested != nil && containsLocality(accessible, *requested) {
		id := *requested
		return LocalityResolution{LocalityID: &id, Decision: ScopeExplicit}
	}
	home := profile.HomeLocalityID
	if home == nil {
		home = profile.MainDistrictLocalityID
	}
	if home != nil && containsLocality(accessible, *home) {
		id := *home
		return LocalityResolution{LocalityID: &id, Decision: ScopeProfileHome}
	}
	if len(accessible) > 0 {
		sorted := make([]LocalityRef, len(accessible))
		copy(sorted, accessible)
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
		id := sorted[0].ID
		return LocalityResolution{LocalityID: &id, Decision: ScopeFirstAccessible}
	}
	return LocalityResolution{Decision: ScopeNone}
}

func roleSeesWholeLocality(role string) bool {
	switch role {
	case constants.LocalRoleAdmin, constants.LocalRoleCoAdmin, constants.LocalRoleReporter:
		return true
	}
	return false
}

// DistrictsInScope: distrik yang boleh dilihat user di lokalitas efektif.
// Admin/co-admin/reporter lokal (atau admin global) dapat semua distrik
// lokalitas itu; selain itu gabungan distrik utama + distrik reporter,
// dipotong ke lokalitas efektif.
func DistrictsInScope(profile Profile, effectiveLocality uuid.UUID, localityDistricts []DistrictRef) []DistrictRef {
	inLocality := make([]DistrictRef, 0, len(localityDistricts))
	for _, dd := range localityDistricts {
		if dd.LocalityID == effectiveLocality {
			inLocality = append(inLocality, dd)
		}
	}

	if profile.GlobalRole != nil && *profile.GlobalRole == constants.RoleAdmin {
		return inLocality
	}
	if roleSeesWholeLocality(profile.LocalRoles[effectiveLocality]) {
		return inLocality
	}

	allowed := make(map[uuid.UUID]bool, 1+len(profile.ReporterDistrictIDs))
	if profile.MainDistrictID != nil {
		allowed[*profile.MainDistrictID] = true
	}
	for _, id := range profile.ReporterDistrictIDs {
		allowed[id] = true
	}

	out := make([]DistrictRef, 0, len(allowed))
	for _, dd := range inLocality {
		if allowed[dd.ID] {
			out = append(out, dd)
		}
	}
	return out
}

// EffectiveDistrict: terima distrik dari URL hanya kalau memang masuk scope
// (atau sentinel "__all__" utk role yang boleh agregat); selain itu jatuh ke
// default yang sudah dihitung, tanpa error
func EffectiveDistrict(requested string, inScope []DistrictRef, defaultDistrictID string, allowAll bool) DistrictResolution {
	requested = strings.TrimSpace(requested)
	if requested == AllDistricts && allowAll {
		return DistrictResolution{DistrictID: AllDistricts, Decision: DistrictAll}
	}
	if requested != "" && requested != AllDistricts {
		if id, err := uuid.Parse(requested); err == nil {
			for _, dd := range inScope {
				if dd.ID == id {
					return DistrictResolution{DistrictID: id.String(), Decision: DistrictExplicit}
				}
			}
		}
	}
	return DistrictResolution{DistrictID: defaultDistrictID, Decision: DistrictDefault}
}
