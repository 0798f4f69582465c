package service

import (
	"testing"

	"github.com/google/uuid"

	"churchstats_backend/internals/constants"
)

func up(id uuid.UUID) *uuid.UUID { return &id }

func strp(s string) *string { return &s }

func TestEffectiveLocality_PrecedenceChain(t *testing.T) {
	l1 := uuid.New()
	l2 := uuid.New()
	// nama sengaja dibuat supaya urutan abjad menempatkan L2 duluan
	accessible := []LocalityRef{
		{ID: l2, Name: "Ambon"},
		{ID: l1, Name: "Surabaya"},
	}
	d1 := uuid.New()

	base := Profile{
		GlobalRole:            nil,
		HomeLocalityID:        up(l1),
		MainDistrictID:        up(d1),
		AccessibleLocalityIDs: []uuid.UUID{l1, l2},
	}

	t.Run("home locality wins over alphabetical order", func(t *testing.T) {
		got := EffectiveLocality(base, accessible, nil)
		if got.LocalityID == nil || *got.LocalityID != l1 {
			t.Fatalf("expected home locality, got %v", got.LocalityID)
		}
		if got.Decision != ScopeProfileHome {
			t.Fatalf("expected profile-home decision, got %s", got.Decision)
		}
	})

	t.Run("explicit accessible request overrides home", func(t *testing.T) {
		got := EffectiveLocality(base, accessible, up(l2))
		if got.LocalityID == nil || *got.LocalityID != l2 {
			t.Fatalf("expected explicitly requested locality, got %v", got.LocalityID)
		}
		if got.Decision != ScopeExplicit {
			t.Fatalf("expected explicit decision, got %s", got.Decision)
		}
	})

	t.Run("inaccessible request silently falls back to home", func(t *testing.T) {
		outside := uuid.New()
		got := EffectiveLocality(base, accessible, up(outside))
		if got.LocalityID == nil || *got.LocalityID != l1 {
			t.Fatalf("expected silent fallback to home, got %v", got.LocalityID)
		}
		if got.Decision != ScopeProfileHome {
			t.Fatalf("expected profile-home decision, got %s", got.Decision)
		}
	})

	t.Run("main district locality substitutes a missing home", func(t *testing.T) {
		p := base
		p.HomeLocalityID = nil
		p.MainDistrictLocalityID = up(l1) // induk D1 = Surabaya, kalah abjad dari Ambon
		got := EffectiveLocality(p, accessible, nil)
		if got.LocalityID == nil || *got.LocalityID != l1 {
			t.Fatalf("expected main district's locality, got %v", got.LocalityID)
		}
		if got.Decision != ScopeProfileHome {
			t.Fatalf("expected profile-home decision, got %s", got.Decision)
		}
	})

	t.Run("no home falls to first accessible by name", func(t *testing.T) {
		p := base
		p.HomeLocalityID = nil
		got := EffectiveLocality(p, accessible, nil)
		if got.LocalityID == nil || *got.LocalityID != l2 {
			t.Fatalf("expected name-sorted first locality (Ambon), got %v", got.LocalityID)
		}
		if got.Decision != ScopeFirstAccessible {
			t.Fatalf("expected first-accessible decision, got %s", got.Decision)
		}
	})

	t.Run("empty accessible set yields none", func(t *testing.T) {
		got := EffectiveLocality(Profile{}, nil, up(uuid.New()))
		if got.LocalityID != nil || got.Decision != ScopeNone {
			t.Fatalf("expected nil/none, got %v/%s", got.LocalityID, got.Decision)
		}
	})
}

func TestDistrictsInScope(t *testing.T) {
	locality := uuid.New()
	otherLocality := uuid.New()
	dA := DistrictRef{ID: uuid.New(), LocalityID: locality, Name: "Distrik A"}
	dB := DistrictRef{ID: uuid.New(), LocalityID: locality, Name: "Distrik B"}
	dC := DistrictRef{ID: uuid.New(), LocalityID: locality, Name: "Distrik C"}
	dOther := DistrictRef{ID: uuid.New(), LocalityID: otherLocality, Name: "Luar"}
	all := []DistrictRef{dA, dB, dC, dOther}

	t.Run("local reporter sees the whole locality", func(t *testing.T) {
		p := Profile{LocalRoles: map[uuid.UUID]string{locality: constants.LocalRoleReporter}}
		got := DistrictsInScope(p, locality, all)
		if len(got) != 3 {
			t.Fatalf("expected 3 districts, got %d", len(got))
		}
	})

	t.Run("global admin sees the whole locality", func(t *testing.T) {
		p := Profile{GlobalRole: strp(constants.RoleAdmin)}
		got := DistrictsInScope(p, locality, all)
		if len(got) != 3 {
			t.Fatalf("expected 3 districts, got %d", len(got))
		}
	})

	t.Run("plain member gets main plus reporter districts only", func(t *testing.T) {
		p := Profile{
			MainDistrictID:      up(dA.ID),
			ReporterDistrictIDs: []uuid.UUID{dC.ID, dOther.ID},
		}
		got := DistrictsInScope(p, locality, all)
		if len(got) != 2 {
			t.Fatalf("expected 2 districts, got %d", len(got))
		}
		for _, dd := range got {
			if dd.ID != dA.ID && dd.ID != dC.ID {
				t.Fatalf("unexpected district %s in scope", dd.Name)
			}
			if dd.LocalityID != locality {
				t.Fatalf("district outside the effective locality leaked into scope")
			}
		}
	})
}

func TestEffectiveDistrict(t *testing.T) {
	locality := uuid.New()
	dA := DistrictRef{ID: uuid.New(), LocalityID: locality}
	dB := DistrictRef{ID: uuid.New(), LocalityID: locality}
	inScope := []DistrictRef{dA, dB}
	def := dA.ID.String()

	t.Run("in-scope request accepted", func(t *testing.T) {
		got := EffectiveDistrict(dB.ID.String(), inScope, def, false)
		if got.DistrictID != dB.ID.String() || got.Decision != DistrictExplicit {
			t.Fatalf("expected explicit %s, got %s (%s)", dB.ID, got.DistrictID, got.Decision)
		}
	})

	t.Run("all-districts sentinel honored only when allowed", func(t *testing.T) {
		got := EffectiveDistrict(AllDistricts, inScope, def, true)
		if got.DistrictID != AllDistricts || got.Decision != DistrictAll {
			t.Fatalf("expected __all__, got %s (%s)", got.DistrictID, got.Decision)
		}
		got = EffectiveDistrict(AllDistricts, inScope, def, false)
		if got.DistrictID != def || got.Decision != DistrictDefault {
			t.Fatalf("disallowed __all__ must fall back to default, got %s (%s)", got.DistrictID, got.Decision)
		}
	})

	t.Run("out-of-scope request silently replaced", func(t *testing.T) {
		got := EffectiveDistrict(uuid.New().String(), inScope, def, true)
		if got.DistrictID != def || got.Decision != DistrictDefault {
			t.Fatalf("expected silent default, got %s (%s)", got.DistrictID, got.Decision)
		}
	})

	t.Run("garbage input never errors", func(t *testing.T) {
		got := EffectiveDistrict("not-a-uuid", inScope, def, false)
		if got.DistrictID != def || got.Decision != DistrictDefault {
			t.Fatalf("expected default for garbage input, got %s (%s)", got.DistrictID, got.Decision)
		}
	})
}

func TestScopeContext_DistrictVisible(t *testing.T) {
	locality := uuid.New()
	dA := DistrictRef{ID: uuid.New(), LocalityID: locality, Name: "Distrik A"}
	dB := DistrictRef{ID: uuid.New(), LocalityID: locality, Name: "Distrik B"}
	outside := uuid.New()

	limited := &ScopeContext{
		Districts: []DistrictRef{dA},
		District:  DistrictResolution{DistrictID: dA.ID.String(), Decision: DistrictDefault},
	}
	aggregate := &ScopeContext{
		Districts: []DistrictRef{dA, dB},
		District:  DistrictResolution{DistrictID: AllDistricts, Decision: DistrictAll},
	}

	t.Run("district-limited user only sees own districts", func(t *testing.T) {
		if !limited.DistrictVisible(up(dA.ID)) {
			t.Fatalf("member in the user's district must be visible")
		}
		if limited.DistrictVisible(up(dB.ID)) {
			t.Fatalf("member in another district of the locality must stay hidden")
		}
		if limited.DistrictVisible(up(outside)) {
			t.Fatalf("member outside the locality must stay hidden")
		}
		if limited.DistrictVisible(nil) {
			t.Fatalf("district-less member must stay hidden from a limited user")
		}
	})

	t.Run("aggregate view opens the whole locality", func(t *testing.T) {
		if !aggregate.DistrictVisible(up(dB.ID)) || !aggregate.DistrictVisible(nil) {
			t.Fatalf("__all__ must make every member of the locality visible")
		}
	})
}
