package helper

import "testing"

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"name":      "member_full_name",
		"join_date": "member_legacy_join_date",
	}

	tests := []struct {
		name string
		p    Params
		want string
	}{
		{"whitelisted key", Params{SortBy: "join_date", SortOrder: "desc"}, "member_legacy_join_date DESC"},
		{"unknown key falls to default", Params{SortBy: "'; DROP TABLE members;--", SortOrder: "asc"}, "member_full_name ASC"},
		{"empty key falls to default", Params{SortOrder: "asc"}, "member_full_name ASC"},
		{"unknown direction becomes desc", Params{SortBy: "name", SortOrder: "sideways"}, "member_full_name DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.SafeOrderClause(allowed, "name")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("missing default key errors", func(t *testing.T) {
		if _, err := (Params{}).SafeOrderClause(map[string]string{}, "name"); err == nil {
			t.Fatalf("expected error for empty whitelist")
		}
	})
}

func TestBuildMeta(t *testing.T) {
	p := Params{Page: 2, PerPage: 25}
	meta := BuildMeta(60, p)

	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 60/25, got %d", meta.TotalPages)
	}
	if !meta.HasPrev || meta.PrevPage == nil || *meta.PrevPage != 1 {
		t.Fatalf("expected prev page 1, got %+v", meta)
	}
	if !meta.HasNext || meta.NextPage == nil || *meta.NextPage != 3 {
		t.Fatalf("expected next page 3, got %+v", meta)
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result must have no pages, got %+v", empty)
	}

	if p.Limit() != 25 || p.Offset() != 25 {
		t.Fatalf("page 2 of 25 must map to limit 25 offset 25, got %d/%d", p.Limit(), p.Offset())
	}
}
