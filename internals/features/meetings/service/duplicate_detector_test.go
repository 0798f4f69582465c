package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"churchstats_backend/internals/features/meetings/model"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func up(id uuid.UUID) *uuid.UUID { return &id }

func primaryMeeting(date time.Time, district, locality *uuid.UUID, createdAt time.Time) model.MeetingModel {
	return model.MeetingModel{
		MeetingId:         uuid.New(),
		MeetingEventDate:  date,
		MeetingType:       model.MeetingTypePrimary,
		MeetingDistrictId: district,
		MeetingLocalityId: locality,
		MeetingCreatedAt:  createdAt,
	}
}

func TestFindDuplicateGroups_LocalityPresenceDoesNotSplitGroup(t *testing.T) {
	district := uuid.New()
	locality := uuid.New()
	date := d(2024, time.May, 5)

	records := []model.MeetingModel{
		primaryMeeting(date, up(district), nil, d(2024, time.May, 5).Add(10*time.Hour)),
		primaryMeeting(date, up(district), up(locality), d(2024, time.May, 5).Add(11*time.Hour)),
	}

	groups := FindDuplicateGroups(records)
	if len(groups) != 1 {
		t.Fatalf("expected exactly one group, got %d", len(groups))
	}
	g := groups[0]
	if len(g.Records) != 2 {
		t.Fatalf("expected group of 2, got %d", len(g.Records))
	}
	wantKey := "2024-05-05|" + district.String()
	if g.IdentityKey != wantKey {
		t.Fatalf("expected key %q, got %q", wantKey, g.IdentityKey)
	}
	if g.MatchBranch != MatchByDistrict {
		t.Fatalf("expected by_district branch, got %s", g.MatchBranch)
	}
}

func TestFindDuplicateGroups_LocalityFallbackWhenDistrictMissing(t *testing.T) {
	locality := uuid.New()
	date := d(2024, time.March, 3)

	records := []model.MeetingModel{
		primaryMeeting(date, nil, up(locality), date.Add(8*time.Hour)),
		primaryMeeting(date, nil, up(locality), date.Add(9*time.Hour)),
	}

	groups := FindDuplicateGroups(records)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	wantKey := "2024-03-03|locality:" + locality.String()
	if groups[0].IdentityKey != wantKey {
		t.Fatalf("expected key %q, got %q", wantKey, groups[0].IdentityKey)
	}
	if groups[0].MatchBranch != MatchByLocality {
		t.Fatalf("expected by_locality branch, got %s", groups[0].MatchBranch)
	}
}

func TestFindDuplicateGroups_SecondaryKeyedByGroup(t *testing.T) {
	group := uuid.New()
	other := uuid.New()
	date := d(2024, time.June, 10)

	mk := func(g uuid.UUID, created time.Time) model.MeetingModel {
		return model.MeetingModel{
			MeetingId:        uuid.New(),
			MeetingEventDate: date,
			MeetingType:      model.MeetingTypeSecondary,
			MeetingGroupId:   up(g),
			MeetingCreatedAt: created,
		}
	}
	records := []model.MeetingModel{
		mk(group, date.Add(1*time.Hour)),
		mk(group, date.Add(2*time.Hour)),
		mk(other, date.Add(3*time.Hour)), // kelompok lain, bukan duplikat
	}

	groups := FindDuplicateGroups(records)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	if groups[0].MatchBranch != MatchByGroup {
		t.Fatalf("expected by_group branch, got %s", groups[0].MatchBranch)
	}
	if len(groups[0].Records) != 2 {
		t.Fatalf("expected group of 2, got %d", len(groups[0].Records))
	}
}

func TestFindDuplicateGroups_SingletonsDroppedAndOrderedByDateDesc(t *testing.T) {
	d1 := uuid.New()
	d2 := uuid.New()

	records := []model.MeetingModel{
		primaryMeeting(d(2024, time.January, 7), up(d1), nil, d(2024, time.January, 7)),
		primaryMeeting(d(2024, time.January, 7), up(d1), nil, d(2024, time.January, 8)),
		primaryMeeting(d(2024, time.April, 7), up(d1), nil, d(2024, time.April, 7)),
		primaryMeeting(d(2024, time.April, 7), up(d1), nil, d(2024, time.April, 8)),
		primaryMeeting(d(2024, time.February, 4), up(d2), nil, d(2024, time.February, 4)), // sendirian
	}

	groups := FindDuplicateGroups(records)
	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %d", len(groups))
	}
	if groups[0].EventDate != "2024-04-07" || groups[1].EventDate != "2024-01-07" {
		t.Fatalf("groups must be ordered by event date descending: %s, %s", groups[0].EventDate, groups[1].EventDate)
	}
	// record tertua di depan (kandidat "asli")
	if !groups[0].Records[0].MeetingCreatedAt.Before(groups[0].Records[1].MeetingCreatedAt) {
		t.Fatalf("records inside a group must be ordered oldest first")
	}
}

func TestCountDependents(t *testing.T) {
	keep := primaryMeeting(d(2024, time.May, 5), up(uuid.New()), nil, d(2024, time.May, 5))
	empty := primaryMeeting(d(2024, time.May, 5), keep.MeetingDistrictId, nil, d(2024, time.May, 6))

	group := DuplicateGroup{Records: []model.MeetingModel{keep, empty}}
	attendances := []model.MeetingAttendanceModel{
		{MeetingAttendanceMeetingId: keep.MeetingId, MeetingAttendanceMemberId: uuid.New()},
		{MeetingAttendanceMeetingId: keep.MeetingId, MeetingAttendanceMemberId: uuid.New()},
		{MeetingAttendanceMeetingId: uuid.New(), MeetingAttendanceMemberId: uuid.New()}, // meeting lain
	}

	counts := CountDependents(group, attendances)
	if counts[keep.MeetingId] != 2 {
		t.Fatalf("expected 2 dependents on the original, got %d", counts[keep.MeetingId])
	}
	if counts[empty.MeetingId] != 0 {
		t.Fatalf("expected the duplicate to report 0 dependents, got %d", counts[empty.MeetingId])
	}
}
