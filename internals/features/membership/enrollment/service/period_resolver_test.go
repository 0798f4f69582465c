package service

import (
	"testing"
	"time"

	"churchstats_backend/internals/features/membership/enrollment/model"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, day int) *time.Time {
	v := d(y, m, day)
	return &v
}

func period(number int, join, leave *time.Time, uncertain bool) model.EnrollmentPeriodModel {
	return model.EnrollmentPeriodModel{
		EnrollmentPeriodNumber:      number,
		EnrollmentPeriodJoinDate:    join,
		EnrollmentPeriodLeaveDate:   leave,
		EnrollmentPeriodIsUncertain: uncertain,
	}
}

func TestIsEnrolledOn_NoDataMeansEnrolled(t *testing.T) {
	if !IsEnrolledOn(nil, nil, nil, d(1999, time.July, 4)) {
		t.Fatalf("member without periods and legacy dates must always count as enrolled")
	}
}

func TestIsEnrolledOn_SinglePeriodInclusiveBothEnds(t *testing.T) {
	periods := []model.EnrollmentPeriodModel{
		period(1, dp(2023, time.January, 10), dp(2023, time.June, 1), false),
	}
	cases := []struct {
		on   time.Time
		want bool
	}{
		{d(2023, time.January, 10), true},
		{d(2023, time.June, 1), true},
		{d(2023, time.January, 9), false},
		{d(2023, time.June, 2), false},
		{d(2023, time.March, 15), true},
	}
	for _, tc := range cases {
		if got := IsEnrolledOn(periods, nil, nil, tc.on); got != tc.want {
			t.Fatalf("on=%s: got %v, want %v", tc.on.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestIsEnrolledOn_OpenEndedPeriods(t *testing.T) {
	periods := []model.EnrollmentPeriodModel{
		period(1, nil, dp(2022, time.January, 1), false),
		period(2, dp(2023, time.March, 1), nil, false),
	}
	cases := []struct {
		on   time.Time
		want bool
	}{
		{d(2021, time.May, 5), true},  // sebelum pencatatan, periode 1 tanpa join
		{d(2024, time.January, 1), true},
		{d(2022, time.June, 1), false}, // di celah antara dua periode
	}
	for _, tc := range cases {
		if got := IsEnrolledOn(periods, nil, nil, tc.on); got != tc.want {
			t.Fatalf("on=%s: got %v, want %v", tc.on.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestIsEnrolledOn_OverlappingPeriodsAbsorbedWithoutError(t *testing.T) {
	periods := []model.EnrollmentPeriodModel{
		period(1, dp(2022, time.January, 1), dp(2022, time.December, 31), false),
		period(2, dp(2022, time.June, 1), nil, false),
	}
	if !IsEnrolledOn(periods, nil, nil, d(2022, time.July, 1)) {
		t.Fatalf("date inside both overlapping periods must count as enrolled")
	}
	if !IsEnrolledOn(periods, nil, nil, d(2023, time.July, 1)) {
		t.Fatalf("date inside second open-ended period must count as enrolled")
	}
}

func TestIsEnrolledOn_LegacyFallbackOnlyWithoutPeriods(t *testing.T) {
	legacyJoin := dp(2020, time.May, 1)
	legacyLeave := dp(2021, time.May, 1)

	if IsEnrolledOn(nil, legacyJoin, legacyLeave, d(2022, time.January, 1)) {
		t.Fatalf("legacy pair must bound enrollment when no periods exist")
	}
	if !IsEnrolledOn(nil, legacyJoin, legacyLeave, d(2020, time.May, 1)) {
		t.Fatalf("legacy join date itself must count as enrolled")
	}

	// begitu ada periode, pasangan lama diabaikan total
	periods := []model.EnrollmentPeriodModel{
		period(1, dp(2023, time.January, 1), nil, false),
	}
	if IsEnrolledOn(periods, legacyJoin, legacyLeave, d(2020, time.June, 1)) {
		t.Fatalf("legacy dates must be ignored once periods exist")
	}
}

func TestIsEnrolledOn_UncertainFlagDoesNotChangeContainment(t *testing.T) {
	certain := []model.EnrollmentPeriodModel{
		period(1, dp(2023, time.January, 1), dp(2023, time.December, 31), false),
	}
	uncertain := []model.EnrollmentPeriodModel{
		period(1, dp(2023, time.January, 1), dp(2023, time.December, 31), true),
	}
	for _, on := range []time.Time{d(2023, time.June, 1), d(2024, time.June, 1)} {
		if IsEnrolledOn(certain, nil, nil, on) != IsEnrolledOn(uncertain, nil, nil, on) {
			t.Fatalf("uncertain flag changed containment for %s", on.Format("2006-01-02"))
		}
	}
}

func TestHasUncertainEnrollment(t *testing.T) {
	t.Run("no periods", func(t *testing.T) {
		if HasUncertainEnrollment(nil) {
			t.Fatalf("member without periods is not review material")
		}
	})
	t.Run("flagged period", func(t *testing.T) {
		periods := []model.EnrollmentPeriodModel{
			period(1, dp(2020, time.January, 1), dp(2021, time.January, 1), false),
			period(2, dp(2022, time.January, 1), nil, true),
		}
		if !HasUncertainEnrollment(periods) {
			t.Fatalf("any flagged period must surface for review")
		}
	})
	t.Run("first period without join date", func(t *testing.T) {
		// urutan slice sengaja dibalik; resolver harus lihat periode bernomor 1
		periods := []model.EnrollmentPeriodModel{
			period(2, dp(2023, time.March, 1), nil, false),
			period(1, nil, dp(2022, time.January, 1), false),
		}
		if !HasUncertainEnrollment(periods) {
			t.Fatalf("nil join date on the first period must surface for review")
		}
	})
	t.Run("clean periods", func(t *testing.T) {
		periods := []model.EnrollmentPeriodModel{
			period(1, dp(2020, time.January, 1), dp(2021, time.January, 1), false),
		}
		if HasUncertainEnrollment(periods) {
			t.Fatalf("fully dated, unflagged periods are not review material")
		}
	})
}

func TestPeriodLabel(t *testing.T) {
	periods := []model.EnrollmentPeriodModel{
		period(2, dp(2023, time.January, 10), nil, false),
		period(1, dp(2020, time.March, 1), dp(2021, time.May, 9), true),
	}
	got := PeriodLabel(periods, nil, nil)
	want := "2020-03-01 ~ 2021-05-09 (?), 2023-01-10 ~"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := PeriodLabel(nil, dp(2019, time.April, 1), nil); got != "2019-04-01 ~" {
		t.Fatalf("legacy label: got %q", got)
	}
}
