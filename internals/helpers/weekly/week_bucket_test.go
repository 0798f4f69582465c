package weekly

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeksInYear_PartitionsYear(t *testing.T) {
	for _, conv := range []time.Weekday{StartSunday, StartMonday} {
		for year := 2020; year <= 2026; year++ {
			weeks := WeeksInYear(year, conv)
			if len(weeks) < 52 || len(weeks) > 53 {
				t.Fatalf("year=%d conv=%s: expected 52-53 weeks, got %d", year, conv, len(weeks))
			}
			for i, w := range weeks {
				if w.WeekStart.Weekday() != conv {
					t.Fatalf("year=%d conv=%s week=%d: start on %s", year, conv, i+1, w.WeekStart.Weekday())
				}
				if w.WeekNumber != i+1 {
					t.Fatalf("year=%d conv=%s: week number %d at index %d", year, conv, w.WeekNumber, i)
				}
				if got := w.WeekEnd.Sub(w.WeekStart).Hours() / 24; got != 6 {
					t.Fatalf("year=%d conv=%s week=%d: span %v days", year, conv, i+1, got)
				}
				if i > 0 {
					prev := weeks[i-1]
					if !w.WeekStart.Equal(prev.WeekEnd.AddDate(0, 0, 1)) {
						t.Fatalf("year=%d conv=%s: gap/overlap between week %d and %d", year, conv, i, i+1)
					}
				}
				if w.WeekStart.Year() != year {
					t.Fatalf("year=%d conv=%s week=%d: start in year %d", year, conv, i+1, w.WeekStart.Year())
				}
			}
		}
	}
}

func TestWeeksInYear_FirstBucketOnJanuaryFirst(t *testing.T) {
	// 2023-01-01 jatuh di hari Minggu
	weeks := WeeksInYear(2023, StartSunday)
	if !weeks[0].WeekStart.Equal(date(2023, time.January, 1)) {
		t.Fatalf("expected first week to start on Jan 1, got %s", weeks[0].WeekStart)
	}
	// 2024-01-01 jatuh di hari Senin
	weeks = WeeksInYear(2024, StartMonday)
	if !weeks[0].WeekStart.Equal(date(2024, time.January, 1)) {
		t.Fatalf("expected first week to start on Jan 1, got %s", weeks[0].WeekStart)
	}
}

func TestBucketForDate_InverseConsistent(t *testing.T) {
	for _, conv := range []time.Weekday{StartSunday, StartMonday} {
		for _, year := range []int{2023, 2024} {
			for _, w := range WeeksInYear(year, conv) {
				for d := w.WeekStart; !d.After(w.WeekEnd); d = d.AddDate(0, 0, 1) {
					got := BucketForDate(d, conv)
					if !got.WeekStart.Equal(w.WeekStart) || got.WeekNumber != w.WeekNumber {
						t.Fatalf("conv=%s date=%s: got week %d start %s, want week %d start %s",
							conv, d.Format("2006-01-02"), got.WeekNumber, got.WeekStart, w.WeekNumber, w.WeekStart)
					}
				}
			}
		}
	}
}

func TestBucketForDate_EarlyJanuaryBelongsToPreviousYear(t *testing.T) {
	// 2024-01-01..06 dengan konvensi Minggu masih masuk pekan terakhir 2023
	b := BucketForDate(date(2024, time.January, 3), StartSunday)
	if b.WeekStart.Year() != 2023 {
		t.Fatalf("expected week start in 2023, got %s", b.WeekStart)
	}
	last := WeeksInYear(2023, StartSunday)
	if b.WeekNumber != last[len(last)-1].WeekNumber {
		t.Fatalf("expected last week of 2023 (%d), got %d", last[len(last)-1].WeekNumber, b.WeekNumber)
	}
}

func TestBucketForStart_FallsBackToEarlierWeekSameYear(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		weeks := WeeksInYear(2024, StartMonday)
		got := BucketForStart(2024, StartMonday, weeks[10].WeekStart)
		if got.WeekNumber != 11 {
			t.Fatalf("expected week 11, got %d", got.WeekNumber)
		}
	})
	t.Run("mid-week date snaps backwards", func(t *testing.T) {
		weeks := WeeksInYear(2024, StartMonday)
		got := BucketForStart(2024, StartMonday, weeks[10].WeekStart.AddDate(0, 0, 3))
		if got.WeekNumber != 11 {
			t.Fatalf("expected week 11, got %d", got.WeekNumber)
		}
	})
	t.Run("before first week clamps to first, never previous year", func(t *testing.T) {
		got := BucketForStart(2026, StartSunday, date(2025, time.December, 28))
		if got.WeekStart.Year() != 2026 || got.WeekNumber != 1 {
			t.Fatalf("expected first week of 2026, got week %d start %s", got.WeekNumber, got.WeekStart)
		}
	})
}

func TestDefaultBucket(t *testing.T) {
	t.Run("today inside year picks current week", func(t *testing.T) {
		today := date(2024, time.June, 12) // Rabu
		got := DefaultBucket(2024, StartSunday, today)
		if got.WeekStart.After(today) || got.WeekEnd.Before(today) {
			t.Fatalf("expected bucket containing today, got %s..%s", got.WeekStart, got.WeekEnd)
		}
	})
	t.Run("today past the year picks last week", func(t *testing.T) {
		weeks := WeeksInYear(2023, StartMonday)
		got := DefaultBucket(2023, StartMonday, date(2025, time.March, 1))
		if got.WeekNumber != weeks[len(weeks)-1].WeekNumber {
			t.Fatalf("expected last week %d, got %d", weeks[len(weeks)-1].WeekNumber, got.WeekNumber)
		}
	})
	t.Run("today before the year picks first week", func(t *testing.T) {
		got := DefaultBucket(2025, StartSunday, date(2024, time.February, 2))
		if got.WeekNumber != 1 {
			t.Fatalf("expected week 1, got %d", got.WeekNumber)
		}
	})
}
