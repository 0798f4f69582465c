// file: internals/features/attendance/matrix/service/matrix_aggregator.go
package service

import (
	"time"

	"github.com/google/uuid"

	enrollmodel "churchstats_backend/internals/features/membership/enrollment/model"
	enrollservice "churchstats_backend/internals/features/membership/enrollment/service"
	"churchstats_backend/internals/helpers/weekly"
)

/* =======================================================
   MATRIX AGGREGATOR
   Gabungkan 4 sumber (sidang raya, kelompok, doa,
   pengutusan) jadi matriks hadir per member per pekan.
   Murni: jalan di atas snapshot yang sudah dimaterialisasi
   caller, tidak menyentuh DB, tidak memutasi input.
======================================================= */

const (
	SourcePrimary  = "primary"
	SourceGroup    = "group"
	SourcePrayer   = "prayer"
	SourceDispatch = "dispatch"
)

var AllSources = []string{SourcePrimary, SourceGroup, SourcePrayer, SourceDispatch}

// Satu baris event hasil fetch, sudah dinormalisasi per sumber.
// Untuk dispatch, EventDate = awal pekan yang tercatat di baris aslinya.
type EventRow struct {
	MemberId  uuid.UUID
	Source    string
	EventDate time.Time
	Attended  bool
	Memo      *string
	UpdatedAt time.Time
}

// Snapshot member + data enrollment yang dibutuhkan resolver
type MemberRow struct {
	MemberId        uuid.UUID
	FullName        string
	DistrictId      *uuid.UUID
	GroupId         *uuid.UUID
	Periods         []enrollmodel.EnrollmentPeriodModel
	LegacyJoinDate  *time.Time
	LegacyLeaveDate *time.Time
}

type Snapshot struct {
	Members []MemberRow
	Events  []EventRow
}

type MatrixOptions struct {
	StartDay time.Weekday // konvensi pekan utk seluruh matriks (default Minggu)
	Today    time.Time    // batas "masa depan" utk weeks-in-scope

	// EnrolledOnly: buang member yang belum masuk / sudah keluar di sepanjang
	// pekan-pekan tahun ini. KECUALI: member dengan event pengutusan tahun itu
	// tetap ditampilkan — pengutusan bisa menyasar non-anggota.
	EnrolledOnly bool

	// LocalOnly: cocokkan penempatan SAAT INI dengan scope yang diminta.
	// Sengaja tidak per-pekan-historis; lihat catatan di test.
	LocalOnly  bool
	DistrictId *uuid.UUID
	GroupId    *uuid.UUID
}

type MemberMatrix struct {
	MemberId  uuid.UUID                    `json:"member_id"`
	Weeks     []weekly.WeekBucket          `json:"weeks"`
	PerSource map[string]map[string]bool   `json:"per_source"` // source → week_start → hadir
	Memos     map[string]map[string]string `json:"memos"`      // source → week_start → memo terpilih

	WeeksInScopeCount int `json:"weeks_in_scope_count"`
	DispatchCount     int `json:"dispatch_count"`
}

type Overview struct {
	MemberId          uuid.UUID      `json:"member_id"`
	AttendedCounts    map[string]int `json:"attended_counts"`
	WeeksInScopeCount int            `json:"weeks_in_scope_count"`
	DispatchCount     int            `json:"dispatch_count"`
	PeriodLabel       string         `json:"period_label"`
}

func weekKey(t time.Time) string { return t.Format("2006-01-02") }

func normalizeOptions(opts MatrixOptions) MatrixOptions {
	if opts.StartDay != weekly.StartMonday {
		opts.StartDay = weekly.StartSunday
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}
	return opts
}

// memberInScope: filter local-only terhadap penempatan saat ini
func memberInScope(m MemberRow, opts MatrixOptions) bool {
	if !opts.LocalOnly {
		return true
	}
	if opts.DistrictId != nil {
		if m.DistrictId == nil || *m.DistrictId != *opts.DistrictId {
			return false
		}
	}
	if opts.GroupId != nil {
		if m.GroupId == nil || *m.GroupId != *opts.GroupId {
			return false
		}
	}
	return true
}

// enrolledAnyWeek: member dianggap "pernah terdaftar tahun ini" kalau
// terdaftar pada awal minimal satu pekan di tahun tsb
func enrolledAnyWeek(m MemberRow, weeks []weekly.WeekBucket) bool {
	for _, w := range weeks {
		if enrollservice.IsEnrolledOn(m.Periods, m.LegacyJoinDate, m.LegacyLeaveDate, w.WeekStart) {
			return true
		}
	}
	return false
}

// pemilih memo: paling baru di-edit yang memonya tidak kosong;
// seri → tanggal event paling akhir
type memoPick struct {
	memo      string
	updatedAt time.Time
	eventDate time.Time
}

func betterMemo(cur *memoPick, cand memoPick) bool {
	if cur == nil {
		return true
	}
	if !cand.updatedAt.Equal(cur.updatedAt) {
		return cand.updatedAt.After(cur.updatedAt)
	}
	return cand.eventDate.After(cur.eventDate)
}

// BuildMatrix: matriks per member utk satu tahun. Member tanpa event sama
// sekali tetap dapat daftar pekan lengkap dengan semua sel false.
func BuildMatrix(snap Snapshot, year int, opts MatrixOptions) map[uuid.UUID]*MemberMatrix {
	opts = normalizeOptions(opts)
	weeks := weekly.WeeksInYear(year, opts.StartDay)

	out := make(map[uuid.UUID]*MemberMatrix)
	unenrolled := make(map[uuid.UUID]bool)
	for _, m := range snap.Members {
		if !memberInScope(m, opts) {
			continue
		}
		if opts.EnrolledOnly && !enrolledAnyWeek(m, weeks) {
			// jangan langsung dibuang: kalau ternyata ada pengutusan tahun
			// ini, barisnya tetap tampil (lihat catatan di MatrixOptions)
			unenrolled[m.MemberId] = true
		}

		mm := &MemberMatrix{
			MemberId:  m.MemberId,
			Weeks:     weeks,
			PerSource: make(map[string]map[string]bool, len(AllSources)),
			Memos:     make(map[string]map[string]string, len(AllSources)),
		}
		for _, src := range AllSources {
			cells := make(map[string]bool, len(weeks))
			for _, w := range weeks {
				cells[weekKey(w.WeekStart)] = false
			}
			mm.PerSource[src] = cells
			mm.Memos[src] = make(map[string]string)
		}
		for _, w := range weeks {
			if w.WeekStart.After(opts.Today) {
				continue
			}
			if enrollservice.IsEnrolledOn(m.Periods, m.LegacyJoinDate, m.LegacyLeaveDate, w.WeekStart) {
				mm.WeeksInScopeCount++
			}
		}
		out[m.MemberId] = mm
	}

	picks := make(map[uuid.UUID]map[string]map[string]*memoPick)
	sawDispatch := make(map[uuid.UUID]bool)
	for _, ev := range snap.Events {
		mm, ok := out[ev.MemberId]
		if !ok {
			continue // member di luar scope / tidak diminta
		}
		cells, ok := mm.PerSource[ev.Source]
		if !ok {
			continue // sumber tidak dikenal: diamkan, bukan error
		}
		bucket := weekly.BucketForDate(ev.EventDate, opts.StartDay)
		if bucket.WeekStart.Year() != year {
			continue // event milik pekan tahun lain (batas tahun)
		}
		key := weekKey(bucket.WeekStart)
		if ev.Source == SourceDispatch {
			sawDispatch[ev.MemberId] = true
		}
		if ev.Attended {
			cells[key] = true
		}
		if ev.Memo != nil && *ev.Memo != "" {
			if picks[ev.MemberId] == nil {
				picks[ev.MemberId] = make(map[string]map[string]*memoPick)
			}
			if picks[ev.MemberId][ev.Source] == nil {
				picks[ev.MemberId][ev.Source] = make(map[string]*memoPick)
			}
			cand := memoPick{memo: *ev.Memo, updatedAt: ev.UpdatedAt, eventDate: ev.EventDate}
			if betterMemo(picks[ev.MemberId][ev.Source][key], cand) {
				picks[ev.MemberId][ev.Source][key] = &cand
			}
		}
	}
	for memberID, perSource := range picks {
		for src, perWeek := range perSource {
			for key, pick := range perWeek {
				out[memberID].Memos[src][key] = pick.memo
			}
		}
	}

	for id := range unenrolled {
		if !sawDispatch[id] {
			delete(out, id)
		}
	}

	for _, mm := range out {
		for _, attended := range mm.PerSource[SourceDispatch] {
			if attended {
				mm.DispatchCount++
			}
		}
	}
	return out
}

// BuildOverview: ringkasan satu member utk satu tahun (hitung pekan hadir per
// sumber + label periode keanggotaan)
func BuildOverview(m MemberRow, events []EventRow, year int, opts MatrixOptions) Overview {
	opts = normalizeOptions(opts)
	// enrolled-only & local-only tidak relevan utk ringkasan satu orang
	opts.EnrolledOnly = false
	opts.LocalOnly = false

	matrices := BuildMatrix(Snapshot{Members: []MemberRow{m}, Events: events}, year, opts)
	mm := matrices[m.MemberId]

	ov := Overview{
		MemberId:          m.MemberId,
		AttendedCounts:    make(map[string]int, len(AllSources)),
		WeeksInScopeCount: mm.WeeksInScopeCount,
		DispatchCount:     mm.DispatchCount,
		PeriodLabel:       enrollservice.PeriodLabel(m.Periods, m.LegacyJoinDate, m.LegacyLeaveDate),
	}
	for _, src := range AllSources {
		count := 0
		for _, attended := range mm.PerSource[src] {
			if attended {
				count++
			}
		}
		ov.AttendedCounts[src] = count
	}
	return ov
}
