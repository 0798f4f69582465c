// file: internals/features/membership/enrollment/service/period_resolver.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"churchstats_backend/internals/features/membership/enrollment/model"
)

/* =======================================================
   PERIOD RESOLVER
   Jawaban satu pertanyaan: "tanggal D, dia anggota atau
   bukan?" — murni, tanpa DB, jalan di atas snapshot baris
   enrollment_periods yang sudah diambil caller.
======================================================= */

// atDate: normalisasi ke tanggal saja (UTC) supaya perbandingan inklusif stabil
func atDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PeriodContains: interval [join, leave], inklusif dua sisi.
// join NULL = tidak ada batas bawah; leave NULL = tidak ada batas atas.
func PeriodContains(join, leave *time.Time, on time.Time) bool {
	d := atDate(on)
	if join != nil && d.Before(atDate(*join)) {
		return false
	}
	if leave != nil && d.After(atDate(*leave)) {
		return false
	}
	return true
}

// IsEnrolledOn: aturan bertingkat —
//  1. ada periode  → true kalau SALAH SATU periode memuat tanggal
//     (periode uncertain ikut dihitung sama persis; overlap juga aman)
//  2. tanpa periode → fallback pasangan join/leave lama di baris member
//  3. tanpa keduanya → dianggap anggota tanpa syarat
func IsEnrolledOn(periods []model.EnrollmentPeriodModel, legacyJoin, legacyLeave *time.Time, on time.Time) bool {
	if len(periods) > 0 {
		for _, p := range periods {
			if PeriodContains(p.EnrollmentPeriodJoinDate, p.EnrollmentPeriodLeaveDate, on) {
				return true
			}
		}
		return false
	}
	if legacyJoin != nil || legacyLeave != nil {
		return PeriodContains(legacyJoin, legacyLeave, on)
	}
	return true
}

// HasUncertainEnrollment: masuk daftar review admin kalau ada periode yang
// diflag uncertain, ATAU periode pertamanya tidak punya tanggal masuk.
func HasUncertainEnrollment(periods []model.EnrollmentPeriodModel) bool {
	if len(periods) == 0 {
		return false
	}
	ordered := SortByNumber(periods)
	if ordered[0].EnrollmentPeriodJoinDate == nil {
		return true
	}
	for _, p := range ordered {
		if p.EnrollmentPeriodIsUncertain {
			return true
		}
	}
	return false
}

// SortByNumber: salinan terurut by enrollment_period_number (input tidak dimutasi)
func SortByNumber(periods []model.EnrollmentPeriodModel) []model.EnrollmentPeriodModel {
	out := make([]model.EnrollmentPeriodModel, len(periods))
	copy(out, periods)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EnrollmentPeriodNumber < out[j].EnrollmentPeriodNumber
	})
	return out
}

// PeriodLabel: ringkasan periode utk tampilan rekap, mis. "2020-03-01 ~ 2021-05-09, 2023-01-10 ~"
func PeriodLabel(periods []model.EnrollmentPeriodModel, legacyJoin, legacyLeave *time.Time) string {
	fmtSide := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	}
	if len(periods) == 0 {
		if legacyJoin == nil && legacyLeave == nil {
			return ""
		}
		return strings.TrimSpace(fmt.Sprintf("%s ~ %s", fmtSide(legacyJoin), fmtSide(legacyLeave)))
	}
	parts := make([]string, 0, len(periods))
	for _, p := range SortByNumber(periods) {
		label := strings.TrimSpace(fmt.Sprintf("%s ~ %s", fmtSide(p.EnrollmentPeriodJoinDate), fmtSide(p.EnrollmentPeriodLeaveDate)))
		if p.EnrollmentPeriodIsUncertain {
			label += " (?)"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}
