// file: internals/features/meetings/service/duplicate_detector.go
package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"churchstats_backend/internals/features/meetings/model"
)

/* =======================================================
   DUPLICATE DETECTOR
   Meeting ganda muncul dari race saat submit barengan atau
   entri dobel. Kunci identitasnya SENGAJA longgar: per tipe
   hanya scope yang bermakna yang ikut — kalau semua kolom
   dipakai, record yang locality-nya terisi tidak akan
   ketemu dengan kembarannya yang locality-nya kosong.
======================================================= */

// Cabang pencocokan kunci — dilaporkan supaya bisa diuji cabang mana yang kena
const (
	MatchByDistrict = "by_district"
	MatchByLocality = "by_locality"
	MatchByGroup    = "by_group"
)

type DuplicateGroup struct {
	IdentityKey string               `json:"identity_key"`
	MatchBranch string               `json:"match_branch"`
	EventDate   string               `json:"event_date"`
	Records     []model.MeetingModel `json:"records"`
}

// IdentityKey: primary → tanggal+distrik, fallback tanggal+"locality:"+lokalitas;
// secondary → tanggal+kelompok. Kolom scope yang kebetulan terisi di satu
// record saja tidak boleh memecah grup.
func IdentityKey(m model.MeetingModel) (key string, branch string) {
	date := m.MeetingEventDate.Format("2006-01-02")
	switch m.MeetingType {
	case model.MeetingTypeSecondary:
		group := ""
		if m.MeetingGroupId != nil {
			group = m.MeetingGroupId.String()
		}
		return fmt.Sprintf("%s|%s", date, group), MatchByGroup
	default: // primary
		if m.MeetingDistrictId != nil {
			return fmt.Sprintf("%s|%s", date, m.MeetingDistrictId.String()), MatchByDistrict
		}
		locality := ""
		if m.MeetingLocalityId != nil {
			locality = m.MeetingLocalityId.String()
		}
		return fmt.Sprintf("%s|locality:%s", date, locality), MatchByLocality
	}
}

// FindDuplicateGroups: grup berukuran ≥2, urut tanggal event DESC.
// Di dalam grup record diurut created_at ASC (yang tertua biasanya aslinya).
// Tidak menghapus apa-apa — klasifikasi saja.
func FindDuplicateGroups(records []model.MeetingModel) []DuplicateGroup {
	type bucket struct {
		key     string
		branch  string
		records []model.MeetingModel
	}
	buckets := make(map[string]*bucket)
	for _, r := range records {
		key, branch := IdentityKey(r)
		// tipe ikut kunci internal supaya primary & secondary tidak saling tabrak
		full := r.MeetingType + "|" + key
		b, ok := buckets[full]
		if !ok {
			b = &bucket{key: key, branch: branch}
			buckets[full] = b
		}
		b.records = append(b.records, r)
	}

	var out []DuplicateGroup
	for _, b := range buckets {
		if len(b.records) < 2 {
			continue
		}
		recs := make([]model.MeetingModel, len(b.records))
		copy(recs, b.records)
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].MeetingCreatedAt.Before(recs[j].MeetingCreatedAt)
		})
		out = append(out, DuplicateGroup{
			IdentityKey: b.key,
			MatchBranch: b.branch,
			EventDate:   recs[0].MeetingEventDate.Format("2006-01-02"),
			Records:     recs,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate > out[j].EventDate
		}
		return out[i].IdentityKey < out[j].IdentityKey
	})
	return out
}

// CountDependents: jumlah baris kehadiran per kandidat hapus di satu grup.
// Operator tinggal cari yang paling kosong.
func CountDependents(group DuplicateGroup, attendances []model.MeetingAttendanceModel) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(group.Records))
	for _, r := range group.Records {
		out[r.MeetingId] = 0
	}
	for _, a := range attendances {
		if _, ok := out[a.MeetingAttendanceMeetingId]; ok {
			out[a.MeetingAttendanceMeetingId]++
		}
	}
	return out
}
