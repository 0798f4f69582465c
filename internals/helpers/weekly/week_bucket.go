// file: internals/helpers/weekly/week_bucket.go
package weekly

import (
	"fmt"
	"time"
)

/* =======================================================
   WEEK BUCKET
   Pekan kalender 7 hari, anchor ke hari mulai yang bisa
   dikonfigurasi (Minggu untuk laporan sidang raya, Senin
   untuk kelompok kecil & pengutusan).
======================================================= */

type WeekBucket struct {
	WeekNumber int       `json:"week_number"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	Label      string    `json:"label"`
}

// Konvensi hari mulai pekan
const (
	StartSunday = time.Sunday
	StartMonday = time.Monday
)

// atDate: buang jam/menit/detik, samakan ke UTC biar perbandingan tanggal stabil
func atDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// firstStartOfYear: kemunculan pertama startDay pada/atau setelah 1 Januari
func firstStartOfYear(year int, startDay time.Weekday) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(startDay) - int(jan1.Weekday()) + 7) % 7
	return jan1.AddDate(0, 0, offset)
}

func makeBucket(start time.Time, number int) WeekBucket {
	end := start.AddDate(0, 0, 6)
	return WeekBucket{
		WeekNumber: number,
		WeekStart:  start,
		WeekEnd:    end,
		Label:      fmt.Sprintf("Pekan %d (%s – %s)", number, start.Format("02 Jan"), end.Format("02 Jan")),
	}
}

// WeeksInYear: semua pekan yang AWALNYA jatuh di tahun `year`, berurutan.
// Pekan yang melewati pergantian tahun tetap milik tahun awal pekannya.
func WeeksInYear(year int, startDay time.Weekday) []WeekBucket {
	var out []WeekBucket
	start := firstStartOfYear(year, startDay)
	for n := 1; start.Year() == year; n++ {
		out = append(out, makeBucket(start, n))
		start = start.AddDate(0, 0, 7)
	}
	return out
}

// BucketForDate: pekan yang memuat `date`. Awal pekan = startDay terakhir
// pada/atau sebelum tanggal tsb; nomor pekan dihitung dari pekan pertama
// tahun AWAL pekan itu (bukan tahun tanggalnya — awal Januari bisa masih
// masuk pekan terakhir tahun sebelumnya).
func BucketForDate(date time.Time, startDay time.Weekday) WeekBucket {
	d := atDate(date)
	back := (int(d.Weekday()) - int(startDay) + 7) % 7
	start := d.AddDate(0, 0, -back)
	first := firstStartOfYear(start.Year(), startDay)
	number := int(start.Sub(first).Hours()/(24*7)) + 1
	return makeBucket(start, number)
}

// BucketForStart: cari pekan tahun `year` yang awalnya = `requested`.
// Kalau tidak cocok, mundur ke pekan terdekat SEBELUMNYA di tahun yang sama;
// kalau requested sebelum pekan pertama, pakai pekan pertama. Tidak pernah
// lompat ke tahun lain.
func BucketForStart(year int, startDay time.Weekday, requested time.Time) WeekBucket {
	weeks := WeeksInYear(year, startDay)
	req := atDate(requested)
	picked := weeks[0]
	for _, w := range weeks {
		if w.WeekStart.After(req) {
			break
		}
		picked = w
	}
	return picked
}

// DefaultBucket: pekan default utk tampilan input laporan.
// - today di tahun yang sama  → pekan berjalan (awal pekan terdekat yang tidak di masa depan)
// - today sudah lewat `year`  → pekan terakhir tahun itu
// - today belum sampai `year` → pekan pertama
func DefaultBucket(year int, startDay time.Weekday, today time.Time) WeekBucket {
	weeks := WeeksInYear(year, startDay)
	t := atDate(today)
	switch {
	case t.Year() > year:
		return weeks[len(weeks)-1]
	case t.Year() < year:
		return weeks[0]
	}
	picked := weeks[0]
	for _, w := range weeks {
		if w.WeekStart.After(t) {
			break
		}
		picked = w
	}
	return picked
}
