// file: internals/features/attendance/matrix/service/snapshot_loader.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventmodel "churchstats_backend/internals/features/attendance/events/model"
	enrollmodel "churchstats_backend/internals/features/membership/enrollment/model"
	membermodel "churchstats_backend/internals/features/membership/members/model"
)

/* =======================================================
   SNAPSHOT LOADER
   Materialisasi semua baris yang dibutuhkan aggregator
   dalam satu request. Gagal baca satu sumber event TIDAK
   menggagalkan seluruh rekap — sumber itu didegradasi jadi
   kosong dan dilaporkan di `degraded` supaya UI bisa kasih
   tombol retry. Gagal baca member/periode tetap fatal.
======================================================= */

func orCreated(updated *time.Time, created time.Time) time.Time {
	if updated != nil {
		return *updated
	}
	return created
}

// Jendela ambil data dilebihkan beberapa hari supaya pekan lintas tahun
// (akhir Des / awal Jan) tetap terambil; aggregator yang memfilter per bucket.
func yearWindow(year int) (time.Time, time.Time) {
	from := time.Date(year-1, time.December, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(year+1, time.January, 12, 0, 0, 0, 0, time.UTC)
	return from, to
}

func LoadSnapshot(ctx context.Context, db *gorm.DB, localityID uuid.UUID, districtID *uuid.UUID, year int) (Snapshot, []string, error) {
	var snap Snapshot
	var degraded []string

	q := db.WithContext(ctx).Where("member_locality_id = ?", localityID)
	if districtID != nil {
		q = q.Where("member_district_id = ?", *districtID)
	}
	var members []membermodel.MemberModel
	if err := q.Order("member_full_name ASC").Find(&members).Error; err != nil {
		return snap, nil, err
	}
	if len(members) == 0 {
		return snap, nil, nil
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.MemberId)
	}

	var periods []enrollmodel.EnrollmentPeriodModel
	if err := db.WithContext(ctx).
		Where("enrollment_period_member_id IN ?", memberIDs).
		Find(&periods).Error; err != nil {
		return snap, nil, err
	}
	periodsByMember := make(map[uuid.UUID][]enrollmodel.EnrollmentPeriodModel)
	for _, p := range periods {
		periodsByMember[p.EnrollmentPeriodMemberId] = append(periodsByMember[p.EnrollmentPeriodMemberId], p)
	}

	for _, m := range members {
		snap.Members = append(snap.Members, MemberRow{
			MemberId:        m.MemberId,
			FullName:        m.MemberFullName,
			DistrictId:      m.MemberDistrictId,
			GroupId:         m.MemberGroupId,
			Periods:         periodsByMember[m.MemberId],
			LegacyJoinDate:  m.MemberLegacyJoinDate,
			LegacyLeaveDate: m.MemberLegacyLeaveDate,
		})
	}

	from, to := yearWindow(year)

	var primaries []eventmodel.PrimaryAttendanceModel
	if err := db.WithContext(ctx).
		Where("primary_attendance_member_id IN ? AND primary_attendance_date BETWEEN ? AND ?", memberIDs, from, to).
		Find(&primaries).Error; err != nil {
		degraded = append(degraded, SourcePrimary)
	} else {
		for _, e := range primaries {
			snap.Events = append(snap.Events, EventRow{
				MemberId:  e.PrimaryAttendanceMemberId,
				Source:    SourcePrimary,
				EventDate: e.PrimaryAttendanceDate,
				Attended:  e.PrimaryAttendanceAttended,
				Memo:      e.PrimaryAttendanceMemo,
				UpdatedAt: orCreated(e.PrimaryAttendanceUpdatedAt, e.PrimaryAttendanceCreatedAt),
			})
		}
	}

	var groups []eventmodel.GroupAttendanceModel
	if err := db.WithContext(ctx).
		Where("group_attendance_member_id IN ? AND group_attendance_date BETWEEN ? AND ?", memberIDs, from, to).
		Find(&groups).Error; err != nil {
		degraded = append(degraded, SourceGroup)
	} else {
		for _, e := range groups {
			snap.Events = append(snap.Events, EventRow{
				MemberId:  e.GroupAttendanceMemberId,
				Source:    SourceGroup,
				EventDate: e.GroupAttendanceDate,
				Attended:  e.GroupAttendanceAttended,
				Memo:      e.GroupAttendanceMemo,
				UpdatedAt: orCreated(e.GroupAttendanceUpdatedAt, e.GroupAttendanceCreatedAt),
			})
		}
	}

	var prayers []eventmodel.PrayerAttendanceModel
	if err := db.WithContext(ctx).
		Where("prayer_attendance_member_id IN ? AND prayer_attendance_date BETWEEN ? AND ?", memberIDs, from, to).
		Find(&prayers).Error; err != nil {
		degraded = append(degraded, SourcePrayer)
	} else {
		for _, e := range prayers {
			snap.Events = append(snap.Events, EventRow{
				MemberId:  e.PrayerAttendanceMemberId,
				Source:    SourcePrayer,
				EventDate: e.PrayerAttendanceDate,
				Attended:  e.PrayerAttendanceAttended,
				Memo:      e.PrayerAttendanceMemo,
				UpdatedAt: orCreated(e.PrayerAttendanceUpdatedAt, e.PrayerAttendanceCreatedAt),
			})
		}
	}

	var dispatches []eventmodel.DispatchRecordModel
	if err := db.WithContext(ctx).
		Where("dispatch_record_member_id IN ? AND dispatch_record_week_start BETWEEN ? AND ?", memberIDs, from, to).
		Find(&dispatches).Error; err != nil {
		degraded = append(degraded, SourceDispatch)
	} else {
		for _, e := range dispatches {
			snap.Events = append(snap.Events, EventRow{
				MemberId:  e.DispatchRecordMemberId,
				Source:    SourceDispatch,
				EventDate: e.DispatchRecordWeekStart,
				Attended:  e.DispatchRecordOccurred,
				Memo:      e.DispatchRecordMemo,
				UpdatedAt: orCreated(e.DispatchRecordUpdatedAt, e.DispatchRecordCreatedAt),
			})
		}
	}

	return snap, degraded, nil
}
