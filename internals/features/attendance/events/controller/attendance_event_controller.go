// file: internals/features/attendance/events/controller/attendance_event_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchstats_backend/internals/features/attendance/events/dto"
	"churchstats_backend/internals/features/attendance/events/model"
	helper "churchstats_backend/internals/helpers"
	"churchstats_backend/internals/helpers/weekly"
)

type AttendanceEventController struct {
	DB *gorm.DB
}

func NewAttendanceEventController(db *gorm.DB) *AttendanceEventController {
	return &AttendanceEventController{DB: db}
}

/* ===================== CREATE (per sumber) ===================== */

// POST /report/primary-attendances
func (ctrl *AttendanceEventController) CreatePrimaryAttendance(c *fiber.Ctx) error {
	var req dto.CreatePrimaryAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran sidang raya")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran sidang raya tersimpan", m)
}

// POST /report/group-attendances
func (ctrl *AttendanceEventController) CreateGroupAttendance(c *fiber.Ctx) error {
	var req dto.CreateGroupAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran kelompok")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran kelompok tersimpan", m)
}

// POST /report/prayer-attendances
func (ctrl *AttendanceEventController) CreatePrayerAttendance(c *fiber.Ctx) error {
	var req dto.CreatePrayerAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran doa")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran doa tersimpan", m)
}

// POST /report/dispatch-records
// week_start dinormalisasi ke awal pekan Senin — entri dari form tanggal bebas
func (ctrl *AttendanceEventController) CreateDispatchRecord(c *fiber.Ctx) error {
	var req dto.CreateDispatchRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	m.DispatchRecordWeekStart = weekly.BucketForDate(m.DispatchRecordWeekStart, weekly.StartMonday).WeekStart
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan catatan pengutusan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Catatan pengutusan tersimpan", m)
}

/* ===================== LIST PER MEMBER ===================== */

// GET /report/members/:member_id/events?year=2024
// Empat sumber diambil terpisah; yang kosong tetap list kosong, bukan error.
func (ctrl *AttendanceEventController) ListMemberEvents(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID member tidak valid")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1900 || year > 2200 {
		year = time.Now().Year()
	}
	from := time.Date(year-1, time.December, 20, 0, 0, 0, 0, time.UTC) // pekan lintas tahun ikut terambil
	to := time.Date(year+1, time.January, 12, 0, 0, 0, 0, time.UTC)

	resp := dto.MemberEventsResponse{
		MemberId: memberID,
		Year:     year,
		Primary:  []model.PrimaryAttendanceModel{},
		Group:    []model.GroupAttendanceModel{},
		Prayer:   []model.PrayerAttendanceModel{},
		Dispatch: []model.DispatchRecordModel{},
	}
	db := ctrl.DB.WithContext(c.UserContext())

	if err := db.Where("primary_attendance_member_id = ? AND primary_attendance_date BETWEEN ? AND ?", memberID, from, to).
		Order("primary_attendance_date ASC").Find(&resp.Primary).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data sidang raya")
	}
	if err := db.Where("group_attendance_member_id = ? AND group_attendance_date BETWEEN ? AND ?", memberID, from, to).
		Order("group_attendance_date ASC").Find(&resp.Group).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data kelompok")
	}
	if err := db.Where("prayer_attendance_member_id = ? AND prayer_attendance_date BETWEEN ? AND ?", memberID, from, to).
		Order("prayer_attendance_date ASC").Find(&resp.Prayer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data doa")
	}
	if err := db.Where("dispatch_record_member_id = ? AND dispatch_record_week_start BETWEEN ? AND ?", memberID, from, to).
		Order("dispatch_record_week_start ASC").Find(&resp.Dispatch).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data pengutusan")
	}

	return helper.Success(c, "OK", resp)
}
