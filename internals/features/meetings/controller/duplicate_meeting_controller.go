// file: internals/features/meetings/controller/duplicate_meeting_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchstats_backend/internals/constants"
	"churchstats_backend/internals/features/meetings/dto"
	"churchstats_backend/internals/features/meetings/model"
	"churchstats_backend/internals/features/meetings/service"
	helper "churchstats_backend/internals/helpers"
)

type DuplicateMeetingController struct {
	DB *gorm.DB
}

func NewDuplicateMeetingController(db *gorm.DB) *DuplicateMeetingController {
	return &DuplicateMeetingController{DB: db}
}

/* ===================== DIAGNOSA ===================== */
// GET /admin/meetings/duplicates
// Jalan di seluruh record tanpa scope — halaman diagnosa admin.
func (ctrl *DuplicateMeetingController) ListDuplicates(c *fiber.Ctx) error {
	var meetings []model.MeetingModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Find(&meetings).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data meeting, silakan coba lagi")
	}

	groups := service.FindDuplicateGroups(meetings)
	if len(groups) == 0 {
		return helper.Success(c, "Tidak ada duplikat", []dto.DuplicateGroupItem{})
	}

	// kehadiran hanya utk meeting yang masuk grup duplikat
	dupIDs := make([]uuid.UUID, 0)
	for _, g := range groups {
		for _, r := range g.Records {
			dupIDs = append(dupIDs, r.MeetingId)
		}
	}
	var attendances []model.MeetingAttendanceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("meeting_attendance_meeting_id IN ?", dupIDs).
		Find(&attendances).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data kehadiran meeting")
	}

	items := make([]dto.DuplicateGroupItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, dto.ToDuplicateGroupItem(g, service.CountDependents(g, attendances)))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== HAPUS ===================== */
// DELETE /admin/meetings
// Role admin dicek ULANG di sini, bukan cuma di middleware/UI. Meeting +
// baris kehadirannya dihapus dalam satu transaksi — semua atau tidak sama sekali.
func (ctrl *DuplicateMeetingController) DeleteMeetings(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role != constants.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("hapus meeting"))
	}

	var req dto.DeleteMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var resp dto.DeleteMeetingResponse
	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		att := tx.Where("meeting_attendance_meeting_id IN ?", req.MeetingIds).
			Delete(&model.MeetingAttendanceModel{})
		if att.Error != nil {
			return att.Error
		}
		mt := tx.Where("meeting_id IN ?", req.MeetingIds).
			Delete(&model.MeetingModel{})
		if mt.Error != nil {
			return mt.Error
		}
		resp.DeletedMeetings = int(mt.RowsAffected)
		resp.DeletedAttendances = int(att.RowsAffected)
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus meeting")
	}
	return helper.Success(c, "Meeting dihapus", resp)
}
