// file: internals/features/membership/enrollment/controller/enrollment_period_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchstats_backend/internals/features/membership/enrollment/dto"
	"churchstats_backend/internals/features/membership/enrollment/model"
	enrollservice "churchstats_backend/internals/features/membership/enrollment/service"
	membermodel "churchstats_backend/internals/features/membership/members/model"
	helper "churchstats_backend/internals/helpers"
)

type EnrollmentPeriodController struct {
	DB *gorm.DB
}

func NewEnrollmentPeriodController(db *gorm.DB) *EnrollmentPeriodController {
	return &EnrollmentPeriodController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /admin/enrollment-periods
func (ctrl *EnrollmentPeriodController) CreateEnrollmentPeriod(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Pastikan member-nya ada
	var member membermodel.MemberModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&member, "member_id = ?", req.EnrollmentPeriodMemberId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat periode keanggotaan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Periode keanggotaan berhasil dibuat", dto.ToEnrollmentPeriodResponse(m))
}

/* ===================== UPDATE ===================== */
// PUT /admin/enrollment-periods/:id
// Periode tidak pernah dihapus otomatis — koreksi selalu lewat edit tanggal/flag.
func (ctrl *EnrollmentPeriodController) UpdateEnrollmentPeriod(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID periode tidak valid")
	}

	var req dto.UpdateEnrollmentPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.EnrollmentPeriodModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&p, "enrollment_period_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.EnrollmentPeriodJoinDate != nil {
		updates["enrollment_period_join_date"] = req.EnrollmentPeriodJoinDate
	}
	if req.EnrollmentPeriodLeaveDate != nil {
		updates["enrollment_period_leave_date"] = req.EnrollmentPeriodLeaveDate
	}
	if req.EnrollmentPeriodIsUncertain != nil {
		updates["enrollment_period_is_uncertain"] = *req.EnrollmentPeriodIsUncertain
	}
	if req.EnrollmentPeriodMemo != nil {
		updates["enrollment_period_memo"] = req.EnrollmentPeriodMemo
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.ToEnrollmentPeriodResponse(&p))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&p).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui periode")
	}
	return helper.Success(c, "Periode keanggotaan diperbarui", dto.ToEnrollmentPeriodResponse(&p))
}

/* ===================== LIST PER MEMBER ===================== */
// GET /admin/members/:member_id/enrollment-periods
func (ctrl *EnrollmentPeriodController) ListByMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID member tidak valid")
	}

	var periods []model.EnrollmentPeriodModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("enrollment_period_member_id = ?", memberID).
		Order("enrollment_period_number ASC").
		Find(&periods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// data kosong = list kosong, bukan error
	out := make([]dto.EnrollmentPeriodResponse, 0, len(periods))
	for i := range periods {
		out = append(out, dto.ToEnrollmentPeriodResponse(&periods[i]))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== REVIEW LIST ===================== */
// GET /admin/enrollment-periods/uncertain?locality_id=...
// Daftar member yang tanggal keanggotaannya perlu direview (flag uncertain
// atau periode pertama tanpa tanggal masuk).
func (ctrl *EnrollmentPeriodController) ListUncertain(c *fiber.Ctx) error {
	localityID, err := uuid.Parse(c.Query("locality_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "locality_id wajib diisi")
	}

	var members []membermodel.MemberModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("member_locality_id = ?", localityID).
		Order("member_full_name ASC").
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(members) == 0 {
		return helper.Success(c, "OK", []dto.UncertainEnrollmentItem{})
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.MemberId)
	}

	var periods []model.EnrollmentPeriodModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("enrollment_period_member_id IN ?", memberIDs).
		Find(&periods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	byMember := make(map[uuid.UUID][]model.EnrollmentPeriodModel, len(members))
	for _, p := range periods {
		byMember[p.EnrollmentPeriodMemberId] = append(byMember[p.EnrollmentPeriodMemberId], p)
	}

	items := make([]dto.UncertainEnrollmentItem, 0)
	for _, m := range members {
		ps := byMember[m.MemberId]
		if !enrollservice.HasUncertainEnrollment(ps) {
			continue
		}
		ordered := enrollservice.SortByNumber(ps)
		resp := make([]dto.EnrollmentPeriodResponse, 0, len(ordered))
		for i := range ordered {
			resp = append(resp, dto.ToEnrollmentPeriodResponse(&ordered[i]))
		}
		items = append(items, dto.UncertainEnrollmentItem{
			MemberId:       m.MemberId,
			MemberFullName: m.MemberFullName,
			PeriodLabel:    enrollservice.PeriodLabel(ps, m.MemberLegacyJoinDate, m.MemberLegacyLeaveDate),
			Periods:        resp,
		})
	}
	return helper.Success(c, "OK", items)
}
