// file: internals/features/membership/members/controller/member_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accessservice "churchstats_backend/internals/features/access/service"
	"churchstats_backend/internals/features/membership/members/model"
	helper "churchstats_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* ===================== LIST (ber-scope) ===================== */
// GET /members?locality_id=&district_id=&search=
// Daftar selalu dibatasi scope efektif — permintaan lokalitas di luar akses
// diam-diam jatuh ke default.
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var requestedLocality *uuid.UUID
	if raw := strings.TrimSpace(c.Query("locality_id")); raw != "" {
		if id, perr := uuid.Parse(raw); perr == nil {
			requestedLocality = &id
		}
	}

	sc, err := accessservice.LoadScopeContext(c.UserContext(), ctrl.DB, userID, requestedLocality, c.Query("district_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data akses, silakan coba lagi")
	}
	if sc.Locality.LocalityID == nil {
		return helper.Success(c, "OK", []model.MemberModel{})
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Where("member_locality_id = ?", *sc.Locality.LocalityID)
	if sc.District.DistrictID != "" && sc.District.DistrictID != accessservice.AllDistricts {
		if id, perr := uuid.Parse(sc.District.DistrictID); perr == nil {
			q = q.Where("member_district_id = ?", id)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("member_full_name ILIKE ?", "%"+search+"%")
	}

	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	var total int64
	if err := q.Model(&model.MemberModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data member")
	}

	order, _ := p.SafeOrderClause(map[string]string{
		"name":      "member_full_name",
		"join_date": "member_legacy_join_date",
	}, "name")

	var members []model.MemberModel
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data member")
	}

	return helper.Success(c, "OK", fiber.Map{
		"members":    members,
		"pagination": helper.BuildMeta(total, p),
	})
}

/* ===================== DETAIL ===================== */
// GET /members/:id
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID member tidak valid")
	}

	sc, err := accessservice.LoadScopeContext(c.UserContext(), ctrl.DB, userID, nil, "")
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data akses, silakan coba lagi")
	}
	if sc.Locality.LocalityID == nil {
		return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
	}

	var member model.MemberModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("member_id = ? AND member_locality_id = ?", id, *sc.Locality.LocalityID).
		First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// member di luar scope tidak dibedakan dari yang tidak ada
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data member")
	}
	if !sc.DistrictVisible(member.MemberDistrictId) {
		return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
	}
	return helper.Success(c, "OK", member)
}
