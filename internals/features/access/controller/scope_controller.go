// file: internals/features/access/controller/scope_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchstats_backend/internals/features/access/dto"
	"churchstats_backend/internals/features/access/service"
	helper "churchstats_backend/internals/helpers"
)

type ScopeController struct {
	DB *gorm.DB
}

func NewScopeController(db *gorm.DB) *ScopeController {
	return &ScopeController{DB: db}
}

// GET /me/scope?locality_id=&district_id=
// Langkah pertama semua halaman ber-scope: lokalitas/distrik efektif.
// Nilai di luar akses tidak ditolak — diganti default tanpa komentar.
func (ctrl *ScopeController) GetEffectiveScope(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var requestedLocality *uuid.UUID
	if raw := strings.TrimSpace(c.Query("locality_id")); raw != "" {
		if id, perr := uuid.Parse(raw); perr == nil {
			requestedLocality = &id
		}
		// locality_id rusak dibiarkan: resolver jatuh ke default
	}

	sc, err := service.LoadScopeContext(c.UserContext(), ctrl.DB, userID, requestedLocality, c.Query("district_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data akses, silakan coba lagi")
	}
	return helper.Success(c, "OK", dto.ToEffectiveScopeResponse(sc))
}
