// file: internals/features/attendance/matrix/controller/matrix_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accessservice "churchstats_backend/internals/features/access/service"
	"churchstats_backend/internals/features/attendance/matrix/dto"
	"churchstats_backend/internals/features/attendance/matrix/service"
	helper "churchstats_backend/internals/helpers"
	"churchstats_backend/internals/helpers/weekly"
)

type MatrixController struct {
	DB *gorm.DB
}

func NewMatrixController(db *gorm.DB) *MatrixController {
	return &MatrixController{DB: db}
}

func parseStartDay(raw *string) time.Weekday {
	if raw != nil && *raw == "monday" {
		return weekly.StartMonday
	}
	return weekly.StartSunday
}

/* ===================== MATRIX ===================== */
// GET /reports/matrix?year=&locality_id=&district_id=&enrolled_only=&local_only=&week_start=
// Alur halaman: scope efektif dulu, baru snapshot, baru aggregator murni.
func (ctrl *MatrixController) GetMatrix(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MatrixQueryRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	year := time.Now().Year()
	if req.Year != nil {
		year = *req.Year
	}

	var requestedLocality *uuid.UUID
	if req.LocalityId != nil {
		if id, perr := uuid.Parse(*req.LocalityId); perr == nil {
			requestedLocality = &id
		}
	}
	requestedDistrict := ""
	if req.DistrictId != nil {
		requestedDistrict = *req.DistrictId
	}

	sc, err := accessservice.LoadScopeContext(c.UserContext(), ctrl.DB, userID, requestedLocality, requestedDistrict)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data akses, silakan coba lagi")
	}
	if sc.Locality.LocalityID == nil {
		// tanpa akses lokalitas sama sekali → rekap kosong, bukan error
		return helper.Success(c, "OK", dto.MatrixResponse{
			Year:             year,
			Weeks:            weekly.WeeksInYear(year, parseStartDay(req.WeekStartDay)),
			Members:          []dto.MemberMatrixItem{},
			DistrictId:       sc.District.DistrictID,
			LocalityDecision: string(sc.Locality.Decision),
			DistrictDecision: string(sc.District.Decision),
		})
	}

	// district utk filter snapshot: "__all__" = seluruh lokalitas
	var snapshotDistrict *uuid.UUID
	if sc.District.DistrictID != "" && sc.District.DistrictID != accessservice.AllDistricts {
		if id, perr := uuid.Parse(sc.District.DistrictID); perr == nil {
			snapshotDistrict = &id
		}
	}

	snap, degraded, err := service.LoadSnapshot(c.UserContext(), ctrl.DB, *sc.Locality.LocalityID, snapshotDistrict, year)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data kehadiran, silakan coba lagi")
	}

	opts := service.MatrixOptions{
		StartDay: parseStartDay(req.WeekStartDay),
		Today:    time.Now(),
	}
	if req.EnrolledOnly != nil {
		opts.EnrolledOnly = *req.EnrolledOnly
	}
	if req.LocalOnly != nil && *req.LocalOnly {
		opts.LocalOnly = true
		opts.DistrictId = snapshotDistrict
	}

	matrices := service.BuildMatrix(snap, year, opts)

	resp := dto.MatrixResponse{
		Year:             year,
		Weeks:            weekly.WeeksInYear(year, opts.StartDay),
		Members:          make([]dto.MemberMatrixItem, 0, len(matrices)),
		DegradedSources:  degraded,
		LocalityId:       sc.Locality.LocalityID,
		DistrictId:       sc.District.DistrictID,
		LocalityDecision: string(sc.Locality.Decision),
		DistrictDecision: string(sc.District.Decision),
	}
	// urutan output mengikuti urutan member di snapshot (sudah sort nama)
	for _, m := range snap.Members {
		mm, ok := matrices[m.MemberId]
		if !ok {
			continue
		}
		resp.Members = append(resp.Members, dto.MemberMatrixItem{
			MemberId:          mm.MemberId,
			MemberFullName:    m.FullName,
			PerSource:         mm.PerSource,
			Memos:             mm.Memos,
			WeeksInScopeCount: mm.WeeksInScopeCount,
			DispatchCount:     mm.DispatchCount,
		})
	}
	return helper.Success(c, "OK", resp)
}

/* ===================== OVERVIEW ===================== */
// GET /reports/members/:member_id/overview?year=
func (ctrl *MatrixController) GetMemberOverview(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID member tidak valid")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 1900 || year > 2200 {
		year = time.Now().Year()
	}

	sc, err := accessservice.LoadScopeContext(c.UserContext(), ctrl.DB, userID, nil, "")
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data akses, silakan coba lagi")
	}
	if sc.Locality.LocalityID == nil {
		return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
	}

	snap, degraded, err := service.LoadSnapshot(c.UserContext(), ctrl.DB, *sc.Locality.LocalityID, nil, year)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal memuat data kehadiran, silakan coba lagi")
	}

	var member *service.MemberRow
	for i := range snap.Members {
		if snap.Members[i].MemberId == memberID {
			member = &snap.Members[i]
			break
		}
	}
	if member == nil || !sc.DistrictVisible(member.DistrictId) {
		// member di luar lokalitas/distrik efektif tidak dibedakan dari
		// member yang memang tidak ada
		return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
	}

	ov := service.BuildOverview(*member, snap.Events, year, service.MatrixOptions{
		StartDay: weekly.StartSunday,
		Today:    time.Now(),
	})
	return helper.Success(c, "OK", dto.OverviewResponse{Overview: ov, Year: year, DegradedSources: degraded})
}
