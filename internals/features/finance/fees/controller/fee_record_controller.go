package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/finance/fees/dto"
	model "vti_backend/internals/features/finance/fees/model"
	service "vti_backend/internals/features/finance/fees/service"
	helper "vti_backend/internals/helpers"
	helperAuth "vti_backend/internals/helpers/auth"
)

type FeeRecordController struct {
	DB *gorm.DB
}

func NewFeeRecordController(db *gorm.DB) *FeeRecordController {
	return &FeeRecordController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fees
func (h *FeeRecordController) Create(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	rec, err := service.CreateFeeRecord(c.UserContext(), h.DB, service.CreateFeeRecordInput{
		StudentID:           req.FeeRecordStudentID,
		StudentName:         req.FeeRecordStudentName,
		FatherName:          req.FeeRecordFatherName,
		Mobile:              req.FeeRecordMobile,
		Trade:               req.FeeRecordTrade,
		FeeType:             req.FeeRecordFeeType,
		AcademicYear:        req.FeeRecordAcademicYear,
		Amount:              req.FeeRecordAmount,
		InstallmentEnabled:  req.FeeRecordInstallmentEnabled,
		TotalInstallments:   req.FeeRecordTotalInstallments,
		DueDate:             req.FeeRecordDueDate,
		InstallmentDueDates: req.InstallmentDueDates,
		ActorID:             &adminID,
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Fee record created", dto.FromFeeRecordModel(*rec))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fees/:id
func (h *FeeRecordController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	rec, err := service.GetFeeRecord(c.UserContext(), h.DB, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromFeeRecordModel(*rec))
}

/* ======================== LIST ======================== */
// GET /api/a/fees?status=&fee_type=&trade=&year=&q=&page=&per_page=
func (h *FeeRecordController) List(c *fiber.Ctx) error {
	var q dto.ListFeeRecordQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeRecordModel{})

	if q.Status != nil && *q.Status != "" {
		base = base.Where("fee_record_status = ?", *q.Status)
	}
	if q.FeeType != nil && *q.FeeType != "" {
		base = base.Where("fee_record_fee_type = ?", *q.FeeType)
	}
	if q.Trade != nil && *q.Trade != "" {
		base = base.Where("fee_record_trade = ?", *q.Trade)
	}
	if q.Year != nil && *q.Year != "" {
		base = base.Where("fee_record_academic_year = ?", *q.Year)
	}
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		like := fmt.Sprintf("%%%s%%", strings.TrimSpace(*q.Q))
		base = base.Where("(fee_record_student_name ILIKE ? OR fee_record_invoice_number ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeeRecordModel
	if err := base.
		Order("fee_record_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromFeeRecordModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/fees/:id
func (h *FeeRecordController) Delete(c *fiber.Ctx) error {
	if _, err := helperAuth.GetAdminIDFromToken(c); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := service.DeleteFeeRecord(c.UserContext(), h.DB, id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Fee record deleted", fiber.Map{"id": id})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID is not a valid UUID")
	}
	return id, nil
}
