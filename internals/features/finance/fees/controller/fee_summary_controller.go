package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/finance/fees/dto"
	service "vti_backend/internals/features/finance/fees/service"
	helper "vti_backend/internals/helpers"
)

type FeeSummaryController struct {
	DB *gorm.DB
}

func NewFeeSummaryController(db *gorm.DB) *FeeSummaryController {
	return &FeeSummaryController{DB: db}
}

/* ======================== SUMMARY ======================== */
// GET /api/a/fees/summary
func (h *FeeSummaryController) Summary(c *fiber.Ctx) error {
	view, err := service.GetSummary(c.UserContext(), h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", view)
}

/* ======================== DUES RISK ======================== */
// GET /api/a/fees/dues-risk?threshold=&sort=
func (h *FeeSummaryController) DuesRisk(c *fiber.Ctx) error {
	threshold := service.DefaultDuesRiskThreshold
	if raw := strings.TrimSpace(c.Query("threshold")); raw != "" {
		t, err := decimal.NewFromString(raw)
		if err != nil || t.LessThanOrEqual(decimal.Zero) || t.GreaterThan(decimal.NewFromInt(1)) {
			return fiber.NewError(fiber.StatusBadRequest, "Threshold must be a number in (0, 1]")
		}
		threshold = t
	}

	by := service.DuesSort(strings.TrimSpace(c.Query("sort", string(service.DuesSortPending))))
	if !by.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Sort must be one of: pending, paid_at, created_at")
	}

	rows, err := service.GetDuesRisk(c.UserContext(), h.DB, threshold, by)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromFeeRecordModels(rows))
}
