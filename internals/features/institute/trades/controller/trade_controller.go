package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/institute/trades/dto"
	model "vti_backend/internals/features/institute/trades/model"
	helper "vti_backend/internals/helpers"
)

type TradeController struct {
	DB *gorm.DB
}

func NewTradeController(db *gorm.DB) *TradeController {
	return &TradeController{DB: db}
}

// POST /api/a/trades
func (h *TradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateTradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A trade with that name or code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create trade")
	}
	return helper.JsonCreated(c, "Trade created", m)
}

// GET /api/a/trades (also mounted public)
func (h *TradeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.TradeModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(trade_name ILIKE ? OR trade_code ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.TradeModel
	if err := base.
		Order("trade_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/trades/:id
func (h *TradeController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.TradeModel
	if err := h.DB.Where("trade_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trade not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

// PUT /api/a/trades/:id (partial)
func (h *TradeController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var req dto.UpdateTradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	var curr model.TradeModel
	if err := h.DB.Where("trade_id = ?", id).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trade not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", curr)
	}

	if err := h.DB.Model(&model.TradeModel{}).
		Where("trade_id = ?", id).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A trade with that name or code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update trade")
	}

	var updated model.TradeModel
	if err := h.DB.Where("trade_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Trade updated", curr)
	}
	return helper.JsonUpdated(c, "Trade updated", updated)
}

// DELETE /api/a/trades/:id
func (h *TradeController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Where("trade_id = ?", id).Delete(&model.TradeModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Trade not found")
	}
	return helper.JsonDeleted(c, "Trade deleted", fiber.Map{"id": id})
}
