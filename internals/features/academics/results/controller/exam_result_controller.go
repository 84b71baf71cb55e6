package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/academics/results/dto"
	model "vti_backend/internals/features/academics/results/model"
	helper "vti_backend/internals/helpers"
)

type ExamResultController struct {
	DB *gorm.DB
}

func NewExamResultController(db *gorm.DB) *ExamResultController {
	return &ExamResultController{DB: db}
}

// POST /api/a/results
func (h *ExamResultController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam result")
	}
	return helper.JsonCreated(c, "Exam result created", m)
}

// GET /api/a/results (also mounted public). Newest first.
func (h *ExamResultController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ExamResultModel{})
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		base = base.Where("exam_result_academic_year = ?", year)
	}
	if tradeID := strings.TrimSpace(c.Query("trade_id")); tradeID != "" {
		base = base.Where("exam_result_trade_id = ?", tradeID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ExamResultModel
	if err := base.
		Order("exam_result_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/results/:id
func (h *ExamResultController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.ExamResultModel
	if err := h.DB.Where("exam_result_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam result not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

// PUT /api/a/results/:id (partial)
func (h *ExamResultController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var req dto.UpdateExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	var curr model.ExamResultModel
	if err := h.DB.Where("exam_result_id = ?", id).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam result not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", curr)
	}

	if err := h.DB.Model(&model.ExamResultModel{}).
		Where("exam_result_id = ?", id).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam result")
	}

	var updated model.ExamResultModel
	if err := h.DB.Where("exam_result_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Exam result updated", curr)
	}
	return helper.JsonUpdated(c, "Exam result updated", updated)
}

// DELETE /api/a/results/:id
func (h *ExamResultController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Where("exam_result_id = ?", id).Delete(&model.ExamResultModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam result not found")
	}
	return helper.JsonDeleted(c, "Exam result deleted", fiber.Map{"id": id})
}
