package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/institute/staff/dto"
	model "vti_backend/internals/features/institute/staff/model"
	helper "vti_backend/internals/helpers"
)

type StaffMemberController struct {
	DB *gorm.DB
}

func NewStaffMemberController(db *gorm.DB) *StaffMemberController {
	return &StaffMemberController{DB: db}
}

// POST /api/a/staff
func (h *StaffMemberController) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create staff member")
	}
	return helper.JsonCreated(c, "Staff member created", m)
}

// GET /api/a/staff (also mounted public). Sorted by display order then name.
func (h *StaffMemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.StaffMemberModel{})
	if tradeID := strings.TrimSpace(c.Query("trade_id")); tradeID != "" {
		base = base.Where("staff_member_trade_id = ?", tradeID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(staff_member_name ILIKE ? OR staff_member_designation ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StaffMemberModel
	if err := base.
		Order("staff_member_display_order ASC, staff_member_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/staff/:id
func (h *StaffMemberController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.StaffMemberModel
	if err := h.DB.Where("staff_member_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

// PUT /api/a/staff/:id (partial)
func (h *StaffMemberController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var req dto.UpdateStaffMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	var curr model.StaffMemberModel
	if err := h.DB.Where("staff_member_id = ?", id).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", curr)
	}

	if err := h.DB.Model(&model.StaffMemberModel{}).
		Where("staff_member_id = ?", id).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update staff member")
	}

	var updated model.StaffMemberModel
	if err := h.DB.Where("staff_member_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Staff member updated", curr)
	}
	return helper.JsonUpdated(c, "Staff member updated", updated)
}

// DELETE /api/a/staff/:id
func (h *StaffMemberController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Where("staff_member_id = ?", id).Delete(&model.StaffMemberModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
	}
	return helper.JsonDeleted(c, "Staff member deleted", fiber.Map{"id": id})
}
