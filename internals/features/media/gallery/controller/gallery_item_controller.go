package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/media/gallery/dto"
	model "vti_backend/internals/features/media/gallery/model"
	helper "vti_backend/internals/helpers"
)

type GalleryItemController struct {
	DB *gorm.DB
}

func NewGalleryItemController(db *gorm.DB) *GalleryItemController {
	return &GalleryItemController{DB: db}
}

// POST /api/a/gallery
func (h *GalleryItemController) Create(c *fiber.Ctx) error {
	var req dto.CreateGalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create gallery item")
	}
	return helper.JsonCreated(c, "Gallery item created", m)
}

// GET /api/a/gallery (also mounted public). Filter by category.
func (h *GalleryItemController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 30, 200)

	base := h.DB.Model(&model.GalleryItemModel{})
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		base = base.Where("gallery_item_category = ?", cat)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.GalleryItemModel
	if err := base.
		Order("gallery_item_display_order ASC, gallery_item_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/gallery/:id
func (h *GalleryItemController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.GalleryItemModel
	if err := h.DB.Where("gallery_item_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gallery item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

// PUT /api/a/gallery/:id (partial)
func (h *GalleryItemController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var req dto.UpdateGalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	var curr model.GalleryItemModel
	if err := h.DB.Where("gallery_item_id = ?", id).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gallery item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", curr)
	}

	if err := h.DB.Model(&model.GalleryItemModel{}).
		Where("gallery_item_id = ?", id).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update gallery item")
	}

	var updated model.GalleryItemModel
	if err := h.DB.Where("gallery_item_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Gallery item updated", curr)
	}
	return helper.JsonUpdated(c, "Gallery item updated", updated)
}

// DELETE /api/a/gallery/:id
func (h *GalleryItemController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Where("gallery_item_id = ?", id).Delete(&model.GalleryItemModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Gallery item not found")
	}
	return helper.JsonDeleted(c, "Gallery item deleted", fiber.Map{"id": id})
}
