package dto

import (
	model "vti_backend/internals/features/media/gallery/model"
)

type CreateGalleryItemRequest struct {
	GalleryItemTitle        string  `json:"gallery_item_title" validate:"required,min=2,max=200"`
	GalleryItemCategory     string  `json:"gallery_item_category" validate:"required,min=2,max=60"`
	GalleryItemImageURL     string  `json:"gallery_item_image_url" validate:"required,url,max=500"`
	GalleryItemCaption      *string `json:"gallery_item_caption" validate:"omitempty,max=500"`
	GalleryItemDisplayOrder int     `json:"gallery_item_display_order" validate:"omitempty,min=0,max=1000"`
}

func (r CreateGalleryItemRequest) ToModel() *model.GalleryItemModel {
	return &model.GalleryItemModel{
		GalleryItemTitle:        r.GalleryItemTitle,
		GalleryItemCategory:     r.GalleryItemCategory,
		GalleryItemImageURL:     r.GalleryItemImageURL,
		GalleryItemCaption:      r.GalleryItemCaption,
		GalleryItemDisplayOrder: r.GalleryItemDisplayOrder,
	}
}

type UpdateGalleryItemRequest struct {
	GalleryItemTitle        *string `json:"gallery_item_title" validate:"omitempty,min=2,max=200"`
	GalleryItemCategory     *string `json:"gallery_item_category" validate:"omitempty,min=2,max=60"`
	GalleryItemImageURL     *string `json:"gallery_item_image_url" validate:"omitempty,url,max=500"`
	GalleryItemCaption      *string `json:"gallery_item_caption" validate:"omitempty,max=500"`
	GalleryItemDisplayOrder *int    `json:"gallery_item_display_order" validate:"omitempty,min=0,max=1000"`
}

func (r UpdateGalleryItemRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.GalleryItemTitle != nil {
		patch["gallery_item_title"] = *r.GalleryItemTitle
	}
	if r.GalleryItemCategory != nil {
		patch["gallery_item_category"] = *r.GalleryItemCategory
	}
	if r.GalleryItemImageURL != nil {
		patch["gallery_item_image_url"] = *r.GalleryItemImageURL
	}
	if r.GalleryItemCaption != nil {
		patch["gallery_item_caption"] = *r.GalleryItemCaption
	}
	if r.GalleryItemDisplayOrder != nil {
		patch["gallery_item_display_order"] = *r.GalleryItemDisplayOrder
	}
	return patch
}
