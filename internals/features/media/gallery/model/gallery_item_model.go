package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryItemModel struct {
	GalleryItemID uuid.UUID `gorm:"column:gallery_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gallery_item_id"`

	GalleryItemTitle        string  `gorm:"column:gallery_item_title;type:text;not null" json:"gallery_item_title"`
	GalleryItemCategory     string  `gorm:"column:gallery_item_category;type:text;not null;index" json:"gallery_item_category"`
	GalleryItemImageURL     string  `gorm:"column:gallery_item_image_url;type:text;not null" json:"gallery_item_image_url"`
	GalleryItemCaption      *string `gorm:"column:gallery_item_caption;type:text" json:"gallery_item_caption,omitempty"`
	GalleryItemDisplayOrder int     `gorm:"column:gallery_item_display_order;not null;default:0" json:"gallery_item_display_order"`

	GalleryItemCreatedAt time.Time      `gorm:"column:gallery_item_created_at;autoCreateTime" json:"gallery_item_created_at"`
	GalleryItemUpdatedAt *time.Time     `gorm:"column:gallery_item_updated_at;autoUpdateTime" json:"gallery_item_updated_at,omitempty"`
	GalleryItemDeletedAt gorm.DeletedAt `gorm:"column:gallery_item_deleted_at;index" json:"gallery_item_deleted_at,omitempty"`
}

func (GalleryItemModel) TableName() string { return "gallery_items" }
