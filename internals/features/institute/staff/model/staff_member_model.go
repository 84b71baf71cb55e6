package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffMemberModel struct {
	StaffMemberID uuid.UUID `gorm:"column:staff_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_member_id"`

	StaffMemberName          string     `gorm:"column:staff_member_name;type:text;not null" json:"staff_member_name"`
	StaffMemberDesignation   string     `gorm:"column:staff_member_designation;type:text;not null" json:"staff_member_designation"`
	StaffMemberQualification *string    `gorm:"column:staff_member_qualification;type:text" json:"staff_member_qualification,omitempty"`
	StaffMemberTradeID       *uuid.UUID `gorm:"column:staff_member_trade_id;type:uuid;index" json:"staff_member_trade_id,omitempty"`
	StaffMemberPhotoURL      *string    `gorm:"column:staff_member_photo_url;type:text" json:"staff_member_photo_url,omitempty"`
	StaffMemberDisplayOrder  int        `gorm:"column:staff_member_display_order;not null;default:0" json:"staff_member_display_order"`

	StaffMemberCreatedAt time.Time      `gorm:"column:staff_member_created_at;autoCreateTime" json:"staff_member_created_at"`
	StaffMemberUpdatedAt *time.Time     `gorm:"column:staff_member_updated_at;autoUpdateTime" json:"staff_member_updated_at,omitempty"`
	StaffMemberDeletedAt gorm.DeletedAt `gorm:"column:staff_member_deleted_at;index" json:"staff_member_deleted_at,omitempty"`
}

func (StaffMemberModel) TableName() string { return "staff_members" }
