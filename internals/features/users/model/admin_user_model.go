package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUserModel exists for the bootstrap seed and the JWT subject; credential
// issuance itself lives outside this service.
type AdminUserModel struct {
	AdminUserID uuid.UUID `gorm:"column:admin_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_user_id"`

	AdminUserEmail    string `gorm:"column:admin_user_email;type:text;not null;uniqueIndex" json:"admin_user_email"`
	AdminUserName     string `gorm:"column:admin_user_name;type:text;not null" json:"admin_user_name"`
	AdminUserPassword string `gorm:"column:admin_user_password;type:text;not null" json:"-"`

	AdminUserCreatedAt time.Time      `gorm:"column:admin_user_created_at;autoCreateTime" json:"admin_user_created_at"`
	AdminUserUpdatedAt *time.Time     `gorm:"column:admin_user_updated_at;autoUpdateTime" json:"admin_user_updated_at,omitempty"`
	AdminUserDeletedAt gorm.DeletedAt `gorm:"column:admin_user_deleted_at;index" json:"admin_user_deleted_at,omitempty"`
}

func (AdminUserModel) TableName() string { return "admin_users" }
