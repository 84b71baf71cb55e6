package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TradeModel struct {
	TradeID uuid.UUID `gorm:"column:trade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trade_id"`

	TradeName           string  `gorm:"column:trade_name;type:text;not null;uniqueIndex" json:"trade_name"`
	TradeCode           string  `gorm:"column:trade_code;type:text;not null;uniqueIndex" json:"trade_code"`
	TradeDurationMonths int     `gorm:"column:trade_duration_months;not null;default:12" json:"trade_duration_months"`
	TradeSeats          int     `gorm:"column:trade_seats;not null;default:0" json:"trade_seats"`
	TradeDescription    *string `gorm:"column:trade_description;type:text" json:"trade_description,omitempty"`

	TradeCreatedAt time.Time      `gorm:"column:trade_created_at;autoCreateTime" json:"trade_created_at"`
	TradeUpdatedAt *time.Time     `gorm:"column:trade_updated_at;autoUpdateTime" json:"trade_updated_at,omitempty"`
	TradeDeletedAt gorm.DeletedAt `gorm:"column:trade_deleted_at;index" json:"trade_deleted_at,omitempty"`
}

func (TradeModel) TableName() string { return "trades" }
