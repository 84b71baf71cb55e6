package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FeeInstallmentModel struct {
	FeeInstallmentID uuid.UUID `gorm:"column:fee_installment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_installment_id"`

	FeeInstallmentFeeRecordID uuid.UUID `gorm:"column:fee_installment_fee_record_id;type:uuid;not null;index:idx_fee_installment_record;uniqueIndex:uq_fee_installment_record_number" json:"fee_installment_fee_record_id"`

	// 1..N, contiguous per record
	FeeInstallmentNumber int `gorm:"column:fee_installment_number;not null;uniqueIndex:uq_fee_installment_record_number" json:"fee_installment_number"`

	FeeInstallmentAmount     decimal.Decimal `gorm:"column:fee_installment_amount;type:numeric(12,2);not null" json:"fee_installment_amount"`
	FeeInstallmentPaidAmount decimal.Decimal `gorm:"column:fee_installment_paid_amount;type:numeric(12,2);not null;default:0" json:"fee_installment_paid_amount"`
	FeeInstallmentStatus     FeeStatus       `gorm:"column:fee_installment_status;type:text;not null;default:'pending'" json:"fee_installment_status"`
	FeeInstallmentDueDate    *time.Time      `gorm:"column:fee_installment_due_date;type:date" json:"fee_installment_due_date,omitempty"`

	FeeInstallmentCreatedAt time.Time      `gorm:"column:fee_installment_created_at;autoCreateTime" json:"fee_installment_created_at"`
	FeeInstallmentUpdatedAt *time.Time     `gorm:"column:fee_installment_updated_at;autoUpdateTime" json:"fee_installment_updated_at,omitempty"`
	FeeInstallmentDeletedAt gorm.DeletedAt `gorm:"column:fee_installment_deleted_at;index" json:"fee_installment_deleted_at,omitempty"`
}

func (FeeInstallmentModel) TableName() string { return "fee_installments" }

func (m *FeeInstallmentModel) RemainingBalance() decimal.Decimal {
	return m.FeeInstallmentAmount.Sub(m.FeeInstallmentPaidAmount)
}
