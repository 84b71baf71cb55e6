package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FeePaymentModel is the append-only payment event log. Rows are written by the
// allocator only, in the same transaction that mutates the balances.
type FeePaymentModel struct {
	FeePaymentID uuid.UUID `gorm:"column:fee_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_payment_id"`

	FeePaymentFeeRecordID   uuid.UUID  `gorm:"column:fee_payment_fee_record_id;type:uuid;not null;index" json:"fee_payment_fee_record_id"`
	FeePaymentInstallmentID *uuid.UUID `gorm:"column:fee_payment_installment_id;type:uuid" json:"fee_payment_installment_id,omitempty"`

	FeePaymentAmount decimal.Decimal `gorm:"column:fee_payment_amount;type:numeric(12,2);not null" json:"fee_payment_amount"`
	FeePaymentMethod PaymentMethod   `gorm:"column:fee_payment_method;type:text;not null" json:"fee_payment_method"`
	FeePaymentPaidAt time.Time       `gorm:"column:fee_payment_paid_at;not null" json:"fee_payment_paid_at"`

	// Receipt number of the owning record at the time of this payment.
	FeePaymentReceiptNumber string `gorm:"column:fee_payment_receipt_number;type:text;not null" json:"fee_payment_receipt_number"`

	FeePaymentMeta      datatypes.JSON `gorm:"column:fee_payment_meta;type:jsonb" json:"fee_payment_meta,omitempty"`
	FeePaymentCreatedBy *uuid.UUID     `gorm:"column:fee_payment_created_by;type:uuid" json:"fee_payment_created_by,omitempty"`

	FeePaymentCreatedAt time.Time `gorm:"column:fee_payment_created_at;autoCreateTime" json:"fee_payment_created_at"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
