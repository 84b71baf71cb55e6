package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FeeRecordModel struct {
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_record_id"`

	// Student snapshot (the record stands on its own even if the student row changes)
	FeeRecordStudentID    *uuid.UUID `gorm:"column:fee_record_student_id;type:uuid" json:"fee_record_student_id,omitempty"`
	FeeRecordStudentName  string     `gorm:"column:fee_record_student_name;type:text;not null" json:"fee_record_student_name"`
	FeeRecordFatherName   *string    `gorm:"column:fee_record_father_name;type:text" json:"fee_record_father_name,omitempty"`
	FeeRecordMobile       *string    `gorm:"column:fee_record_mobile;type:text" json:"fee_record_mobile,omitempty"`
	FeeRecordTrade        string     `gorm:"column:fee_record_trade;type:text;not null" json:"fee_record_trade"`
	FeeRecordFeeType      FeeType    `gorm:"column:fee_record_fee_type;type:text;not null" json:"fee_record_fee_type"`
	FeeRecordAcademicYear string     `gorm:"column:fee_record_academic_year;type:text;not null" json:"fee_record_academic_year"`

	// Financials (NUMERIC, never float)
	FeeRecordAmount     decimal.Decimal `gorm:"column:fee_record_amount;type:numeric(12,2);not null" json:"fee_record_amount"`
	FeeRecordPaidAmount decimal.Decimal `gorm:"column:fee_record_paid_amount;type:numeric(12,2);not null;default:0" json:"fee_record_paid_amount"`
	FeeRecordStatus     FeeStatus       `gorm:"column:fee_record_status;type:text;not null;default:'pending'" json:"fee_record_status"`

	// Numbering: invoice at creation, receipt on first successful payment
	FeeRecordInvoiceNumber string  `gorm:"column:fee_record_invoice_number;type:text;not null;uniqueIndex" json:"fee_record_invoice_number"`
	FeeRecordReceiptNumber *string `gorm:"column:fee_record_receipt_number;type:text;uniqueIndex" json:"fee_record_receipt_number,omitempty"`

	// Scheduling
	FeeRecordInstallmentEnabled bool       `gorm:"column:fee_record_installment_enabled;not null;default:false" json:"fee_record_installment_enabled"`
	FeeRecordTotalInstallments  int        `gorm:"column:fee_record_total_installments;not null;default:1" json:"fee_record_total_installments"`
	FeeRecordDueDate            *time.Time `gorm:"column:fee_record_due_date;type:date" json:"fee_record_due_date,omitempty"`

	FeeRecordLastPaymentAt *time.Time `gorm:"column:fee_record_last_payment_at" json:"fee_record_last_payment_at,omitempty"`
	FeeRecordCreatedBy     *uuid.UUID `gorm:"column:fee_record_created_by;type:uuid" json:"fee_record_created_by,omitempty"`

	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;autoCreateTime" json:"fee_record_created_at"`
	FeeRecordUpdatedAt *time.Time     `gorm:"column:fee_record_updated_at;autoUpdateTime" json:"fee_record_updated_at,omitempty"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;index" json:"fee_record_deleted_at,omitempty"`

	Installments []FeeInstallmentModel `gorm:"foreignKey:FeeInstallmentFeeRecordID;references:FeeRecordID" json:"installments,omitempty"`
}

func (FeeRecordModel) TableName() string { return "fee_records" }

// RemainingBalance is amount - paid_amount on the record itself.
func (m *FeeRecordModel) RemainingBalance() decimal.Decimal {
	return m.FeeRecordAmount.Sub(m.FeeRecordPaidAmount)
}
