package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "vti_backend/internals/features/finance/fees/model"
)

type ApplyPaymentRequest struct {
	Amount        decimal.Decimal     `json:"amount"`
	Method        model.PaymentMethod `json:"method" validate:"required,oneof=cash bank_transfer upi cheque card"`
	PaidAt        *time.Time          `json:"paid_at"`
	InstallmentID *uuid.UUID          `json:"installment_id"`
	Note          *string             `json:"note" validate:"omitempty,max=500"`
}

type FeePaymentResponse struct {
	FeePaymentID  uuid.UUID           `json:"fee_payment_id"`
	FeeRecordID   uuid.UUID           `json:"fee_record_id"`
	InstallmentID *uuid.UUID          `json:"installment_id,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	Method        model.PaymentMethod `json:"method"`
	PaidAt        time.Time           `json:"paid_at"`
	ReceiptNumber string              `json:"receipt_number"`
	CreatedAt     time.Time           `json:"created_at"`
}

type ApplyPaymentResponse struct {
	Record        FeeRecordResponse       `json:"record"`
	Installment   *FeeInstallmentResponse `json:"installment,omitempty"`
	Payment       FeePaymentResponse      `json:"payment"`
	ReceiptNumber string                  `json:"receipt_number"`
}

func FromPaymentModel(m model.FeePaymentModel) FeePaymentResponse {
	return FeePaymentResponse{
		FeePaymentID:  m.FeePaymentID,
		FeeRecordID:   m.FeePaymentFeeRecordID,
		InstallmentID: m.FeePaymentInstallmentID,
		Amount:        m.FeePaymentAmount,
		Method:        m.FeePaymentMethod,
		PaidAt:        m.FeePaymentPaidAt,
		ReceiptNumber: m.FeePaymentReceiptNumber,
		CreatedAt:     m.FeePaymentCreatedAt,
	}
}

func FromPaymentModels(rows []model.FeePaymentModel) []FeePaymentResponse {
	out := make([]FeePaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromPaymentModel(m))
	}
	return out
}
