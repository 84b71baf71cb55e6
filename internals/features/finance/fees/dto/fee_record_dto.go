package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "vti_backend/internals/features/finance/fees/model"
)

/* ======================= REQUESTS ======================= */

type CreateFeeRecordRequest struct {
	FeeRecordStudentID    *uuid.UUID    `json:"fee_record_student_id"`
	FeeRecordStudentName  string        `json:"fee_record_student_name" validate:"required,min=2,max=120"`
	FeeRecordFatherName   *string       `json:"fee_record_father_name" validate:"omitempty,max=120"`
	FeeRecordMobile       *string       `json:"fee_record_mobile" validate:"omitempty,min=8,max=15"`
	FeeRecordTrade        string        `json:"fee_record_trade" validate:"required,max=80"`
	FeeRecordFeeType      model.FeeType `json:"fee_record_fee_type" validate:"required,oneof=admission tuition examination workshop library other"`
	FeeRecordAcademicYear string        `json:"fee_record_academic_year" validate:"required,max=20"`

	FeeRecordAmount decimal.Decimal `json:"fee_record_amount"`

	FeeRecordInstallmentEnabled bool         `json:"fee_record_installment_enabled"`
	FeeRecordTotalInstallments  int          `json:"fee_record_total_installments" validate:"omitempty,min=1,max=36"`
	FeeRecordDueDate            *time.Time   `json:"fee_record_due_date"`
	InstallmentDueDates         []*time.Time `json:"installment_due_dates" validate:"omitempty,max=36"`
}

type ListFeeRecordQuery struct {
	Status  *string `query:"status"`
	FeeType *string `query:"fee_type"`
	Trade   *string `query:"trade"`
	Year    *string `query:"year"`
	Q       *string `query:"q"`
}

/* ======================= RESPONSES ======================= */

type FeeInstallmentResponse struct {
	FeeInstallmentID     uuid.UUID       `json:"fee_installment_id"`
	FeeInstallmentNumber int             `json:"fee_installment_number"`
	Amount               decimal.Decimal `json:"amount"`
	PaidAmount           decimal.Decimal `json:"paid_amount"`
	Remaining            decimal.Decimal `json:"remaining"`
	Status               model.FeeStatus `json:"status"`
	DueDate              *time.Time      `json:"due_date,omitempty"`
}

type FeeRecordResponse struct {
	FeeRecordID   uuid.UUID     `json:"fee_record_id"`
	StudentID     *uuid.UUID    `json:"student_id,omitempty"`
	StudentName   string        `json:"student_name"`
	FatherName    *string       `json:"father_name,omitempty"`
	Mobile        *string       `json:"mobile,omitempty"`
	Trade         string        `json:"trade"`
	FeeType       model.FeeType `json:"fee_type"`
	AcademicYear  string        `json:"academic_year"`

	Amount    decimal.Decimal `json:"amount"`
	Paid      decimal.Decimal `json:"paid_amount"`
	Remaining decimal.Decimal `json:"remaining"`
	Status    model.FeeStatus `json:"status"`

	InvoiceNumber string  `json:"invoice_number"`
	ReceiptNumber *string `json:"receipt_number,omitempty"`

	InstallmentEnabled bool       `json:"installment_enabled"`
	TotalInstallments  int        `json:"total_installments"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	LastPaymentAt      *time.Time `json:"last_payment_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`

	Installments []FeeInstallmentResponse `json:"installments,omitempty"`
}

func FromInstallmentModel(m model.FeeInstallmentModel) FeeInstallmentResponse {
	return FeeInstallmentResponse{
		FeeInstallmentID:     m.FeeInstallmentID,
		FeeInstallmentNumber: m.FeeInstallmentNumber,
		Amount:               m.FeeInstallmentAmount,
		PaidAmount:           m.FeeInstallmentPaidAmount,
		Remaining:            m.RemainingBalance(),
		Status:               m.FeeInstallmentStatus,
		DueDate:              m.FeeInstallmentDueDate,
	}
}

func FromFeeRecordModel(m model.FeeRecordModel) FeeRecordResponse {
	resp := FeeRecordResponse{
		FeeRecordID:        m.FeeRecordID,
		StudentID:          m.FeeRecordStudentID,
		StudentName:        m.FeeRecordStudentName,
		FatherName:         m.FeeRecordFatherName,
		Mobile:             m.FeeRecordMobile,
		Trade:              m.FeeRecordTrade,
		FeeType:            m.FeeRecordFeeType,
		AcademicYear:       m.FeeRecordAcademicYear,
		Amount:             m.FeeRecordAmount,
		Paid:               m.FeeRecordPaidAmount,
		Remaining:          m.RemainingBalance(),
		Status:             m.FeeRecordStatus,
		InvoiceNumber:      m.FeeRecordInvoiceNumber,
		ReceiptNumber:      m.FeeRecordReceiptNumber,
		InstallmentEnabled: m.FeeRecordInstallmentEnabled,
		TotalInstallments:  m.FeeRecordTotalInstallments,
		DueDate:            m.FeeRecordDueDate,
		LastPaymentAt:      m.FeeRecordLastPaymentAt,
		CreatedAt:          m.FeeRecordCreatedAt,
	}
	for _, inst := range m.Installments {
		resp.Installments = append(resp.Installments, FromInstallmentModel(inst))
	}
	return resp
}

func FromFeeRecordModels(rows []model.FeeRecordModel) []FeeRecordResponse {
	out := make([]FeeRecordResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromFeeRecordModel(m))
	}
	return out
}
