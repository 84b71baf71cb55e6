package model

/* ================================
   ENUM mirror (must match DB)
================================ */

type FeeStatus string
type FeeType string
type PaymentMethod string

const (
	FeeStatusPending       FeeStatus = "pending"
	FeeStatusPartiallyPaid FeeStatus = "partially_paid"
	FeeStatusPaid          FeeStatus = "paid"
)

const (
	FeeTypeAdmission   FeeType = "admission"
	FeeTypeTuition     FeeType = "tuition"
	FeeTypeExamination FeeType = "examination"
	FeeTypeWorkshop    FeeType = "workshop"
	FeeTypeLibrary     FeeType = "library"
	FeeTypeOther       FeeType = "other"
)

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodCard         PaymentMethod = "card"
)

func (t FeeType) Valid() bool {
	switch t {
	case FeeTypeAdmission, FeeTypeTuition, FeeTypeExamination, FeeTypeWorkshop, FeeTypeLibrary, FeeTypeOther:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodCheque, PaymentMethodCard:
		return true
	}
	return false
}
