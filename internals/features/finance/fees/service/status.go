package service

import (
	"github.com/shopspring/decimal"

	model "vti_backend/internals/features/finance/fees/model"
)

// DeriveStatus maps (amount, paid) to a lifecycle status. Pure function,
// applied identically to fee records and installments after every mutation
// of a paid amount. Callers never persist paid > amount.
func DeriveStatus(amount, paid decimal.Decimal) model.FeeStatus {
	if paid.LessThanOrEqual(decimal.Zero) {
		return model.FeeStatusPending
	}
	if paid.GreaterThanOrEqual(amount) {
		return model.FeeStatusPaid
	}
	return model.FeeStatusPartiallyPaid
}
