package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	model "vti_backend/internals/features/finance/fees/model"
)

// GenerateInstallments splits amount into n installments. Installments 1..n-1
// carry round(amount/n, 2); the last one takes the exact remainder so the sum
// always equals amount. dueDates are caller-supplied: either empty or one per
// installment.
//
// Must not be called once payments exist against a previous schedule; the
// caller regenerates only before the record is saved.
func GenerateInstallments(amount decimal.Decimal, n int, dueDates []*time.Time) ([]model.FeeInstallmentModel, error) {
	if n <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Installment count must be at least 1")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than zero")
	}
	if len(dueDates) > 0 && len(dueDates) != n {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Installment due dates must match the installment count")
	}

	base := amount.DivRound(decimal.NewFromInt(int64(n)), 2)

	out := make([]model.FeeInstallmentModel, 0, n)
	running := decimal.Zero
	for i := 1; i <= n; i++ {
		instAmount := base
		if i == n {
			instAmount = amount.Sub(running)
		}
		if instAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Amount is too small to split into that many installments")
		}
		running = running.Add(instAmount)

		inst := model.FeeInstallmentModel{
			FeeInstallmentNumber:     i,
			FeeInstallmentAmount:     instAmount,
			FeeInstallmentPaidAmount: decimal.Zero,
			FeeInstallmentStatus:     model.FeeStatusPending,
		}
		if len(dueDates) == n {
			inst.FeeInstallmentDueDate = dueDates[i-1]
		}
		out = append(out, inst)
	}
	return out, nil
}
