package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "vti_backend/internals/features/finance/fees/model"
)

// PaymentInput is the explicit, statically-typed payment command. The actor is
// passed in by the controller, never read from ambient state.
type PaymentInput struct {
	Amount        decimal.Decimal
	Method        model.PaymentMethod
	PaidAt        time.Time
	InstallmentID *uuid.UUID
	Note          *string
	ActorID       *uuid.UUID
}

type PaymentResult struct {
	Record        model.FeeRecordModel
	Installment   *model.FeeInstallmentModel
	Payment       model.FeePaymentModel
	ReceiptNumber string
}

// ValidatePaymentInput rejects non-positive amounts and unknown methods before
// any row is touched.
func ValidatePaymentInput(amount decimal.Decimal, method model.PaymentMethod) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fiber.NewError(fiber.StatusBadRequest, "Payment amount must be greater than zero")
	}
	if !method.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown payment method")
	}
	return nil
}

// CheckAgainstRemaining enforces the no-overpay rule: the caller resubmits a
// corrected amount, nothing is clamped.
func CheckAgainstRemaining(amount, remaining decimal.Decimal) error {
	if amount.GreaterThan(remaining) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Payment of "+amount.StringFixed(2)+" exceeds the remaining balance of "+remaining.StringFixed(2))
	}
	return nil
}

// allocatePayment computes the post-payment state of the record and, when one
// is targeted, the installment. siblingsPaid is the paid sum over the record's
// other installments. Pure: inputs are never mutated, so a rejection leaves
// the caller's models exactly as they were.
func allocatePayment(rec model.FeeRecordModel, inst *model.FeeInstallmentModel, siblingsPaid, amount decimal.Decimal) (model.FeeRecordModel, *model.FeeInstallmentModel, error) {
	switch {
	case inst != nil:
		if !rec.FeeRecordInstallmentEnabled {
			return rec, inst, fiber.NewError(fiber.StatusBadRequest, "Fee record has no installments")
		}
		if err := CheckAgainstRemaining(amount, inst.RemainingBalance()); err != nil {
			return rec, inst, err
		}
		updated := *inst
		updated.FeeInstallmentPaidAmount = updated.FeeInstallmentPaidAmount.Add(amount)
		updated.FeeInstallmentStatus = DeriveStatus(updated.FeeInstallmentAmount, updated.FeeInstallmentPaidAmount)

		// parent rollup: fee.paid is always the sum over installments
		rec.FeeRecordPaidAmount = siblingsPaid.Add(updated.FeeInstallmentPaidAmount)
		rec.FeeRecordStatus = DeriveStatus(rec.FeeRecordAmount, rec.FeeRecordPaidAmount)
		return rec, &updated, nil

	default:
		if rec.FeeRecordInstallmentEnabled {
			return rec, nil, fiber.NewError(fiber.StatusBadRequest,
				"This fee record is split into installments; target a specific installment")
		}
		if err := CheckAgainstRemaining(amount, rec.RemainingBalance()); err != nil {
			return rec, nil, err
		}
		rec.FeeRecordPaidAmount = rec.FeeRecordPaidAmount.Add(amount)
		rec.FeeRecordStatus = DeriveStatus(rec.FeeRecordAmount, rec.FeeRecordPaidAmount)
		return rec, nil, nil
	}
}

// needsReceipt: one receipt number per fee record, issued with the first
// successful payment and stable afterwards.
func needsReceipt(rec model.FeeRecordModel) bool {
	return rec.FeeRecordReceiptNumber == nil
}

// ApplyPayment validates and applies one payment against a fee record or one of
// its installments. The whole read-modify-write runs in a single transaction
// with the target rows locked, so two concurrent payments can never both pass
// the balance check against a stale balance. One retry on a serialization
// conflict, then a 409 back to the caller.
func ApplyPayment(ctx context.Context, db *gorm.DB, feeRecordID uuid.UUID, in PaymentInput) (*PaymentResult, error) {
	if err := ValidatePaymentInput(in.Amount, in.Method); err != nil {
		return nil, err
	}
	if in.PaidAt.IsZero() {
		in.PaidAt = time.Now()
	}

	var res *PaymentResult
	run := func() error {
		res = nil
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			out, err := applyPaymentTx(tx, feeRecordID, in)
			if err != nil {
				return err
			}
			res = out
			return nil
		})
	}

	err := run()
	if err != nil && isSerializationErr(err) {
		err = run()
		if err != nil && isSerializationErr(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Payment conflicted with a concurrent update, please retry")
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func applyPaymentTx(tx *gorm.DB, feeRecordID uuid.UUID, in PaymentInput) (*PaymentResult, error) {
	var rec model.FeeRecordModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("fee_record_id = ?", feeRecordID).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Fee record not found")
		}
		return nil, err
	}

	var target *model.FeeInstallmentModel
	siblingsPaid := decimal.Zero

	if in.InstallmentID != nil {
		if !rec.FeeRecordInstallmentEnabled {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Fee record has no installments")
		}

		var row model.FeeInstallmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("fee_installment_id = ? AND fee_installment_fee_record_id = ?", *in.InstallmentID, rec.FeeRecordID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Installment not found")
			}
			return nil, err
		}
		target = &row

		var sum struct {
			Total decimal.Decimal `gorm:"column:total"`
		}
		if err := tx.Raw(`
			SELECT COALESCE(SUM(fee_installment_paid_amount), 0) AS total
			FROM fee_installments
			WHERE fee_installment_fee_record_id = ?
			  AND fee_installment_id <> ?
			  AND fee_installment_deleted_at IS NULL
		`, rec.FeeRecordID, row.FeeInstallmentID).Scan(&sum).Error; err != nil {
			return nil, err
		}
		siblingsPaid = sum.Total
	}

	newRec, inst, err := allocatePayment(rec, target, siblingsPaid, in.Amount)
	if err != nil {
		return nil, err
	}
	rec = newRec

	if inst != nil {
		if err := tx.Model(&model.FeeInstallmentModel{}).
			Where("fee_installment_id = ?", inst.FeeInstallmentID).
			Updates(map[string]interface{}{
				"fee_installment_paid_amount": inst.FeeInstallmentPaidAmount,
				"fee_installment_status":      inst.FeeInstallmentStatus,
			}).Error; err != nil {
			return nil, err
		}
	}

	receipt := ""
	if needsReceipt(rec) {
		rn, err := NextReceiptNumber(tx, in.PaidAt)
		if err != nil {
			return nil, err
		}
		receipt = rn
		rec.FeeRecordReceiptNumber = &rn
	} else {
		receipt = *rec.FeeRecordReceiptNumber
	}

	rec.FeeRecordLastPaymentAt = &in.PaidAt
	if err := tx.Model(&model.FeeRecordModel{}).
		Where("fee_record_id = ?", rec.FeeRecordID).
		Updates(map[string]interface{}{
			"fee_record_paid_amount":     rec.FeeRecordPaidAmount,
			"fee_record_status":          rec.FeeRecordStatus,
			"fee_record_receipt_number":  rec.FeeRecordReceiptNumber,
			"fee_record_last_payment_at": rec.FeeRecordLastPaymentAt,
		}).Error; err != nil {
		return nil, err
	}

	payment := model.FeePaymentModel{
		FeePaymentFeeRecordID:   rec.FeeRecordID,
		FeePaymentInstallmentID: in.InstallmentID,
		FeePaymentAmount:        in.Amount,
		FeePaymentMethod:        in.Method,
		FeePaymentPaidAt:        in.PaidAt,
		FeePaymentReceiptNumber: receipt,
		FeePaymentMeta:          buildPaymentMeta(in),
		FeePaymentCreatedBy:     in.ActorID,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &PaymentResult{
		Record:        rec,
		Installment:   inst,
		Payment:       payment,
		ReceiptNumber: receipt,
	}, nil
}

func buildPaymentMeta(in PaymentInput) datatypes.JSON {
	meta := map[string]interface{}{}
	if in.Note != nil && strings.TrimSpace(*in.Note) != "" {
		meta["note"] = strings.TrimSpace(*in.Note)
	}
	if in.ActorID != nil {
		meta["recorded_by"] = in.ActorID
	}
	if len(meta) == 0 {
		return nil
	}
	b, _ := json.Marshal(meta)
	return datatypes.JSON(b)
}

func isSerializationErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "could not serialize") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40p01")
}
