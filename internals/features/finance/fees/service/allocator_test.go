package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "vti_backend/internals/features/finance/fees/model"
)

func installmentRecord(amount string, n int) (model.FeeRecordModel, []model.FeeInstallmentModel) {
	recID := uuid.New()
	rec := model.FeeRecordModel{
		FeeRecordID:                 recID,
		FeeRecordAmount:             decimal.RequireFromString(amount),
		FeeRecordPaidAmount:         decimal.Zero,
		FeeRecordStatus:             model.FeeStatusPending,
		FeeRecordInstallmentEnabled: true,
		FeeRecordTotalInstallments:  n,
	}
	insts, err := GenerateInstallments(rec.FeeRecordAmount, n, nil)
	if err != nil {
		panic(err)
	}
	for i := range insts {
		insts[i].FeeInstallmentID = uuid.New()
		insts[i].FeeInstallmentFeeRecordID = recID
	}
	return rec, insts
}

func TestValidatePaymentInput(t *testing.T) {
	assert.NoError(t, ValidatePaymentInput(decimal.NewFromInt(100), model.PaymentMethodCash))

	assert.Error(t, ValidatePaymentInput(decimal.Zero, model.PaymentMethodCash))
	assert.Error(t, ValidatePaymentInput(decimal.NewFromInt(-50), model.PaymentMethodUPI))
	assert.Error(t, ValidatePaymentInput(decimal.NewFromInt(100), model.PaymentMethod("crypto")))
}

func TestCheckAgainstRemaining(t *testing.T) {
	remaining := decimal.NewFromInt(4000)

	assert.NoError(t, CheckAgainstRemaining(decimal.NewFromInt(4000), remaining))
	assert.NoError(t, CheckAgainstRemaining(decimal.NewFromInt(1), remaining))

	// 6000 against a 4000 balance is refused outright, never clamped
	err := CheckAgainstRemaining(decimal.NewFromInt(6000), remaining)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "6000.00")
	assert.Contains(t, err.Error(), "4000.00")
}

func TestAllocatePaymentInstallmentRollsUpParent(t *testing.T) {
	// 10000 over 3, pay the first installment in full
	record, insts := installmentRecord("10000", 3)

	newRec, newInst, err := allocatePayment(record, &insts[0], decimal.Zero, decimal.RequireFromString("3333.33"))
	require.NoError(t, err)
	require.NotNil(t, newInst)

	assert.Equal(t, "3333.33", newInst.FeeInstallmentPaidAmount.StringFixed(2))
	assert.Equal(t, model.FeeStatusPaid, newInst.FeeInstallmentStatus)

	// parent reflects the installment sum, not an independent counter
	assert.Equal(t, "3333.33", newRec.FeeRecordPaidAmount.StringFixed(2))
	assert.Equal(t, model.FeeStatusPartiallyPaid, newRec.FeeRecordStatus)

	// originals untouched
	assert.True(t, record.FeeRecordPaidAmount.IsZero())
	assert.True(t, insts[0].FeeInstallmentPaidAmount.IsZero())
	assert.Equal(t, model.FeeStatusPending, insts[0].FeeInstallmentStatus)
}

func TestAllocatePaymentLastInstallmentSettlesRecord(t *testing.T) {
	record, insts := installmentRecord("10000", 3)

	// first two already paid, now the last one
	insts[2].FeeInstallmentPaidAmount = decimal.Zero
	siblingsPaid := insts[0].FeeInstallmentAmount.Add(insts[1].FeeInstallmentAmount)

	newRec, newInst, err := allocatePayment(record, &insts[2], siblingsPaid, insts[2].FeeInstallmentAmount)
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusPaid, newInst.FeeInstallmentStatus)
	assert.Equal(t, "10000.00", newRec.FeeRecordPaidAmount.StringFixed(2))
	assert.Equal(t, model.FeeStatusPaid, newRec.FeeRecordStatus)
}

func TestAllocatePaymentInstallmentOverpayRejected(t *testing.T) {
	record, insts := installmentRecord("10000", 3)

	newRec, newInst, err := allocatePayment(record, &insts[0], decimal.Zero, decimal.RequireFromString("3333.34"))
	assert.Error(t, err)

	// rejection returns the inputs exactly as they were
	assert.True(t, newRec.FeeRecordPaidAmount.IsZero())
	assert.Equal(t, model.FeeStatusPending, newRec.FeeRecordStatus)
	assert.True(t, newInst.FeeInstallmentPaidAmount.IsZero())
	assert.Equal(t, model.FeeStatusPending, newInst.FeeInstallmentStatus)
}

func TestAllocatePaymentFullyPaidRecordRejectsMore(t *testing.T) {
	paid := rec("10000", "10000")

	newRec, _, err := allocatePayment(paid, nil, decimal.Zero, decimal.NewFromInt(1))
	assert.Error(t, err)
	assert.Equal(t, "10000.00", newRec.FeeRecordPaidAmount.StringFixed(2))
	assert.Equal(t, model.FeeStatusPaid, newRec.FeeRecordStatus)
}

func TestAllocatePaymentRequiresInstallmentTarget(t *testing.T) {
	record, _ := installmentRecord("10000", 3)

	// installment-enabled record, no target: rejected, never auto-allocated
	newRec, _, err := allocatePayment(record, nil, decimal.Zero, decimal.NewFromInt(1000))
	assert.Error(t, err)
	assert.True(t, newRec.FeeRecordPaidAmount.IsZero())
	assert.Equal(t, model.FeeStatusPending, newRec.FeeRecordStatus)
}

func TestAllocatePaymentRejectsTargetOnPlainRecord(t *testing.T) {
	plain := rec("5000", "0")
	stray := model.FeeInstallmentModel{
		FeeInstallmentID:     uuid.New(),
		FeeInstallmentAmount: decimal.NewFromInt(5000),
	}

	_, _, err := allocatePayment(plain, &stray, decimal.Zero, decimal.NewFromInt(1000))
	assert.Error(t, err)
}

func TestAllocatePaymentDirect(t *testing.T) {
	plain := rec("5000", "0")

	newRec, newInst, err := allocatePayment(plain, nil, decimal.Zero, decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.Nil(t, newInst)
	assert.Equal(t, "2000.00", newRec.FeeRecordPaidAmount.StringFixed(2))
	assert.Equal(t, model.FeeStatusPartiallyPaid, newRec.FeeRecordStatus)

	settled, _, err := allocatePayment(newRec, nil, decimal.Zero, decimal.NewFromInt(3000))
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusPaid, settled.FeeRecordStatus)
}

func TestNeedsReceiptOncePerRecord(t *testing.T) {
	fresh := rec("5000", "0")
	assert.True(t, needsReceipt(fresh))

	rn := "RCP-2026-00001"
	fresh.FeeRecordReceiptNumber = &rn
	assert.False(t, needsReceipt(fresh))
}

func TestIsSerializationErr(t *testing.T) {
	assert.False(t, isSerializationErr(nil))
	assert.False(t, isSerializationErr(assert.AnError))
	assert.True(t, isSerializationErr(errFake("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")))
	assert.True(t, isSerializationErr(errFake("ERROR: deadlock detected (SQLSTATE 40P01)")))
}

type errFake string

func (e errFake) Error() string { return string(e) }
