package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "vti_backend/internals/features/finance/fees/model"
)

func TestGenerateInstallmentsSplitsExactly(t *testing.T) {
	// 10000 over 3: remainder lands on the last installment
	out, err := GenerateInstallments(decimal.NewFromInt(10000), 3, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "3333.33", out[0].FeeInstallmentAmount.StringFixed(2))
	assert.Equal(t, "3333.33", out[1].FeeInstallmentAmount.StringFixed(2))
	assert.Equal(t, "3333.34", out[2].FeeInstallmentAmount.StringFixed(2))

	for i, inst := range out {
		assert.Equal(t, i+1, inst.FeeInstallmentNumber)
		assert.True(t, inst.FeeInstallmentPaidAmount.IsZero())
		assert.Equal(t, model.FeeStatusPending, inst.FeeInstallmentStatus)
	}
}

func TestGenerateInstallmentsSumEqualsAmount(t *testing.T) {
	amounts := []string{"10000", "9999.99", "12500.50", "701.11", "35000"}
	counts := []int{2, 3, 4, 6, 12}

	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		for _, n := range counts {
			out, err := GenerateInstallments(amount, n, nil)
			require.NoError(t, err, "amount=%s n=%d", a, n)
			require.Len(t, out, n)

			sum := decimal.Zero
			for _, inst := range out {
				assert.True(t, inst.FeeInstallmentAmount.IsPositive())
				sum = sum.Add(inst.FeeInstallmentAmount)
			}
			assert.True(t, sum.Equal(amount), "amount=%s n=%d sum=%s", a, n, sum)
		}
	}
}

func TestGenerateInstallmentsSingle(t *testing.T) {
	out, err := GenerateInstallments(decimal.NewFromInt(500), 1, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].FeeInstallmentAmount.Equal(decimal.NewFromInt(500)))
}

func TestGenerateInstallmentsDueDates(t *testing.T) {
	d1 := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 1, 0)

	out, err := GenerateInstallments(decimal.NewFromInt(1000), 2, []*time.Time{&d1, &d2})
	require.NoError(t, err)
	require.NotNil(t, out[0].FeeInstallmentDueDate)
	require.NotNil(t, out[1].FeeInstallmentDueDate)
	assert.True(t, out[0].FeeInstallmentDueDate.Equal(d1))
	assert.True(t, out[1].FeeInstallmentDueDate.Equal(d2))
}

func TestGenerateInstallmentsRejections(t *testing.T) {
	d := time.Now()

	_, err := GenerateInstallments(decimal.NewFromInt(1000), 0, nil)
	assert.Error(t, err)

	_, err = GenerateInstallments(decimal.NewFromInt(1000), -3, nil)
	assert.Error(t, err)

	_, err = GenerateInstallments(decimal.Zero, 3, nil)
	assert.Error(t, err)

	_, err = GenerateInstallments(decimal.NewFromInt(-100), 3, nil)
	assert.Error(t, err)

	// due dates count mismatch
	_, err = GenerateInstallments(decimal.NewFromInt(1000), 3, []*time.Time{&d})
	assert.Error(t, err)

	// 0.01 cannot be split into 3 positive installments
	_, err = GenerateInstallments(decimal.RequireFromString("0.01"), 3, nil)
	assert.Error(t, err)
}
