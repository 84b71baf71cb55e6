package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	model "vti_backend/internals/features/finance/fees/model"
)

func rec(amount, paid string) model.FeeRecordModel {
	a := decimal.RequireFromString(amount)
	p := decimal.RequireFromString(paid)
	return model.FeeRecordModel{
		FeeRecordAmount:     a,
		FeeRecordPaidAmount: p,
		FeeRecordStatus:     DeriveStatus(a, p),
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	v := ComputeSummary(nil)
	assert.Equal(t, int64(0), v.TotalRecords)
	assert.True(t, v.TotalFees.IsZero())
	assert.True(t, v.TotalCollected.IsZero())
	assert.True(t, v.TotalPending.IsZero())
	// zero fees means a defined rate of 0, not a division error
	assert.True(t, v.CollectionRate.IsZero())
}

func TestComputeSummaryMixed(t *testing.T) {
	records := []model.FeeRecordModel{
		rec("10000", "10000"), // paid
		rec("8000", "3000"),   // partial
		rec("5000", "0"),      // pending
		rec("2000", "2000"),   // paid
	}

	v := ComputeSummary(records)
	assert.Equal(t, int64(4), v.TotalRecords)
	assert.Equal(t, "25000.00", v.TotalFees.StringFixed(2))
	assert.Equal(t, "15000.00", v.TotalCollected.StringFixed(2))
	assert.Equal(t, "10000.00", v.TotalPending.StringFixed(2))
	assert.Equal(t, int64(2), v.PaidCount)
	assert.Equal(t, int64(1), v.PartialCount)
	assert.Equal(t, int64(1), v.PendingCount)
	assert.Equal(t, "0.6000", v.CollectionRate.StringFixed(4))
}

func TestComputeSummaryRateBounds(t *testing.T) {
	all := ComputeSummary([]model.FeeRecordModel{rec("100", "100"), rec("900", "900")})
	assert.True(t, all.CollectionRate.Equal(decimal.NewFromInt(1)))

	none := ComputeSummary([]model.FeeRecordModel{rec("100", "0")})
	assert.True(t, none.CollectionRate.IsZero())

	some := ComputeSummary([]model.FeeRecordModel{rec("1500", "700")})
	assert.Equal(t, "0.4667", some.CollectionRate.StringFixed(4))
	assert.True(t, some.CollectionRate.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, some.CollectionRate.LessThanOrEqual(decimal.NewFromInt(1)))
}
