package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "vti_backend/internals/features/finance/fees/model"
)

func TestAtDuesRiskBoundary(t *testing.T) {
	threshold := DefaultDuesRiskThreshold // 0.5

	below := rec("10000", "4999.99")
	assert.True(t, AtDuesRisk(below, threshold))

	// exactly at the threshold is NOT at risk
	at := rec("10000", "5000")
	assert.False(t, AtDuesRisk(at, threshold))

	above := rec("10000", "5000.01")
	assert.False(t, AtDuesRisk(above, threshold))
}

func TestAtDuesRiskZeroAmount(t *testing.T) {
	zero := rec("0", "0")
	assert.False(t, AtDuesRisk(zero, DefaultDuesRiskThreshold))
}

func TestSelectDuesRiskFilters(t *testing.T) {
	records := []model.FeeRecordModel{
		rec("10000", "0"),    // at risk
		rec("10000", "6000"), // safe
		rec("8000", "1000"),  // at risk
		rec("0", "0"),        // never at risk
	}

	out := SelectDuesRisk(records, DefaultDuesRiskThreshold, DuesSortPending)
	require.Len(t, out, 2)
	// largest pending first
	assert.Equal(t, "10000.00", out[0].RemainingBalance().StringFixed(2))
	assert.Equal(t, "7000.00", out[1].RemainingBalance().StringFixed(2))
}

func TestSelectDuesRiskSortByLastPayment(t *testing.T) {
	older := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	a := rec("10000", "1000")
	a.FeeRecordLastPaymentAt = &older
	b := rec("10000", "1000")
	b.FeeRecordLastPaymentAt = &newer
	c := rec("10000", "0") // never paid, sorts last

	out := SelectDuesRisk([]model.FeeRecordModel{a, c, b}, DefaultDuesRiskThreshold, DuesSortLastPayment)
	require.Len(t, out, 3)
	assert.Equal(t, &newer, out[0].FeeRecordLastPaymentAt)
	assert.Equal(t, &older, out[1].FeeRecordLastPaymentAt)
	assert.Nil(t, out[2].FeeRecordLastPaymentAt)
}

func TestSelectDuesRiskSortByCreated(t *testing.T) {
	first := rec("10000", "0")
	first.FeeRecordCreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := rec("10000", "0")
	second.FeeRecordCreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	out := SelectDuesRisk([]model.FeeRecordModel{first, second}, DefaultDuesRiskThreshold, DuesSortCreated)
	require.Len(t, out, 2)
	assert.True(t, out[0].FeeRecordCreatedAt.After(out[1].FeeRecordCreatedAt))
}

func TestSelectDuesRiskDoesNotMutate(t *testing.T) {
	records := []model.FeeRecordModel{rec("10000", "0"), rec("10000", "9000")}
	_ = SelectDuesRisk(records, DefaultDuesRiskThreshold, DuesSortPending)

	assert.Equal(t, "0.00", records[0].FeeRecordPaidAmount.StringFixed(2))
	assert.Equal(t, "9000.00", records[1].FeeRecordPaidAmount.StringFixed(2))
}

func TestDuesSortWhitelist(t *testing.T) {
	assert.True(t, DuesSortPending.Valid())
	assert.True(t, DuesSortLastPayment.Valid())
	assert.True(t, DuesSortCreated.Valid())
	assert.False(t, DuesSort("amount; DROP TABLE fee_records").Valid())
	assert.False(t, DuesSort("").Valid())
}
