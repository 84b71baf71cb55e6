package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "vti_backend/internals/features/finance/fees/model"
)

// DuesSort is the caller-supplied ordering for the dues-risk list.
type DuesSort string

const (
	DuesSortPending     DuesSort = "pending"    // largest pending amount first
	DuesSortLastPayment DuesSort = "paid_at"    // most recent payment first
	DuesSortCreated     DuesSort = "created_at" // newest record first
)

func (s DuesSort) Valid() bool {
	switch s {
	case DuesSortPending, DuesSortLastPayment, DuesSortCreated:
		return true
	}
	return false
}

// DefaultDuesRiskThreshold is the paid-ratio cutoff for the dashboard.
var DefaultDuesRiskThreshold = decimal.NewFromFloat(0.5)

// AtDuesRisk reports whether a record's paid ratio is below the threshold.
// Compared as paid < amount*threshold to stay in exact decimal arithmetic;
// zero-amount records are never at risk.
func AtDuesRisk(r model.FeeRecordModel, threshold decimal.Decimal) bool {
	if !r.FeeRecordAmount.IsPositive() {
		return false
	}
	return r.FeeRecordPaidAmount.LessThan(r.FeeRecordAmount.Mul(threshold))
}

// SelectDuesRisk is the pure selector: filter by ratio, order by the requested
// criterion. No mutation.
func SelectDuesRisk(records []model.FeeRecordModel, threshold decimal.Decimal, by DuesSort) []model.FeeRecordModel {
	out := make([]model.FeeRecordModel, 0)
	for _, r := range records {
		if AtDuesRisk(r, threshold) {
			out = append(out, r)
		}
	}

	switch by {
	case DuesSortLastPayment:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].FeeRecordLastPaymentAt, out[j].FeeRecordLastPaymentAt
			switch {
			case a == nil && b == nil:
				return false
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.After(*b)
			}
		})
	case DuesSortCreated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FeeRecordCreatedAt.After(out[j].FeeRecordCreatedAt)
		})
	default: // DuesSortPending
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RemainingBalance().GreaterThan(out[j].RemainingBalance())
		})
	}
	return out
}

// GetDuesRisk reads the current records and runs the selector.
func GetDuesRisk(ctx context.Context, db *gorm.DB, threshold decimal.Decimal, by DuesSort) ([]model.FeeRecordModel, error) {
	var records []model.FeeRecordModel
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return SelectDuesRisk(records, threshold, by), nil
}
