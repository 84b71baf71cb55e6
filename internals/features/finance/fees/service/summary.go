package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "vti_backend/internals/features/finance/fees/model"
)

// SummaryView is the institution-wide collection snapshot.
type SummaryView struct {
	TotalRecords   int64           `json:"total_records"`
	TotalFees      decimal.Decimal `json:"total_fees"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	PaidCount      int64           `json:"paid_count"`
	PartialCount   int64           `json:"partial_count"`
	PendingCount   int64           `json:"pending_count"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
}

// ComputeSummary is the pure projection over the full record set. No mutable
// cache anywhere; callers re-run it from stored rows on every request.
func ComputeSummary(records []model.FeeRecordModel) SummaryView {
	v := SummaryView{
		TotalFees:      decimal.Zero,
		TotalCollected: decimal.Zero,
		TotalPending:   decimal.Zero,
		CollectionRate: decimal.Zero,
	}
	for _, r := range records {
		v.TotalRecords++
		v.TotalFees = v.TotalFees.Add(r.FeeRecordAmount)
		v.TotalCollected = v.TotalCollected.Add(r.FeeRecordPaidAmount)

		switch r.FeeRecordStatus {
		case model.FeeStatusPaid:
			v.PaidCount++
		case model.FeeStatusPartiallyPaid:
			v.PartialCount++
		default:
			v.PendingCount++
		}
	}
	v.TotalPending = v.TotalFees.Sub(v.TotalCollected)
	if v.TotalFees.IsPositive() {
		v.CollectionRate = v.TotalCollected.DivRound(v.TotalFees, 4)
	}
	return v
}

// GetSummary recomputes the summary from the current stored state.
func GetSummary(ctx context.Context, db *gorm.DB) (SummaryView, error) {
	var records []model.FeeRecordModel
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return SummaryView{}, err
	}
	return ComputeSummary(records), nil
}
