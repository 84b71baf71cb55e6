package dto

import (
	model "vti_backend/internals/features/institute/trades/model"
)

type CreateTradeRequest struct {
	TradeName           string  `json:"trade_name" validate:"required,min=2,max=120"`
	TradeCode           string  `json:"trade_code" validate:"required,min=2,max=20"`
	TradeDurationMonths int     `json:"trade_duration_months" validate:"required,min=1,max=60"`
	TradeSeats          int     `json:"trade_seats" validate:"omitempty,min=0,max=500"`
	TradeDescription    *string `json:"trade_description" validate:"omitempty,max=2000"`
}

func (r CreateTradeRequest) ToModel() *model.TradeModel {
	return &model.TradeModel{
		TradeName:           r.TradeName,
		TradeCode:           r.TradeCode,
		TradeDurationMonths: r.TradeDurationMonths,
		TradeSeats:          r.TradeSeats,
		TradeDescription:    r.TradeDescription,
	}
}

// UpdateTradeRequest: pointer fields, only what is sent gets patched.
type UpdateTradeRequest struct {
	TradeName           *string `json:"trade_name" validate:"omitempty,min=2,max=120"`
	TradeCode           *string `json:"trade_code" validate:"omitempty,min=2,max=20"`
	TradeDurationMonths *int    `json:"trade_duration_months" validate:"omitempty,min=1,max=60"`
	TradeSeats          *int    `json:"trade_seats" validate:"omitempty,min=0,max=500"`
	TradeDescription    *string `json:"trade_description" validate:"omitempty,max=2000"`
}

func (r UpdateTradeRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.TradeName != nil {
		patch["trade_name"] = *r.TradeName
	}
	if r.TradeCode != nil {
		patch["trade_code"] = *r.TradeCode
	}
	if r.TradeDurationMonths != nil {
		patch["trade_duration_months"] = *r.TradeDurationMonths
	}
	if r.TradeSeats != nil {
		patch["trade_seats"] = *r.TradeSeats
	}
	if r.TradeDescription != nil {
		patch["trade_description"] = *r.TradeDescription
	}
	return patch
}
