package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	model "vti_backend/internals/features/finance/fees/model"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		paid   string
		want   model.FeeStatus
	}{
		{"nothing paid", "10000", "0", model.FeeStatusPending},
		{"negative paid stays pending", "10000", "-1", model.FeeStatusPending},
		{"one rupee", "10000", "1", model.FeeStatusPartiallyPaid},
		{"almost there", "10000", "9999.99", model.FeeStatusPartiallyPaid},
		{"exact", "10000", "10000", model.FeeStatusPaid},
		{"over", "10000", "10000.01", model.FeeStatusPaid},
		{"zero amount zero paid", "0", "0", model.FeeStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(decimal.RequireFromString(tc.amount), decimal.RequireFromString(tc.paid))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveStatusIsStable(t *testing.T) {
	amount := decimal.NewFromInt(5000)
	paid := decimal.NewFromInt(2500)
	first := DeriveStatus(amount, paid)
	second := DeriveStatus(amount, paid)
	assert.Equal(t, first, second)
}
