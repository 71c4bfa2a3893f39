package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		amount  string
		wantErr bool
	}{
		{amount: "500.50"},
		{amount: "0.01"},
		{amount: "10.500"},
		{amount: "999999999999.99"},
		{amount: "0", wantErr: true},
		{amount: "-10", wantErr: true},
		{amount: "10.005", wantErr: true},
		{amount: "0.001", wantErr: true},
		{amount: "1e12", wantErr: true},
		{amount: "99999999999999", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tc.amount))
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
		})
	}
}
