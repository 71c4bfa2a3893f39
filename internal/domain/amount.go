package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountScale и AmountLimit соответствуют колонке cash_payments.amount NUMERIC(14, 2).
const AmountScale = 2

var AmountLimit = decimal.New(1, 12)

// ValidateAmount проверяет, что сумму можно сохранить без округления:
// она положительна, содержит не больше AmountScale знаков после запятой и меньше AmountLimit.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, amount)
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, AmountScale)
	}
	if amount.GreaterThanOrEqual(AmountLimit) {
		return fmt.Errorf("%w: %s exceeds %s", ErrInvalidAmount, amount, AmountLimit)
	}
	return nil
}
