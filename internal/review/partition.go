package review

import "github.com/fsdevblog/cash-review/internal/domain"

// Partition делит платежи на ожидающие решения и обработанные, сохраняя исходный порядок внутри групп.
func Partition(payments []domain.CashPayment) ([]domain.CashPayment, []domain.CashPayment) {
	var pending = make([]domain.CashPayment, 0, len(payments))
	var processed = make([]domain.CashPayment, 0, len(payments))
	for _, p := range payments {
		if p.Status == domain.PaymentStatusPending {
			pending = append(pending, p)
		} else {
			processed = append(processed, p)
		}
	}
	return pending, processed
}
