package repoargs

import (
	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCashPayment struct {
	SubmittedBy uuid.UUID
	Amount      decimal.Decimal
}

// ResolvePayment аргументы условного обновления: запись меняется только пока её статус pending.
type ResolvePayment struct {
	ID         uuid.UUID
	Status     domain.PaymentStatusType
	ApprovedBy uuid.UUID
	AdminNotes string
}
