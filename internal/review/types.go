package review

import (
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// AdminSession явная сессия оператора, передаваемая контроллеру при создании.
type AdminSession struct {
	AdminID uuid.UUID
	Role    domain.RoleType
}

func (s AdminSession) IsAdmin() bool {
	return s.AdminID != uuid.Nil && s.Role == domain.RoleAdmin
}

// View разбиение последней успешной выборки. Stale выставляется, если последнее обновление не удалось
// и показываются прежние данные.
type View struct {
	Pending     []domain.CashPayment
	Processed   []domain.CashPayment
	Stale       bool
	RefreshedAt time.Time
}

// Confirmation выбранное оператором решение, ожидающее явного подтверждения.
type Confirmation struct {
	Token         uuid.UUID
	PaymentID     uuid.UUID
	Decision      domain.DecisionType
	Notes         string
	Amount        decimal.Decimal
	SubmitterName string
	Prompt        string
	ExpiresAt     time.Time
}

// ConfirmFunc спрашивает оператора. true - решение подтверждено.
type ConfirmFunc func(Confirmation) bool

// Notice сообщение оператору о результате решения.
type Notice struct {
	Success   bool
	PaymentID uuid.UUID
	Decision  domain.DecisionType
	Message   string
}
