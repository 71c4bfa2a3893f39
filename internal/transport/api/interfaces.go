package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/review"
	"github.com/fsdevblog/cash-review/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type CashPaymentServicer interface {
	Submit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.CashPayment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CashPayment, error)
}

type AuditServicer interface {
	AuditTrail(ctx context.Context, paymentID uuid.UUID) ([]domain.AdminLogEntry, error)
}

// ReviewController операции экрана рассмотрения, которыми пользуются обработчики.
type ReviewController interface {
	Refresh(ctx context.Context) (review.View, error)
	View() review.View
	Request(id uuid.UUID, decision domain.DecisionType, notes string) (review.Confirmation, error)
	Confirm(ctx context.Context, token uuid.UUID) (review.Notice, error)
	Cancel(token uuid.UUID)
}

type ReviewSessions interface {
	For(session review.AdminSession) (ReviewController, error)
}
