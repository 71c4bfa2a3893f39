package service

import (
	"context"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CashPaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreateCashPayment) (*domain.CashPayment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CashPayment, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.CashPayment, error)
	ListWithSubmitters(ctx context.Context) ([]domain.CashPayment, error)
	Resolve(ctx context.Context, args repoargs.ResolvePayment) (*domain.CashPayment, error)
}

type AdminLogRepository interface {
	Create(ctx context.Context, args repoargs.CreateAdminLog) (*domain.AdminLogEntry, error)
	ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.AdminLogEntry, error)
}
