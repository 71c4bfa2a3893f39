package review

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/service"
)

type PaymentLister interface {
	ListForReview(ctx context.Context) ([]domain.CashPayment, error)
}

type Resolver interface {
	Resolve(ctx context.Context, args service.ResolveArgs) error
}

// Locker маркер занятости по идентификатору платежа.
type Locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
	IsLocked(ctx context.Context, key string) (bool, error)
}

type Observer interface {
	ObserveResolution(decision, outcome string)
	ObserveFetch(pending int, err error)
}
