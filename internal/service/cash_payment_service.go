package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashPaymentService struct {
	uow         uow.UOW
	paymentRepo CashPaymentRepository
}

func NewCashPaymentService(u uow.UOW) (*CashPaymentService, error) {
	rName := uow.RepositoryName(repoargs.CashPaymentRepoName)
	paymentRepo, err := uow.GetRepositoryAs[CashPaymentRepository](u, rName)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CashPaymentService{
		uow:         u,
		paymentRepo: paymentRepo,
	}, nil
}

// Submit регистрирует заявку пользователя о наличной оплате в статусе pending.
// Сумма, которую нельзя сохранить без округления, отклоняется с domain.ErrInvalidAmount.
func (s *CashPaymentService) Submit(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
) (*domain.CashPayment, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, fmt.Errorf("submitting cash payment: %w", err)
	}
	payment, err := s.paymentRepo.Create(ctx, repoargs.CreateCashPayment{
		SubmittedBy: userID,
		Amount:      amount,
	})
	if err != nil {
		return nil, fmt.Errorf("submitting cash payment: %w", err)
	}
	return payment, nil
}

// ListByUser возвращает заявки пользователя, новые первыми.
func (s *CashPaymentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CashPayment, error) {
	payments, err := s.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user cash payments: %w", err)
	}
	return payments, nil
}

// ListForReview возвращает все заявки с отправителями, отсортированные по created_at по убыванию.
func (s *CashPaymentService) ListForReview(ctx context.Context) ([]domain.CashPayment, error) {
	payments, err := s.paymentRepo.ListWithSubmitters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cash payments for review: %w", err)
	}
	return payments, nil
}
