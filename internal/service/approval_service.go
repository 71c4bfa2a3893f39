package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApprovalService применяет решение администратора к платежу и пишет запись в журнал.
type ApprovalService struct {
	uow uow.UOW
}

func NewApprovalService(u uow.UOW) (*ApprovalService, error) {
	// журнал пишется только внутри транзакций, здесь лишь проверяется регистрация репозитория
	if _, err := uow.GetRepositoryAs[AdminLogRepository](u, uow.RepositoryName(repoargs.AdminLogRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ApprovalService{
		uow: u,
	}, nil
}

type ResolveArgs struct {
	PaymentID uuid.UUID
	Decision  domain.DecisionType
	AdminID   uuid.UUID
	Notes     string
}

// Resolve переводит платеж из pending в approved/rejected.
//
// Алгоритм работы (всё в одной транзакции):
//  1. Проверяет, что AdminID существует и является администратором, иначе domain.ErrPermissionDenied.
//  2. Выполняет условное обновление "where id = X and status = pending". Если строка не обновилась,
//     возвращает domain.ErrRecordNotFound (платежа нет) или domain.ErrAlreadyResolved.
//  3. Добавляет запись журнала {action: <decision>_cash_payment, details: {payment_id, notes}}.
//     Ошибка вставки откатывает и смену статуса.
//
// Новое состояние платежа не возвращается, вызывающий должен перечитать данные.
func (a *ApprovalService) Resolve(ctx context.Context, args ResolveArgs) error {
	if !args.Decision.Valid() {
		return fmt.Errorf("resolving cash payment %s: %w", args.PaymentID, domain.ErrInvalidDecision)
	}
	notes := strings.TrimSpace(args.Notes)

	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := a.checkAdmin(c, tx, args.AdminID); err != nil {
			return err
		}

		if err := a.resolvePayment(c, tx, args, notes); err != nil {
			return err
		}

		return a.appendLog(c, tx, args, notes)
	}, uow.WithIsolation(pgx.ReadCommitted))

	if txErr != nil {
		return fmt.Errorf("%s cash payment %s: %w", args.Decision, args.PaymentID, txErr)
	}
	return nil
}

// AuditTrail возвращает записи журнала по платежу, от старых к новым.
// Для неизвестного платежа возвращается domain.ErrRecordNotFound.
func (a *ApprovalService) AuditTrail(ctx context.Context, paymentID uuid.UUID) ([]domain.AdminLogEntry, error) {
	var entries []domain.AdminLogEntry

	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		paymentRepo, repoErr := uow.GetAs[CashPaymentRepository](tx, uow.RepositoryName(repoargs.CashPaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if _, err := paymentRepo.FindByID(c, paymentID); err != nil {
			return err //nolint:wrapcheck
		}

		logRepo, repoErr := uow.GetAs[AdminLogRepository](tx, uow.RepositoryName(repoargs.AdminLogRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var err error
		entries, err = logRepo.ListByPaymentID(c, paymentID)
		return err //nolint:wrapcheck
	}, uow.ReadOnly())

	if txErr != nil {
		return nil, fmt.Errorf("audit trail of cash payment %s: %w", paymentID, txErr)
	}
	return entries, nil
}

func (a *ApprovalService) checkAdmin(ctx context.Context, tx uow.TX, adminID uuid.UUID) error {
	userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	admin, err := userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("acting user %s: %w", adminID, domain.ErrPermissionDenied)
		}
		return err //nolint:wrapcheck
	}
	if !admin.IsAdmin() {
		return fmt.Errorf("acting user %s has role %q: %w", adminID, admin.Role, domain.ErrPermissionDenied)
	}
	return nil
}

// resolvePayment выполняет условное обновление и разбирает случай "0 строк".
func (a *ApprovalService) resolvePayment(ctx context.Context, tx uow.TX, args ResolveArgs, notes string) error {
	paymentRepo, repoErr := uow.GetAs[CashPaymentRepository](tx, uow.RepositoryName(repoargs.CashPaymentRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	_, err := paymentRepo.Resolve(ctx, repoargs.ResolvePayment{
		ID:         args.PaymentID,
		Status:     args.Decision.Status(),
		ApprovedBy: args.AdminID,
		AdminNotes: notes,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return err //nolint:wrapcheck
	}

	// Ни одна строка не обновилась: либо платежа нет, либо его уже кто-то обработал.
	existing, findErr := paymentRepo.FindByID(ctx, args.PaymentID)
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}
	return fmt.Errorf("payment is %s: %w", existing.Status, domain.ErrAlreadyResolved)
}

func (a *ApprovalService) appendLog(ctx context.Context, tx uow.TX, args ResolveArgs, notes string) error {
	logRepo, repoErr := uow.GetAs[AdminLogRepository](tx, uow.RepositoryName(repoargs.AdminLogRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	_, err := logRepo.Create(ctx, repoargs.CreateAdminLog{
		AdminID: args.AdminID,
		Action:  args.Decision.Action(),
		Details: domain.AdminLogDetails{
			PaymentID: args.PaymentID,
			Notes:     notes,
		},
	})
	return err //nolint:wrapcheck
}
