package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const cashPaymentColumns = `p.id, p.created_at, p.updated_at, p.amount, p.status, p.submitted_by,
       p.approved_by, p.approved_at, COALESCE(p.admin_notes, '')`

type CashPaymentRepository struct {
	db uow.DBTX
}

func NewCashPaymentRepository(db uow.DBTX) *CashPaymentRepository {
	return &CashPaymentRepository{db: db}
}

// Create создает платеж в статусе pending. Несуществующий отправитель - domain.ErrRecordNotFound.
func (r *CashPaymentRepository) Create(
	ctx context.Context,
	args repoargs.CreateCashPayment,
) (*domain.CashPayment, error) {
	query := `
		INSERT INTO cash_payments AS p (amount, submitted_by, status)
		VALUES ($1, $2, 'pending')
		RETURNING ` + cashPaymentColumns

	payment, err := scanCashPayment(r.db.QueryRow(ctx, query, args.Amount, args.SubmittedBy))
	if err != nil {
		return nil, convertErr(err, "creating cash payment for user %s", args.SubmittedBy)
	}
	return payment, nil
}

// FindByID ищет платеж по id. Возвращает domain.ErrRecordNotFound если записи нет.
func (r *CashPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CashPayment, error) {
	query := `SELECT ` + cashPaymentColumns + ` FROM cash_payments p WHERE p.id = $1`

	payment, err := scanCashPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "finding cash payment %s", id)
	}
	return payment, nil
}

// ListByUserID возвращает платежи пользователя, отсортированные по дате создания по убыванию.
func (r *CashPaymentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.CashPayment, error) {
	query := `
		SELECT ` + cashPaymentColumns + `
		FROM cash_payments p
		WHERE p.submitted_by = $1
		ORDER BY p.created_at DESC, p.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, convertErr(err, "listing cash payments of user %s", userID)
	}
	defer rows.Close()

	var payments = make([]domain.CashPayment, 0)
	for rows.Next() {
		payment, scanErr := scanCashPayment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning cash payment of user %s", userID)
		}
		payments = append(payments, *payment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing cash payments of user %s", userID)
	}
	return payments, nil
}

// ListWithSubmitters возвращает все платежи вместе с отправителями, новые первыми.
// Используется left join: платеж без пользователя не теряется, а превращается в ошибку
// domain.OrphanedPaymentError.
func (r *CashPaymentRepository) ListWithSubmitters(ctx context.Context) ([]domain.CashPayment, error) {
	query := `
		SELECT ` + cashPaymentColumns + `,
		       u.id, u.created_at, u.full_name, u.email, u.mobile_number, u.role
		FROM cash_payments p
		LEFT JOIN users u ON u.id = p.submitted_by
		ORDER BY p.created_at DESC, p.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "listing cash payments with submitters")
	}
	defer rows.Close()

	var payments = make([]domain.CashPayment, 0)
	for rows.Next() {
		var (
			p         domain.CashPayment
			userID    *uuid.UUID
			createdAt *time.Time
			fullName  *string
			email     *string
			mobile    *string
			role      *string
		)
		scanErr := rows.Scan(
			&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Amount, &p.Status, &p.SubmittedBy,
			&p.ApprovedBy, &p.ApprovedAt, &p.AdminNotes,
			&userID, &createdAt, &fullName, &email, &mobile, &role,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning cash payment with submitter")
		}
		if userID == nil {
			return nil, domain.NewOrphanedPaymentError(p.ID, p.SubmittedBy)
		}
		p.Submitter = &domain.User{
			ID:           *userID,
			CreatedAt:    deref(createdAt),
			FullName:     deref(fullName),
			Email:        deref(email),
			MobileNumber: deref(mobile),
			Role:         domain.RoleType(deref(role)),
		}
		payments = append(payments, p)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing cash payments with submitters")
	}
	return payments, nil
}

// Resolve переводит платеж из pending в терминальный статус одним условным UPDATE.
// Если ни одна строка не обновилась (нет записи или она уже не pending) - domain.ErrRecordNotFound,
// отличить эти случаи должен вызывающий.
func (r *CashPaymentRepository) Resolve(
	ctx context.Context,
	args repoargs.ResolvePayment,
) (*domain.CashPayment, error) {
	query := `
		UPDATE cash_payments AS p
		SET status      = $2,
		    admin_notes = NULLIF($3, ''),
		    approved_by = $4,
		    approved_at = now(),
		    updated_at  = now()
		WHERE p.id = $1
		  AND p.status = 'pending'
		RETURNING ` + cashPaymentColumns

	payment, err := scanCashPayment(
		r.db.QueryRow(ctx, query, args.ID, string(args.Status), args.AdminNotes, args.ApprovedBy),
	)
	if err != nil {
		return nil, convertErr(err, "resolving cash payment %s as %s", args.ID, args.Status)
	}
	return payment, nil
}

func scanCashPayment(row pgx.Row) (*domain.CashPayment, error) {
	var p domain.CashPayment
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Amount, &p.Status, &p.SubmittedBy,
		&p.ApprovedBy, &p.ApprovedAt, &p.AdminNotes,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
