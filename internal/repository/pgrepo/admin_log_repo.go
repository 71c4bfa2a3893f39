package pgrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adminLogColumns = `id, created_at, admin_id, action, details`

// AdminLogRepository журнал действий администраторов. Только добавление и чтение.
type AdminLogRepository struct {
	db uow.DBTX
}

func NewAdminLogRepository(db uow.DBTX) *AdminLogRepository {
	return &AdminLogRepository{db: db}
}

func (r *AdminLogRepository) Create(ctx context.Context, args repoargs.CreateAdminLog) (*domain.AdminLogEntry, error) {
	details, marshalErr := json.Marshal(args.Details)
	if marshalErr != nil {
		return nil, fmt.Errorf("[repository/marshal admin log details] %w: %s", domain.ErrUnknown, marshalErr.Error())
	}

	query := `
		INSERT INTO admin_logs (admin_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING ` + adminLogColumns

	entry, err := scanAdminLog(r.db.QueryRow(ctx, query, args.AdminID, string(args.Action), details))
	if err != nil {
		return nil, convertErr(err, "creating admin log %s for payment %s", args.Action, args.Details.PaymentID)
	}
	return entry, nil
}

// ListByPaymentID возвращает записи журнала по платежу в порядке их создания.
func (r *AdminLogRepository) ListByPaymentID(
	ctx context.Context,
	paymentID uuid.UUID,
) ([]domain.AdminLogEntry, error) {
	query := `
		SELECT ` + adminLogColumns + `
		FROM admin_logs
		WHERE details ->> 'payment_id' = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, paymentID.String())
	if err != nil {
		return nil, convertErr(err, "listing admin logs for payment %s", paymentID)
	}
	defer rows.Close()

	var entries = make([]domain.AdminLogEntry, 0)
	for rows.Next() {
		entry, scanErr := scanAdminLog(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning admin log for payment %s", paymentID)
		}
		entries = append(entries, *entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing admin logs for payment %s", paymentID)
	}
	return entries, nil
}

func scanAdminLog(row pgx.Row) (*domain.AdminLogEntry, error) {
	var entry domain.AdminLogEntry
	var details []byte
	if err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.AdminID, &entry.Action, &details); err != nil {
		return nil, err //nolint:wrapcheck
	}
	entry.Details = json.RawMessage(details)
	return &entry, nil
}
