package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr приводит ошибку драйвера к виду слоя репозитория: контекст операции, тип бизнес-ошибки
// и исходное сообщение.
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound;
//   - нарушение уникальности - в domain.ErrDuplicateKey;
//   - нарушение внешнего ключа - в domain.ErrRecordNotFound (ссылка на несуществующую запись);
//   - всё остальное - domain.ErrUnknown.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
