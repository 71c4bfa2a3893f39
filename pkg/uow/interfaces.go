package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TX репозитории, привязанные к одной открытой транзакции.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX общее подмножество методов *pgxpool.Pool и pgx.Tx, которым пользуются репозитории.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error, opts ...TxOption) error
	GetRepository(name RepositoryName) (Repository, error)
}
