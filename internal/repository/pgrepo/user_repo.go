package pgrepo

import (
	"context"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, full_name, email, mobile_number, role, encrypted_password`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера. Конфликт email - domain.ErrDuplicateKey, остальное - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	role := args.Role
	if role == "" {
		role = domain.RoleUser
	}
	query := `
		INSERT INTO users (full_name, email, mobile_number, role, encrypted_password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	user, err := scanUser(u.db.QueryRow(ctx, query,
		args.FullName, args.Email, args.MobileNumber, string(role), args.Password,
	))
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Email)
	}
	return user, nil
}

// FindByID возвращает domain.ErrRecordNotFound если юзер не найден.
func (u *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding user by id %s", id)
	}
	return user, nil
}

// FindByEmail возвращает domain.ErrRecordNotFound если юзер не найден.
func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID, &user.CreatedAt, &user.FullName, &user.Email,
		&user.MobileNumber, &user.Role, &user.EncryptedPassword,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
