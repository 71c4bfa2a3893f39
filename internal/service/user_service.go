package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/internal/service/tokens"
	"github.com/fsdevblog/cash-review/pkg/uow"
)

const JWTTokenExpire = 8 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
	psswd          PasswordHasher
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
		psswd:          hasher,
	}, nil
}

type CreateUserArgs struct {
	FullName     string
	Email        string
	MobileNumber string
	Password     string
	Role         domain.RoleType
}

// Create создает пользователя с захешированным паролем. Дубликат email - domain.ErrDuplicateKey.
func (s *UserService) Create(ctx context.Context, args CreateUserArgs) (*domain.User, error) {
	hash, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("creating user: %s", hashErr.Error())
	}
	user, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		FullName:     args.FullName,
		Email:        strings.ToLower(strings.TrimSpace(args.Email)),
		MobileNumber: args.MobileNumber,
		Password:     hash,
		Role:         args.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует пользователя по email/паролю и выпускает jwt с ролью. Возвращает
// domain.ErrRecordNotFound или domain.ErrPasswordMissMatch при неверных данных.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(args.Email)))
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %s", tokenErr.Error())
	}
	return user, token, nil
}
