package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/internal/service/mocks"
	"github.com/fsdevblog/cash-review/internal/service/tokens"
	"github.com/fsdevblog/cash-review/pkg/uow"
	uowmocks "github.com/fsdevblog/cash-review/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)
	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUser := domain.User{
		ID:                uuid.New(),
		FullName:          gofakeit.Name(),
		Email:             "admin@example.com",
		Role:              domain.RoleAdmin,
		EncryptedPassword: "hash ok",
	}
	notFound := fmt.Errorf("[repository/finding user] %w", domain.ErrRecordNotFound)

	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), savedUser.Email).Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "wrong@example.com").Return(nil, notFound)

	s.mockPsswd.EXPECT().ComparePassword("good password", savedUser.EncryptedPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword("bad password", savedUser.EncryptedPassword).Return(false)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: LoginUserArgs{Email: " Admin@Example.com", Password: "good password"}},
		{
			name:    "wrong email",
			args:    LoginUserArgs{Email: "wrong@example.com", Password: "good password"},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "wrong password",
			args:    LoginUserArgs{Email: savedUser.Email, Password: "bad password"},
			wantErr: domain.ErrPasswordMissMatch,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, token, err := s.userService.Login(testContext(s.T()), t.args)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(savedUser.ID, user.ID)

			claims, claimsErr := tokens.ValidateUserJWT(token, s.jwtSecret)
			s.Require().NoError(claimsErr)
			s.Equal(savedUser.ID, claims.ID)
			s.Equal(domain.RoleAdmin, claims.Role)
		})
	}
}

func (s *UserServiceTestSuite) TestCreate() {
	s.mockPsswd.EXPECT().HashPassword("password").Return("hashed", nil)
	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
			s.Equal("hashed", args.Password)
			s.Equal("asha@example.com", args.Email)
			s.Equal(domain.RoleAdmin, args.Role)
			return &domain.User{ID: uuid.New(), Email: args.Email, Role: args.Role}, nil
		})

	user, err := s.userService.Create(testContext(s.T()), CreateUserArgs{
		FullName: "Asha",
		Email:    "Asha@example.com ",
		Password: "password",
		Role:     domain.RoleAdmin,
	})
	s.Require().NoError(err)
	s.True(user.IsAdmin())
}
