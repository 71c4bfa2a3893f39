package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/internal/service/mocks"
	"github.com/fsdevblog/cash-review/pkg/uow"
	uowmocks "github.com/fsdevblog/cash-review/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockUserRepo    *mocks.MockUserRepository
	mockPaymentRepo *mocks.MockCashPaymentRepository
	mockLogRepo     *mocks.MockAdminLogRepository
	service         *ApprovalService
	// параметры последней открытой транзакции
	txOptions pgx.TxOptions

	admin   domain.User
	payment domain.CashPayment
}

func TestApprovalServiceSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}

func (s *ApprovalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockCashPaymentRepository(s.mockCtrl)
	s.mockLogRepo = mocks.NewMockAdminLogRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AdminLogRepoName)).
		Return(s.mockLogRepo, nil).AnyTimes()

	// репозитории внутри транзакции
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CashPaymentRepoName)).Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AdminLogRepoName)).Return(s.mockLogRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error, opts ...uow.TxOption) error {
			s.txOptions = pgx.TxOptions{}
			for _, opt := range opts {
				opt(&s.txOptions)
			}
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	var err error
	s.service, err = NewApprovalService(s.mockUOW)
	s.Require().NoError(err)

	s.admin = domain.User{ID: uuid.New(), FullName: "Root", Role: domain.RoleAdmin}
	s.payment = domain.CashPayment{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Amount:      decimal.NewFromInt(500),
		Status:      domain.PaymentStatusPending,
		SubmittedBy: uuid.New(),
	}
}

func (s *ApprovalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ApprovalServiceTestSuite) TestResolve_Success() {
	cases := []struct {
		name       string
		decision   domain.DecisionType
		wantStatus domain.PaymentStatusType
		wantAction domain.AdminActionType
	}{
		{
			name:       "approve",
			decision:   domain.DecisionApprove,
			wantStatus: domain.PaymentStatusApproved,
			wantAction: domain.AdminActionApproveCashPayment,
		},
		{
			name:       "reject",
			decision:   domain.DecisionReject,
			wantStatus: domain.PaymentStatusRejected,
			wantAction: domain.AdminActionRejectCashPayment,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.admin.ID).Return(&s.admin, nil)

			s.mockPaymentRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args repoargs.ResolvePayment) (*domain.CashPayment, error) {
					s.Equal(s.payment.ID, args.ID)
					s.Equal(t.wantStatus, args.Status)
					s.Equal(s.admin.ID, args.ApprovedBy)
					s.Equal("checked at the desk", args.AdminNotes)
					resolved := s.payment
					resolved.Status = args.Status
					return &resolved, nil
				})

			// ровно одна запись журнала с нужным action и payment_id
			s.mockLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args repoargs.CreateAdminLog) (*domain.AdminLogEntry, error) {
					s.Equal(s.admin.ID, args.AdminID)
					s.Equal(t.wantAction, args.Action)
					s.Equal(s.payment.ID, args.Details.PaymentID)
					s.Equal("checked at the desk", args.Details.Notes)
					return &domain.AdminLogEntry{ID: 1, AdminID: args.AdminID, Action: args.Action}, nil
				}).Times(1)

			err := s.service.Resolve(testContext(s.T()), ResolveArgs{
				PaymentID: s.payment.ID,
				Decision:  t.decision,
				AdminID:   s.admin.ID,
				Notes:     "  checked at the desk ",
			})
			s.Require().NoError(err)
		})
	}
}

func (s *ApprovalServiceTestSuite) TestResolve_NotAdmin() {
	user := domain.User{ID: uuid.New(), Role: domain.RoleUser}
	missingID := uuid.New()

	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(&user, nil)
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), missingID).
		Return(nil, fmt.Errorf("[repository/finding user] %w", domain.ErrRecordNotFound))

	// до изменения данных дело не доходит
	s.mockPaymentRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)
	s.mockLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	for _, adminID := range []uuid.UUID{user.ID, missingID} {
		err := s.service.Resolve(testContext(s.T()), ResolveArgs{
			PaymentID: s.payment.ID,
			Decision:  domain.DecisionApprove,
			AdminID:   adminID,
		})
		s.Require().ErrorIs(err, domain.ErrPermissionDenied)
	}
}

func (s *ApprovalServiceTestSuite) TestResolve_ZeroRowsMatched() {
	notFound := fmt.Errorf("[repository/resolving] %w", domain.ErrRecordNotFound)

	cases := []struct {
		name     string
		existing *domain.CashPayment
		findErr  error
		wantErr  error
	}{
		{
			name:     "already resolved",
			existing: &domain.CashPayment{ID: s.payment.ID, Status: domain.PaymentStatusRejected},
			wantErr:  domain.ErrAlreadyResolved,
		},
		{
			name:    "payment does not exist",
			findErr: notFound,
			wantErr: domain.ErrRecordNotFound,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.admin.ID).Return(&s.admin, nil)
			s.mockPaymentRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, notFound)
			s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), s.payment.ID).Return(t.existing, t.findErr)
			s.mockLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			err := s.service.Resolve(testContext(s.T()), ResolveArgs{
				PaymentID: s.payment.ID,
				Decision:  domain.DecisionApprove,
				AdminID:   s.admin.ID,
			})
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *ApprovalServiceTestSuite) TestResolve_LogInsertFails() {
	storeErr := fmt.Errorf("[repository/creating admin log] %w: connection reset", domain.ErrUnknown)

	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.admin.ID).Return(&s.admin, nil)
	s.mockPaymentRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&s.payment, nil)
	s.mockLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	// ошибка журнала возвращается из транзакции, поэтому смена статуса откатывается вместе с ней.
	err := s.service.Resolve(testContext(s.T()), ResolveArgs{
		PaymentID: s.payment.ID,
		Decision:  domain.DecisionReject,
		AdminID:   s.admin.ID,
	})
	s.Require().ErrorIs(err, domain.ErrUnknown)
}

func (s *ApprovalServiceTestSuite) TestResolve_InvalidDecision() {
	err := s.service.Resolve(testContext(s.T()), ResolveArgs{
		PaymentID: s.payment.ID,
		Decision:  domain.DecisionType("refund"),
		AdminID:   s.admin.ID,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidDecision)
}

func (s *ApprovalServiceTestSuite) TestAuditTrail() {
	entries := []domain.AdminLogEntry{
		{ID: 1, AdminID: s.admin.ID, Action: domain.AdminActionApproveCashPayment},
	}
	s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), s.payment.ID).Return(&s.payment, nil)
	s.mockLogRepo.EXPECT().ListByPaymentID(gomock.Any(), s.payment.ID).Return(entries, nil)

	got, err := s.service.AuditTrail(testContext(s.T()), s.payment.ID)
	s.Require().NoError(err)
	s.Equal(entries, got)
	s.Equal(pgx.ReadOnly, s.txOptions.AccessMode)
}

func (s *ApprovalServiceTestSuite) TestAuditTrail_UnknownPayment() {
	missingID := uuid.New()
	s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), missingID).
		Return(nil, fmt.Errorf("[repository/finding cash payment] %w", domain.ErrRecordNotFound))
	s.mockLogRepo.EXPECT().ListByPaymentID(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.AuditTrail(testContext(s.T()), missingID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ApprovalServiceTestSuite) TestAuditTrail_StoreFailure() {
	s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), s.payment.ID).Return(&s.payment, nil)
	s.mockLogRepo.EXPECT().ListByPaymentID(gomock.Any(), s.payment.ID).Return(nil, errors.New("boom"))

	_, err := s.service.AuditTrail(testContext(s.T()), s.payment.ID)
	s.Require().Error(err)
}
