package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/logger"
	"github.com/fsdevblog/cash-review/internal/review"
	"github.com/fsdevblog/cash-review/internal/service/tokens"
	"github.com/fsdevblog/cash-review/internal/transport/api"
	"github.com/fsdevblog/cash-review/internal/transport/api/mocks"
	"github.com/fsdevblog/cash-review/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSessions   *mocks.MockReviewSessions
	mockController *mocks.MockReviewController
	mockAudit      *mocks.MockAuditServicer
	jwtSecret      []byte

	adminID    uuid.UUID
	adminToken string
	userToken  string
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = mocks.NewMockReviewSessions(s.mockCtrl)
	s.mockController = mocks.NewMockReviewController(s.mockCtrl)
	s.mockAudit = mocks.NewMockAuditServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.router, err = api.New(api.RouterArgs{
		Logger:       logger.New(io.Discard),
		AuditService: s.mockAudit,
		Sessions:     s.mockSessions,
		JWTSecretKey: s.jwtSecret,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	})
	s.Require().NoError(err)

	s.adminID = uuid.New()
	s.adminToken, err = tokens.GenerateUserJWT(s.adminID, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.userToken, err = tokens.GenerateUserJWT(uuid.New(), domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(err)

	// для не-администратора контроллер не запрашивается, иначе мок упадет на неожиданном вызове
	s.mockSessions.EXPECT().
		For(review.AdminSession{AdminID: s.adminID, Role: domain.RoleAdmin}).
		Return(s.mockController, nil).AnyTimes()
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReviewHandlerTestSuite) request(
	method, url, token string,
	opts ...func(*testutils.RequestOptions) error,
) *http.Response {
	opts = append(opts, testutils.WithBearer(token))
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}, opts...)
	s.Require().NoError(err)
	return res
}

func reviewURL(route string) string {
	return api.RouteGroup + api.AdminGroup + route
}

func pathWith(route, param, value string) string {
	return reviewURL(strings.Replace(route, ":"+param, value, 1))
}

func (s *ReviewHandlerTestSuite) TestAdminGate() {
	cases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "user is redirected", token: s.userToken, wantStatus: http.StatusSeeOther},
		{name: "anonymous", token: "", wantStatus: http.StatusUnauthorized},
		{name: "broken token", token: "not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	routes := []struct {
		method string
		url    string
	}{
		{http.MethodGet, reviewURL(api.ReviewRoute)},
		{http.MethodPost, pathWith(api.ApproveRoute, "id", uuid.NewString())},
		{http.MethodPost, pathWith(api.RejectRoute, "id", uuid.NewString())},
		{http.MethodPost, pathWith(api.ConfirmationsRoute, "token", uuid.NewString())},
		{http.MethodDelete, pathWith(api.ConfirmationsRoute, "token", uuid.NewString())},
		{http.MethodGet, pathWith(api.AuditRoute, "id", uuid.NewString())},
	}

	s.mockAudit.EXPECT().AuditTrail(gomock.Any(), gomock.Any()).Times(0)

	for _, t := range cases {
		s.Run(t.name, func() {
			for _, r := range routes {
				res := s.request(r.method, r.url, t.token)
				s.Require().NoError(res.Body.Close())
				s.Equal(t.wantStatus, res.StatusCode, "%s %s", r.method, r.url)
				if t.wantStatus == http.StatusSeeOther {
					s.Equal("/", res.Header.Get("Location"))
				}
			}
		})
	}
}

func (s *ReviewHandlerTestSuite) TestIndex() {
	submitter := &domain.User{ID: uuid.New(), FullName: "Asha"}
	pending := domain.CashPayment{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Amount:      decimal.NewFromInt(500),
		Status:      domain.PaymentStatusPending,
		SubmittedBy: submitter.ID,
		Submitter:   submitter,
	}
	view := review.View{
		Pending:     []domain.CashPayment{pending},
		Processed:   []domain.CashPayment{},
		RefreshedAt: time.Now(),
	}

	s.Run("fresh list", func() {
		s.mockController.EXPECT().Refresh(gomock.Any()).Return(view, nil)

		res := s.request(http.MethodGet, reviewURL(api.ReviewRoute), s.adminToken)
		s.Equal(http.StatusOK, res.StatusCode)

		var body api.ReviewResponse
		s.Require().NoError(testutils.DecodeJSON(res, &body))
		s.False(body.Stale)
		s.Nil(body.Notice)
		s.Require().Len(body.Pending, 1)
		s.Equal(pending.ID, body.Pending[0].ID)
		s.Equal("Asha", body.Pending[0].SubmitterName)
		s.Empty(body.Processed)
	})

	s.Run("store unavailable", func() {
		stale := view
		stale.Stale = true
		s.mockController.EXPECT().Refresh(gomock.Any()).Return(stale, errors.New("connection refused"))

		res := s.request(http.MethodGet, reviewURL(api.ReviewRoute), s.adminToken)
		s.Equal(http.StatusOK, res.StatusCode)

		var body api.ReviewResponse
		s.Require().NoError(testutils.DecodeJSON(res, &body))
		s.True(body.Stale)
		s.Require().NotNil(body.Notice)
		s.False(body.Notice.Success)
		s.Len(body.Pending, 1)
	})
}

func (s *ReviewHandlerTestSuite) TestRequestDecision() {
	paymentID := uuid.New()
	resolvedID := uuid.New()
	unknownID := uuid.New()

	conf := review.Confirmation{
		Token:         uuid.New(),
		PaymentID:     paymentID,
		Decision:      domain.DecisionApprove,
		Amount:        decimal.NewFromInt(500),
		SubmitterName: "Asha",
		Prompt:        "Approve cash payment of 500.00 from Asha?",
		ExpiresAt:     time.Now().Add(5 * time.Minute),
	}

	s.mockController.EXPECT().Request(paymentID, domain.DecisionApprove, "seen the receipt").Return(conf, nil)
	s.mockController.EXPECT().Request(paymentID, domain.DecisionReject, "").Return(conf, nil)
	s.mockController.EXPECT().Request(resolvedID, gomock.Any(), gomock.Any()).
		Return(review.Confirmation{}, fmt.Errorf("cash payment %s: %w", resolvedID, domain.ErrAlreadyResolved))
	s.mockController.EXPECT().Request(unknownID, gomock.Any(), gomock.Any()).
		Return(review.Confirmation{}, fmt.Errorf("cash payment %s: %w", unknownID, domain.ErrRecordNotFound))

	cases := []struct {
		name       string
		url        string
		opts       []func(*testutils.RequestOptions) error
		wantStatus int
	}{
		{
			name:       "approve with notes",
			url:        pathWith(api.ApproveRoute, "id", paymentID.String()),
			opts:       []func(*testutils.RequestOptions) error{testutils.WithJSON(api.DecisionParams{Notes: "seen the receipt"})},
			wantStatus: http.StatusOK,
		},
		{
			name:       "reject without body",
			url:        pathWith(api.RejectRoute, "id", paymentID.String()),
			wantStatus: http.StatusOK,
		},
		{
			name:       "already resolved",
			url:        pathWith(api.ApproveRoute, "id", resolvedID.String()),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown payment",
			url:        pathWith(api.ApproveRoute, "id", unknownID.String()),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			url:        pathWith(api.ApproveRoute, "id", "42"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "notes too long",
			url:  pathWith(api.ApproveRoute, "id", paymentID.String()),
			opts: []func(*testutils.RequestOptions) error{
				testutils.WithJSON(api.DecisionParams{Notes: testutils.OverBytesUnderRunes(1000)}),
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, t.url, s.adminToken, t.opts...)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body api.ConfirmationResponse
				s.Require().NoError(testutils.DecodeJSON(res, &body))
				s.Equal(conf.Token, body.Token)
				s.Equal(conf.Prompt, body.Prompt)
				return
			}
			s.Require().NoError(res.Body.Close())
		})
	}
}

func (s *ReviewHandlerTestSuite) TestConfirm() {
	paymentID := uuid.New()
	okToken := uuid.New()
	busyToken := uuid.New()
	expiredToken := uuid.New()
	failedToken := uuid.New()
	deniedToken := uuid.New()

	approved := domain.CashPayment{ID: paymentID, Status: domain.PaymentStatusApproved, Amount: decimal.NewFromInt(500)}

	s.mockController.EXPECT().Confirm(gomock.Any(), okToken).Return(review.Notice{
		Success:   true,
		PaymentID: paymentID,
		Decision:  domain.DecisionApprove,
		Message:   "payment approved",
	}, nil)
	s.mockController.EXPECT().View().Return(review.View{
		Pending:   []domain.CashPayment{},
		Processed: []domain.CashPayment{approved},
	})
	s.mockController.EXPECT().Confirm(gomock.Any(), busyToken).
		Return(review.Notice{}, fmt.Errorf("approve cash payment %s: %w", paymentID, review.ErrBusy))
	s.mockController.EXPECT().Confirm(gomock.Any(), expiredToken).
		Return(review.Notice{}, review.ErrConfirmationExpired)
	s.mockController.EXPECT().Confirm(gomock.Any(), failedToken).Return(review.Notice{
		PaymentID: paymentID,
		Decision:  domain.DecisionApprove,
		Message:   fmt.Sprintf("approve payment %s failed: connection reset", paymentID),
	}, fmt.Errorf("approve cash payment %s: %w", paymentID, domain.ErrUnknown))
	s.mockController.EXPECT().Confirm(gomock.Any(), deniedToken).Return(review.Notice{
		PaymentID: paymentID,
		Decision:  domain.DecisionReject,
		Message:   fmt.Sprintf("reject payment %s failed: permission denied", paymentID),
	}, fmt.Errorf("reject cash payment %s: %w", paymentID, domain.ErrPermissionDenied))

	cases := []struct {
		name        string
		token       string
		wantStatus  int
		wantNotice  bool
		wantSuccess bool
	}{
		{name: "resolved", token: okToken.String(), wantStatus: http.StatusOK, wantNotice: true, wantSuccess: true},
		{name: "busy", token: busyToken.String(), wantStatus: http.StatusConflict},
		{name: "expired", token: expiredToken.String(), wantStatus: http.StatusNotFound},
		{name: "store failure", token: failedToken.String(), wantStatus: http.StatusInternalServerError, wantNotice: true},
		{name: "permission revoked", token: deniedToken.String(), wantStatus: http.StatusForbidden, wantNotice: true},
		{name: "malformed token", token: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, pathWith(api.ConfirmationsRoute, "token", t.token), s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)

			var body struct {
				Notice    *api.NoticeResponse       `json:"notice"`
				Processed []api.CashPaymentResponse `json:"processed"`
				Error     string                    `json:"error"`
			}
			s.Require().NoError(testutils.DecodeJSON(res, &body))

			if !t.wantNotice {
				s.Nil(body.Notice)
				s.NotEmpty(body.Error)
				return
			}
			s.Require().NotNil(body.Notice)
			s.Equal(t.wantSuccess, body.Notice.Success)
			s.Equal(paymentID, body.Notice.PaymentID)
			if t.wantSuccess {
				s.Require().Len(body.Processed, 1)
				s.Equal(domain.PaymentStatusApproved, body.Processed[0].Status)
			} else {
				s.Contains(body.Notice.Message, "failed")
			}
		})
	}
}

func (s *ReviewHandlerTestSuite) TestCancel() {
	token := uuid.New()
	s.mockController.EXPECT().Cancel(token)

	res := s.request(http.MethodDelete, pathWith(api.ConfirmationsRoute, "token", token.String()), s.adminToken)
	s.Require().NoError(res.Body.Close())
	s.Equal(http.StatusNoContent, res.StatusCode)
}

func (s *ReviewHandlerTestSuite) TestAudit() {
	paymentID := uuid.New()
	emptyID := uuid.New()
	unknownID := uuid.New()

	details, err := json.Marshal(domain.AdminLogDetails{PaymentID: paymentID, Notes: "ok"})
	s.Require().NoError(err)

	s.mockAudit.EXPECT().AuditTrail(gomock.Any(), paymentID).Return([]domain.AdminLogEntry{
		{ID: 7, CreatedAt: time.Now(), AdminID: s.adminID, Action: domain.AdminActionApproveCashPayment, Details: details},
	}, nil)
	s.mockAudit.EXPECT().AuditTrail(gomock.Any(), emptyID).Return(nil, nil)
	s.mockAudit.EXPECT().AuditTrail(gomock.Any(), unknownID).
		Return(nil, fmt.Errorf("audit trail of cash payment %s: %w", unknownID, domain.ErrRecordNotFound))

	res := s.request(http.MethodGet, pathWith(api.AuditRoute, "id", paymentID.String()), s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)

	var body []api.AuditEntryResponse
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Require().Len(body, 1)
	s.Equal(domain.AdminActionApproveCashPayment, body[0].Action)
	s.Equal(paymentID, body[0].PaymentID)
	s.Equal(s.adminID, body[0].AdminID)
	s.Equal("ok", body[0].Notes)

	res = s.request(http.MethodGet, pathWith(api.AuditRoute, "id", emptyID.String()), s.adminToken)
	s.Require().NoError(res.Body.Close())
	s.Equal(http.StatusNoContent, res.StatusCode)

	res = s.request(http.MethodGet, pathWith(api.AuditRoute, "id", unknownID.String()), s.adminToken)
	s.Require().NoError(res.Body.Close())
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *ReviewHandlerTestSuite) TestMetricsRoute() {
	res := s.request(http.MethodGet, api.MetricsRoute, "")
	s.Require().NoError(res.Body.Close())
	s.Equal(http.StatusOK, res.StatusCode)
}
