package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/cash-review/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	LoginRoute         = "/user/login"
	CashPaymentsRoute  = "/user/cash-payments"
	AdminGroup         = "/admin"
	ReviewRoute        = "/cash-payments"
	ApproveRoute       = "/cash-payments/:id/approve"
	RejectRoute        = "/cash-payments/:id/reject"
	AuditRoute         = "/cash-payments/:id/audit"
	ConfirmationsRoute = "/confirmations/:token"
	MetricsRoute       = "/metrics"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	CashPaymentService CashPaymentServicer
	AuditService       AuditServicer
	Sessions           ReviewSessions
	JWTSecretKey       []byte
	// MetricsHandler необязателен, без него /metrics не регистрируется.
	MetricsHandler http.Handler
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	if args.MetricsHandler != nil {
		r.GET(MetricsRoute, gin.WrapH(args.MetricsHandler))
	}

	authHandler := NewAuthHandler(args.UserService)
	cashPaymentsHandler := NewCashPaymentsHandler(args.CashPaymentService)
	reviewHandler := NewReviewHandler(args.Sessions, args.AuditService)

	api := r.Group(RouteGroup)

	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(CashPaymentsRoute, cashPaymentsHandler.Create)
	api.GET(CashPaymentsRoute, cashPaymentsHandler.Index)

	admin := api.Group(AdminGroup, middlewares.AdminRequired())
	admin.GET(ReviewRoute, reviewHandler.Index)
	admin.POST(ApproveRoute, reviewHandler.Approve)
	admin.POST(RejectRoute, reviewHandler.Reject)
	admin.GET(AuditRoute, reviewHandler.Audit)
	admin.POST(ConfirmationsRoute, reviewHandler.Confirm)
	admin.DELETE(ConfirmationsRoute, reviewHandler.Cancel)

	return r, nil
}
