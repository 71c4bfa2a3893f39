package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/cash-review/internal/config"
	"github.com/fsdevblog/cash-review/internal/lock"
	"github.com/fsdevblog/cash-review/internal/metrics"
	"github.com/fsdevblog/cash-review/internal/repository/pgrepo"
	"github.com/fsdevblog/cash-review/internal/repository/repoargs"
	"github.com/fsdevblog/cash-review/internal/review"
	"github.com/fsdevblog/cash-review/internal/service"
	"github.com/fsdevblog/cash-review/internal/service/psswd"
	"github.com/fsdevblog/cash-review/internal/transport/api"
	"github.com/fsdevblog/cash-review/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":          a.Config.RunAddress,
		"migrations":       a.Config.MigrationsDir,
		"redis":            a.Config.RedisURL != "",
		"confirmation_ttl": a.Config.ConfirmationTTL.String(),
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := InitUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	jwtSecret := []byte(a.Config.JWTUserSecret)
	services, sErr := service.Factory(unitOfWork, jwtSecret, psswd.New())
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	locker, closeLocker, lockErr := a.initLocker(notifyCtx)
	if lockErr != nil {
		return fmt.Errorf("app run: %w", lockErr)
	}
	defer closeLocker()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, metricsErr := metrics.New(registry)
	if metricsErr != nil {
		return fmt.Errorf("app run: %s", metricsErr.Error())
	}

	sessions := review.NewSessions(services.CashPaymentService, services.ApprovalService, locker, a.Logger).
		SetConfirmationTTL(a.Config.ConfirmationTTL).
		SetObserver(recorder)

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		CashPaymentService: services.CashPaymentService,
		AuditService:       services.ApprovalService,
		Sessions:           api.NewReviewSessions(sessions),
		JWTSecretKey:       jwtSecret,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initLocker маркеры занятости в redis, если он настроен, иначе в памяти процесса.
func (a *App) initLocker(ctx context.Context) (review.Locker, func(), error) {
	if a.Config.RedisURL == "" {
		return lock.NewMemory(), func() {}, nil
	}

	redisLocker, err := lock.NewRedis(ctx, a.Config.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis locker: %w", err)
	}
	return redisLocker, func() {
		if closeErr := redisLocker.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("close redis locker")
		}
	}, nil
}

// InitUOW регистрирует репозитории в unit of work.
func InitUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.CashPaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCashPaymentRepository(dbtx)
		},
		repoargs.AdminLogRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAdminLogRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
