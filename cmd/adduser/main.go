// Утилита заведения пользователей, в том числе администраторов, которые рассматривают заявки.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/cash-review/internal/app"
	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/logger"
	"github.com/fsdevblog/cash-review/internal/repository/pgrepo"
	"github.com/fsdevblog/cash-review/internal/service"
	"github.com/fsdevblog/cash-review/internal/service/psswd"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type dbConfig struct {
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"internal/db/migrations"`
}

func main() {
	l := logger.New(os.Stdout)
	_ = godotenv.Load()

	var conf dbConfig
	if err := env.Parse(&conf); err != nil {
		l.WithError(err).Fatal("parse env config")
	}

	var args service.CreateUserArgs
	var role string
	flag.StringVar(&conf.DatabaseDSN, "d", conf.DatabaseDSN, "Database DSN")
	flag.StringVar(&args.FullName, "name", "", "Full name")
	flag.StringVar(&args.Email, "email", "", "Email")
	flag.StringVar(&args.MobileNumber, "mobile", "", "Mobile number")
	flag.StringVar(&args.Password, "password", "", "Password")
	flag.StringVar(&role, "role", string(domain.RoleUser), "Role: user or admin")
	flag.Parse()

	args.Role = domain.RoleType(role)
	if args.Role != domain.RoleUser && args.Role != domain.RoleAdmin {
		l.Fatalf("unknown role %q", role)
	}
	if conf.DatabaseDSN == "" || args.Email == "" || args.Password == "" {
		flag.Usage()
		os.Exit(2) //nolint:mnd
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := pgrepo.Connect(ctx, conf.MigrationsDir, conf.DatabaseDSN, l)
	if err != nil {
		l.WithError(err).Fatal("connect to database")
	}
	defer conn.Close()

	unitOfWork, err := app.InitUOW(conn)
	if err != nil {
		l.WithError(err).Error("init unit of work")
		return
	}
	userService, err := service.NewUserService(unitOfWork, nil, psswd.New())
	if err != nil {
		l.WithError(err).Error("init user service")
		return
	}

	user, err := userService.Create(ctx, args)
	if err != nil {
		l.WithError(err).Error("create user")
		return
	}
	l.WithFields(logrus.Fields{
		"id":    user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
	}).Info("user created")
}
