package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	defaultConnectAttempts uint = 30
	defaultRetryInterval        = 3 * time.Second
	retryJitter                 = 0.15
)

// Connect открывает пул соединений с postgres, повторяя попытки пока база не станет доступна
// (или не кончатся попытки / не отменится контекст), после чего применяет миграции из migrationsDir.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	pool, err := connectWithRetry(ctx, dsn, defaultConnectAttempts, defaultRetryInterval, l)
	if err != nil {
		return nil, fmt.Errorf("init postgres connection: %w", err)
	}

	if migrateErr := postgresMigrate(migrationsDir, dsn); migrateErr != nil {
		pool.Close()
		return nil, migrateErr
	}
	return pool, nil
}

func connectWithRetry(
	ctx context.Context,
	dsn string,
	maxAttempts uint,
	retryInterval time.Duration,
	l *logrus.Logger,
) (*pgxpool.Pool, error) {
	var attempt uint
	for {
		attempt++
		pool, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			return pool, nil
		}
		if attempt >= maxAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, connErr)
		}

		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempt, maxAttempts)).
			Warnf("init postgres connection error, retrying in ~%.f seconds", retryInterval.Seconds())

		// разносим повторы нескольких экземпляров, стартующих одновременно
		wait := time.Duration(jitter(float64(retryInterval), retryJitter, retryJitter))
		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(wait):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer func() {
		_, _ = m.Close()
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}
