package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-projector/internal/config"
)

const pingRetries = 5

// Tx is a write transaction as handed out by bob.
type Tx interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Storage struct {
	*Reader

	db    *sql.DB
	bobDB bob.DB
}

// ConnectionString builds the lib/pq URL for env.
func ConnectionString(env *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(env.PostgresUsername, env.PostgresPassword),
		Host:     env.PostgresAddress + ":" + env.PostgresPort,
		Path:     "/" + env.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// NewStorage opens the database and waits for it to accept connections.
func NewStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	db, err := sql.Open("postgres", ConnectionString(env))
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := WaitForDatabase(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		Reader: NewReader(bobDB),
		db:     db,
		bobDB:  bobDB,
	}, nil
}

// WaitForDatabase retries db.PingContext with exponential backoff, which
// covers the database container still starting up.
func WaitForDatabase(ctx context.Context, db *sql.DB, logger *logrus.Logger) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), pingRetries),
		ctx,
	)

	err := backoff.RetryNotify(
		func() error { return db.PingContext(ctx) },
		policy,
		func(err error, wait time.Duration) {
			logger.WithError(err).WithField("retryIn", wait.String()).Warn("Storage.Ping.Retry")
		},
	)
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Write starts a transaction. The caller must Commit or Rollback the writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks that the database still accepts connections.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
