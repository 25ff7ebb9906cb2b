package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"time"
	"usertodo/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"
)

var errNotConnected = errors.New("could not connect to database")

// Connection is the single pool shared by every repository.
type Connection struct {
	DB *sqlx.DB
}

// New connects to CONNECTION_STRING and makes sure the schema exists.
func New(config *config.Config) (*Connection, func(), error) {
	db := CreatePostgresConnection(config.ConnectionString, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
	if db == nil {
		return nil, nil, fmt.Errorf("%w after %d attempts", errNotConnected, config.DB.Postgres.MaxRetry)
	}

	if err := Bootstrap(context.Background(), db); err != nil {
		_ = db.Close()

		return nil, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing database pool")

			return
		}

		log.Info().Msg("Database pool closed")
	}

	return &Connection{DB: db}, cleanup, nil
}

// CreatePostgresConnection opens the pool, retrying up to maxRetry times.
func CreatePostgresConnection(dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			log.Info().Int("attempt", retry+1).Msg("Connected to database")

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// Ping checks that the pool can still reach the server.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}
