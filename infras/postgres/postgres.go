package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"shareit/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads and writes. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens both pools and a cleanup that closes them.
func New(cfg *config.Config) (*Connection, func()) {
	conn := &Connection{
		Read:  Connect("read", cfg.DB.Postgres.Read, cfg),
		Write: Connect("write", cfg.DB.Postgres.Write, cfg),
	}

	return conn, conn.Close
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
		}
	}
}

// DSN renders the lib/pq connection URL for target.
func DSN(target config.Postgres, prefix string) string {
	query := url.Values{}
	query.Set("sslmode", target.SSLMode)

	if target.Timezone != "" {
		query.Set("timezone", target.Timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(target.Username, target.Password),
		Host:     net.JoinHostPort(target.Host, target.Port),
		Path:     prefix + target.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect retries up to DB_POSTGRES_MAX_RETRY times and exits when the database never answers.
func Connect(name string, target config.Postgres, cfg *config.Config) *sqlx.DB {
	descriptor := DSN(target, cfg.DB.Postgres.Prefix)
	dbName := cfg.DB.Postgres.Prefix + target.Name

	var lastErr error

	for attempt := range cfg.DB.Postgres.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			log.Info().
				Str("name", name).
				Str("host", target.Host).
				Str("port", target.Port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return sqlDB
		}

		lastErr = err

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", target.Host).
			Str("port", target.Port).
			Str("dbName", dbName).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	log.Fatal().Err(fmt.Errorf("giving up after %d attempts: %w", cfg.DB.Postgres.MaxRetry, lastErr)).Str("name", name).Msg("Database unreachable")

	return nil
}
