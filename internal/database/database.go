package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/locvowork/crm_admin/internal/config"
	"github.com/locvowork/crm_admin/internal/domain"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the relational store.
type Config struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

// ConfigFromEnv maps the DB_* settings onto a Config.
func ConfigFromEnv(env *config.EnvConfig) Config {
	return Config{
		Driver:          env.DB_DRIVER,
		Host:            env.DB_HOST,
		Port:            env.DB_PORT,
		User:            env.DB_USER,
		Password:        env.DB_PASSWORD,
		DBName:          env.DB_NAME,
		SSLMode:         env.DB_SSL_MODE,
		MaxOpenConns:    env.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    env.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: env.DB_CONN_MAX_LIFETIME,
		ConnectTimeout:  env.DB_CONNECT_TIMEOUT,
	}
}

// DSN renders the data source name for the configured driver. For sqlite
// DBName is the file path (or ":memory:") and foreign keys are switched on
// for every connection. For postgres it is a URL, so credentials may hold any
// character.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		sep := "?"
		if strings.Contains(c.DBName, "?") {
			sep = "&"
		}
		return c.DBName + sep + "_pragma=foreign_keys(1)"
	}

	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("connect_timeout", strconv.Itoa(int(c.ConnectTimeout.Seconds())))
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open connects to the store and verifies the connection with a ping.
// Any failure is a *domain.StartupConnectionError.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.Driver != DriverPostgres && cfg.Driver != DriverSQLite {
		return nil, &domain.StartupConnectionError{Driver: cfg.Driver, Err: fmt.Errorf("unsupported driver")}
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, &domain.StartupConnectionError{Driver: cfg.Driver, Err: err}
	}

	// One live connection serves the whole process.
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, &domain.StartupConnectionError{Driver: cfg.Driver, Err: err}
	}

	return db, nil
}
