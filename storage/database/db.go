package database

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/trezcool/elimu/core"
)

// storage engines backed by a SQL database
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
	PGX      = "pgx"
	MySQL    = "mysql"
)

var ErrUnknownEngine = errors.New("unknown storage engine")

func init() {
	sqlx.BindDriver(SQLite, sqlx.QUESTION)
}

func dataSourceName(conf core.StorageConfig) (string, error) {
	switch conf.Engine {
	case SQLite:
		if err := os.MkdirAll(filepath.Dir(conf.Path), 0o750); err != nil {
			return "", errors.Wrap(err, "creating database directory")
		}
		return conf.Path, nil

	case Postgres, PGX:
		sslMode := "require"
		if conf.DisableTLS {
			sslMode = "disable"
		}
		q := make(url.Values)
		q.Set("sslmode", sslMode)
		q.Set("timezone", "utc")

		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.User, conf.Password),
			Host:     conf.Address(),
			Path:     conf.Name,
			RawQuery: q.Encode(),
		}
		return u.String(), nil

	case MySQL:
		mc := mysql.NewConfig()
		mc.User = conf.User
		mc.Passwd = conf.Password
		mc.Net = "tcp"
		mc.Addr = conf.Address()
		mc.DBName = conf.Name
		if !conf.DisableTLS {
			mc.TLSConfig = "true"
		}
		return mc.FormatDSN(), nil
	}
	return "", errors.Wrapf(ErrUnknownEngine, "%q", conf.Engine)
}

// Open connects to the configured database, waits for it to be ready and creates the state table.
func Open(conf *core.Config) (*sqlx.DB, error) {
	dsn, err := dataSourceName(conf.Storage)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(conf.Storage.Engine, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if conf.Storage.Engine == SQLite {
		// a single writer avoids "database is locked"
		db.SetMaxOpenConns(1)
	}

	if err = ping(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "pinging database")
	}
	if err = Migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func stateTableDDL(driver string) string {
	switch driver {
	case Postgres, PGX:
		return `CREATE TABLE IF NOT EXISTS state (
			bucket TEXT PRIMARY KEY,
			payload BYTEA NOT NULL
		)`
	case MySQL:
		return `CREATE TABLE IF NOT EXISTS state (
			bucket VARCHAR(64) PRIMARY KEY,
			payload LONGBLOB NOT NULL
		)`
	}
	return `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`
}

// Migrate creates the state table if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, stateTableDDL(db.DriverName())); err != nil {
		return errors.Wrap(err, "creating state table")
	}
	return nil
}
