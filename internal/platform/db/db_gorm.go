// Package db opens the relational store behind the GORM repositories.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// retryInterval is the pause between connection attempts.
const retryInterval = 3 * time.Second

// ErrUnsupportedURI is returned for store URIs no GORM dialect handles.
var ErrUnsupportedURI = errors.New("unsupported store uri")

// Opener opens a connection for dsn.
type Opener func(dsn string) (*gorm.DB, error)

// IsSQLURI reports whether uri selects a GORM-backed store.
func IsSQLURI(uri string) bool {
	_, err := Dialector(uri)
	return err == nil
}

// Dialector picks the GORM dialect from the URI scheme:
// postgres:// and postgresql:// use PostgreSQL, sqlite:// and file: use SQLite.
func Dialector(uri string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return postgres.Open(uri), nil
	case strings.HasPrefix(uri, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(uri, "sqlite://")), nil
	case strings.HasPrefix(uri, "file:"):
		return sqlite.Open(uri), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedURI, redact(uri))
}

// Open connects to uri, retrying until timeout. Duplicate-key failures are
// translated to gorm.ErrDuplicatedKey. SQLite is limited to one open
// connection; an in-memory database exists per connection.
func Open(uri string, timeout time.Duration) (*gorm.DB, error) {
	dialector, err := Dialector(uri)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(uri, timeout, func(string) (*gorm.DB, error) {
		return gorm.Open(dialector, &gorm.Config{TranslateError: true})
	})
	if err != nil {
		return nil, err
	}

	if dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates the tables for models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses,
// waiting retryInterval between attempts.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	return connectWithRetry(dsn, timeout, retryInterval, opener)
}

func connectWithRetry(dsn string, timeout, interval time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempt, err)
		}
		slog.Warn("db connect failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(interval)
	}
}

// redact hides the password of a URI for logs and errors.
func redact(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return uri
	}
	user, _, hasPass := strings.Cut(creds, ":")
	if !hasPass {
		return uri
	}
	return scheme + "://" + user + ":xxxxx@" + host
}
