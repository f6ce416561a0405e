// internal/store/sqlite/store.go
package sqlite

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/shrimpsizemoose/klassrum/internal/store"
	"github.com/shrimpsizemoose/klassrum/migrations"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type SQLiteStore struct {
	store.BaseStore
}

func NewSQLiteStore(config *store.DBConfig) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	// one connection serializes writers, and keeps :memory: databases alive
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &SQLiteStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			return query
		},
	}}

	if err := s.ApplyMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) ApplyMigrations() error {
	return s.BaseStore.ApplyMigrations(migrations.FS, translateToSQLite)
}

var sqliteReplacer = strings.NewReplacer(
	"BIGSERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"TIMESTAMPTZ", "DATETIME",
	"TIMESTAMP", "DATETIME",
	"now()", "CURRENT_TIMESTAMP",
)

// translateToSQLite converts Postgres SQL to SQLite dialect
func translateToSQLite(sql string) string {
	return sqliteReplacer.Replace(sql)
}
