package app

import (
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/lock"
	"github.com/shrimpsizemoose/klassrum/internal/store"
	"github.com/shrimpsizemoose/klassrum/internal/store/postgres"
	"github.com/shrimpsizemoose/klassrum/internal/store/sqlite"
)

func NewStore(dsn string) (store.LMSStore, error) {
	config := &store.DBConfig{DSN: dsn, Type: store.DetectType(dsn)}

	switch config.Type {
	case store.DBTypePostgres:
		return postgres.NewPostgresStore(config)
	case store.DBTypeSQLite:
		return sqlite.NewSQLiteStore(config)
	default:
		return nil, fmt.Errorf("unable to determine database type from DSN: %s", dsn)
	}
}

// NewLocker returns a Redis locker when a Redis URL is configured,
// otherwise an in-process one.
func NewLocker(config *Config) (lock.Locker, error) {
	if config.Lock.RedisURL == "" {
		return lock.NewLocalLocker(), nil
	}
	return lock.NewRedisLocker(config.Lock.RedisURL, config.Lock.KeyTemplate, config.LockTTL())
}
