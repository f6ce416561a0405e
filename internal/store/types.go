package store

import "strings"

type DatabaseType string

const (
	DBTypePostgres DatabaseType = "postgres"
	DBTypeSQLite   DatabaseType = "sqlite"
)

type DBConfig struct {
	DSN  string
	Type DatabaseType
}

// DetectType picks the dialect from the DSN scheme, sqlite being the fallback
func DetectType(dsn string) DatabaseType {
	if strings.HasPrefix(dsn, "postgres") {
		return DBTypePostgres
	}
	return DBTypeSQLite
}
