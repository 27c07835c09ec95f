package config

import (
	"os"
	"strings"
	"sync"
)

type DBConfig struct {
	// URL is a full connection string. Postgres DSNs (postgres:// or
	// host=...) select the postgres driver; anything else is treated as
	// a sqlite file path. Empty falls back to the embedded feedback.db.
	URL string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		url := os.Getenv("DATABASE_URL")
		if url == "" {
			url = "feedback.db"
		}
		dbConfig = &DBConfig{URL: url}
	})
	return dbConfig
}

func (c *DBConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") ||
		strings.HasPrefix(c.URL, "postgresql://") ||
		strings.Contains(c.URL, "host=")
}
