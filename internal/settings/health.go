package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// DatabaseHealth captures diagnostic information about the settings database.
type DatabaseHealth struct {
	DBPath           string         `json:"db_path"`
	DatabaseExists   bool           `json:"database_exists"`
	DatabaseReadable bool           `json:"database_readable"`
	SchemaVersion    int            `json:"schema_version"`
	IntegrityCheck   bool           `json:"integrity_check"`
	RowCounts        map[string]int `json:"row_counts"`
	Error            string         `json:"error,omitempty"`
}

var healthTables = []string{"providers", "languages", "folders", "provider_groups"}

// CheckHealth returns diagnostic information about the settings database.
func (s *Store) CheckHealth(ctx context.Context) (DatabaseHealth, error) {
	health := DatabaseHealth{DBPath: s.path, RowCounts: map[string]int{}}
	if s.path == "" {
		return health, errors.New("settings database path is unknown")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat settings database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("settings database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping settings database: %w", err)
	}
	health.DatabaseReadable = true

	if err := s.db.QueryRowContext(connCtx, "SELECT version FROM schema_version LIMIT 1").Scan(&health.SchemaVersion); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("read schema version: %w", err)
	}

	for _, table := range healthTables {
		var count int
		if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			health.Error = err.Error()
			return health, fmt.Errorf("count %s: %w", table, err)
		}
		health.RowCounts[table] = count
	}

	var integrity string
	if err := s.db.QueryRowContext(connCtx, "PRAGMA integrity_check").Scan(&integrity); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("integrity check: %w", err)
	}
	health.IntegrityCheck = strings.EqualFold(integrity, "ok")
	return health, nil
}
