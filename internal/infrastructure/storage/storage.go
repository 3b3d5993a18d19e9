package storage

import (
	"fmt"

	"barops/internal/application/port"
	"barops/internal/infrastructure/config"
	"barops/internal/infrastructure/storage/postgres"
	"barops/internal/infrastructure/storage/sqlite"
)

// Open picks the bar repository backend from config.
func Open(cfg config.Database) (port.BarRepository, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.New(cfg.DSN())
	case "sqlite":
		return sqlite.New(cfg.SqlitePath)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
