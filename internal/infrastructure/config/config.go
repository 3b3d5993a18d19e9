package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Database struct {
	Driver string `toml:"driver"` // "postgres" or "sqlite"

	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"ssl_mode"`

	SqlitePath string `toml:"sqlite_path"`
}

type Report struct {
	Symbol string `toml:"symbol"`
	From   string `toml:"from"` // inclusive, YYYY-MM-DD
	To     string `toml:"to"`   // exclusive, YYYY-MM-DD
}

type Dashboard struct {
	Runner     string   `toml:"runner"`
	RunnerArgs []string `toml:"runner_args"`
	Entry      string   `toml:"entry"`
}

type Config struct {
	Database  Database  `toml:"database"`
	Report    Report    `toml:"report"`
	Dashboard Dashboard `toml:"dashboard"`
}

// DSN returns the postgres connection string assembled from parts.
// url.UserPassword escapes the credentials the way the userinfo section
// requires (a space becomes %20, not +).
func (d Database) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port <= 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "trading"
	}
	if cfg.Database.SqlitePath == "" {
		cfg.Database.SqlitePath = "data/bars.db"
	}

	// The report script historically ran with a hard-coded symbol and month;
	// those literals survive as defaults, overridable by flags.
	if cfg.Report.Symbol == "" {
		cfg.Report.Symbol = "BTCUSDT"
	}
	if cfg.Report.From == "" {
		cfg.Report.From = "2025-01-01"
	}
	if cfg.Report.To == "" {
		cfg.Report.To = "2025-02-01"
	}

	if cfg.Dashboard.Runner == "" {
		cfg.Dashboard.Runner = "streamlit"
	}
	if len(cfg.Dashboard.RunnerArgs) == 0 {
		cfg.Dashboard.RunnerArgs = []string{"run"}
	}
	if cfg.Dashboard.Entry == "" {
		cfg.Dashboard.Entry = "dashboard/app.py"
	}
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case "postgres":
		if strings.TrimSpace(cfg.Database.User) == "" {
			return errors.New("database.user is empty but driver is postgres")
		}
	case "sqlite":
		if strings.TrimSpace(cfg.Database.SqlitePath) == "" {
			return errors.New("database.sqlite_path is empty but driver is sqlite")
		}
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", cfg.Database.Driver)
	}

	cfg.Report.Symbol = strings.ToUpper(strings.TrimSpace(cfg.Report.Symbol))
	if cfg.Report.Symbol == "" {
		return errors.New("report.symbol is empty")
	}

	from, err := ParseDay(cfg.Report.From)
	if err != nil {
		return fmt.Errorf("report.from: %w", err)
	}
	to, err := ParseDay(cfg.Report.To)
	if err != nil {
		return fmt.Errorf("report.to: %w", err)
	}
	if !from.Before(to) {
		return errors.New("report.from must be before report.to")
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD date at UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
}
