package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"barops/internal/application/port"
)

// Repo reads the minute_bars table over a pgx connection. The table is owned
// by the trading engine; this side never creates or mutates it.
type Repo struct {
	db *sql.DB
}

func New(dsn string) (*Repo, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	return &Repo{db: db}, nil
}

func (r *Repo) Close() error { return r.db.Close() }

func (r *Repo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (r *Repo) DailyBreakdown(ctx context.Context, symbol string, from, to time.Time) ([]port.DailyBars, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT (ts AT TIME ZONE 'UTC')::date AS day,
		       COUNT(*) AS bars,
		       MIN(ts)  AS first_ts,
		       MAX(ts)  AS last_ts
		FROM minute_bars
		WHERE symbol = $1 AND ts >= $2 AND ts < $3
		GROUP BY day
		ORDER BY day
	`, symbol, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []port.DailyBars
	for rows.Next() {
		var d port.DailyBars
		if err := rows.Scan(&d.Day, &d.Bars, &d.First, &d.Last); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

var _ port.BarRepository = (*Repo)(nil)
