package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"barops/internal/application/port"
)

// Repo serves the per-date breakdown from a local sqlite snapshot of the bars
// table, for diagnosis without a live database. Unlike the postgres side it
// owns its schema and can be seeded via InsertBar.
type Repo struct {
	db *sql.DB
}

func New(path string) (*Repo, error) {
	// ensure directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	r := &Repo{db: db}
	if err := r.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repo) Close() error { return r.db.Close() }

func (r *Repo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *Repo) migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS minute_bars (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  symbol TEXT NOT NULL,
  ts_ms INTEGER NOT NULL,
  open REAL NOT NULL,
  high REAL NOT NULL,
  low REAL NOT NULL,
  close REAL NOT NULL,
  volume REAL NOT NULL,
  UNIQUE(symbol, ts_ms)
);
CREATE INDEX IF NOT EXISTS idx_bars_symbol ON minute_bars(symbol);
CREATE INDEX IF NOT EXISTS idx_bars_ts ON minute_bars(ts_ms);
`)
	return err
}

func (r *Repo) InsertBar(ctx context.Context, symbol string, ts time.Time, open, high, low, closePx, volume float64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO minute_bars(symbol, ts_ms, open, high, low, close, volume)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol, ts_ms) DO UPDATE SET
		open=excluded.open, high=excluded.high, low=excluded.low, close=excluded.close, volume=excluded.volume
	`, symbol, ts.UnixMilli(), open, high, low, closePx, volume)
	return err
}

func (r *Repo) DailyBreakdown(ctx context.Context, symbol string, from, to time.Time) ([]port.DailyBars, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date(ts_ms / 1000, 'unixepoch') AS day,
		       COUNT(*) AS bars,
		       MIN(ts_ms) AS first_ms,
		       MAX(ts_ms) AS last_ms
		FROM minute_bars
		WHERE symbol = ? AND ts_ms >= ? AND ts_ms < ?
		GROUP BY day
		ORDER BY day
	`, symbol, from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []port.DailyBars
	for rows.Next() {
		var day string
		var bars, firstMs, lastMs int64
		if err := rows.Scan(&day, &bars, &firstMs, &lastMs); err != nil {
			return nil, err
		}
		d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, err
		}
		out = append(out, port.DailyBars{
			Day:   d,
			Bars:  bars,
			First: time.UnixMilli(firstMs).UTC(),
			Last:  time.UnixMilli(lastMs).UTC(),
		})
	}
	return out, rows.Err()
}

var _ port.BarRepository = (*Repo)(nil)
