package port

import (
	"context"
	"time"
)

// DailyBars is one row of the per-date breakdown: how many minute bars a
// calendar day holds and the timestamps of its first and last bar.
type DailyBars struct {
	Day   time.Time
	Bars  int64
	First time.Time
	Last  time.Time
}

// BarRepository reads the externally-owned table of per-minute price bars.
type BarRepository interface {
	// DailyBreakdown groups bars for symbol in [from, to) by calendar date,
	// ordered by date ascending. Days without bars produce no row.
	DailyBreakdown(ctx context.Context, symbol string, from, to time.Time) ([]DailyBars, error)

	// Ping verifies the connection is usable.
	Ping(ctx context.Context) error

	// Connection management
	Close() error
}
