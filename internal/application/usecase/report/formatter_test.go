package report

import (
	"strings"
	"testing"
	"time"

	"barops/internal/application/port"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

func TestRenderTotalsAndRows(t *testing.T) {
	f := NewFormatter()
	q := Query{Symbol: "BTCUSDT", From: mustDay(t, "2025-01-01"), To: mustDay(t, "2025-02-01")}
	days := []port.DailyBars{
		{Day: mustDay(t, "2025-01-02"), Bars: 390, First: mustDay(t, "2025-01-02").Add(570 * time.Minute), Last: mustDay(t, "2025-01-02").Add(960 * time.Minute)},
		{Day: mustDay(t, "2025-01-03"), Bars: 385, First: mustDay(t, "2025-01-03").Add(570 * time.Minute), Last: mustDay(t, "2025-01-03").Add(955 * time.Minute)},
	}

	out := f.Render(q, days)

	for _, want := range []string{
		"BTCUSDT",
		"2025-01-02",
		"390",
		"2025-01-03",
		"385",
		"2025-01-02 09:30:00",
		"2025-01-03 15:55:00",
		"TOTAL 775 bars",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}

	// title, header, one row per day, total
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
}

func TestRenderEmptyBreakdown(t *testing.T) {
	f := NewFormatter()
	q := Query{Symbol: "BTCUSDT", From: mustDay(t, "2025-01-01"), To: mustDay(t, "2025-02-01")}

	out := f.Render(q, nil)

	if !strings.Contains(out, "TOTAL 0 bars") {
		t.Errorf("expected zero total, got:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected no date rows, got %d lines:\n%s", len(lines), out)
	}
}
