package report

import (
	"fmt"
	"strings"

	"barops/internal/application/port"
)

const (
	dayFormat = "2006-01-02"
	tsFormat  = "2006-01-02 15:04:05"
)

type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Render produces the fixed-width table: one row per calendar day holding at
// least one bar, then a grand total. An empty breakdown renders no day rows
// and a total of 0.
func (f *Formatter) Render(q Query, days []port.DailyBars) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("bars for %s, %s to %s\n",
		q.Symbol, q.From.Format(dayFormat), q.To.Format(dayFormat)))
	sb.WriteString(fmt.Sprintf("%-12s %8s  %-19s  %-19s\n", "DATE", "BARS", "FIRST", "LAST"))

	var total int64
	for _, d := range days {
		total += d.Bars
		sb.WriteString(fmt.Sprintf("%-12s %8d  %-19s  %-19s\n",
			d.Day.Format(dayFormat),
			d.Bars,
			d.First.UTC().Format(tsFormat),
			d.Last.UTC().Format(tsFormat)))
	}

	sb.WriteString(fmt.Sprintf("TOTAL %d bars\n", total))
	return sb.String()
}
