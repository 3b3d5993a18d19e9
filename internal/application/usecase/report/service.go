package report

import (
	"context"
	"time"

	"barops/internal/application/port"

	"github.com/rs/zerolog/log"
)

// Query bounds the breakdown: From inclusive, To exclusive.
type Query struct {
	Symbol string
	From   time.Time
	To     time.Time
}

type ServiceDeps struct {
	Repo port.BarRepository
	Sink port.Sink
}

type Service struct {
	deps ServiceDeps
	fmt  *Formatter
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		deps: deps,
		fmt:  NewFormatter(),
	}
}

// Run is one linear procedure: fetch the per-date breakdown, render it, write
// it to the sink. Errors propagate to the caller; there is no retry.
func (s *Service) Run(ctx context.Context, q Query) error {
	days, err := s.deps.Repo.DailyBreakdown(ctx, q.Symbol, q.From, q.To)
	if err != nil {
		return err
	}

	log.Debug().
		Str("symbol", q.Symbol).
		Int("days", len(days)).
		Msg("breakdown fetched")

	return s.deps.Sink.WriteReport(time.Now(), s.fmt.Render(q, days))
}
