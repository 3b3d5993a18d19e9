package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"barops/internal/application/port"
	"barops/internal/application/usecase/report"
	"barops/internal/infrastructure/config"
	"barops/internal/infrastructure/logger"
	"barops/internal/infrastructure/storage"
	"barops/internal/interfaces/console"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "configs/config.toml", "path to config.toml")
	symbol := flag.String("symbol", "", "override report.symbol")
	from := flag.String("from", "", "override report.from (YYYY-MM-DD, inclusive)")
	to := flag.String("to", "", "override report.to (YYYY-MM-DD, exclusive)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger.Setup(*debug)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("load config failed")
	}
	if *symbol != "" {
		cfg.Report.Symbol = *symbol
	}
	if *from != "" {
		cfg.Report.From = *from
	}
	if *to != "" {
		cfg.Report.To = *to
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, storage.Open, console.NewSink()); err != nil {
		log.Fatal().Err(err).Msg("bar report failed")
	}
}

type repoOpener func(config.Database) (port.BarRepository, error)

// run scopes the repository handle: Close runs exactly once on every exit
// path, including query failure.
func run(ctx context.Context, cfg *config.Config, open repoOpener, sink port.Sink) error {
	q, err := buildQuery(cfg.Report)
	if err != nil {
		return err
	}

	repo, err := open(cfg.Database)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Ping(ctx); err != nil {
		return err
	}

	log.Info().
		Str("driver", cfg.Database.Driver).
		Str("symbol", q.Symbol).
		Str("from", cfg.Report.From).
		Str("to", cfg.Report.To).
		Msg("bar report started")

	svc := report.NewService(report.ServiceDeps{
		Repo: repo,
		Sink: sink,
	})
	return svc.Run(ctx, q)
}

func buildQuery(r config.Report) (report.Query, error) {
	from, err := config.ParseDay(r.From)
	if err != nil {
		return report.Query{}, err
	}
	to, err := config.ParseDay(r.To)
	if err != nil {
		return report.Query{}, err
	}
	return report.Query{Symbol: r.Symbol, From: from, To: to}, nil
}
