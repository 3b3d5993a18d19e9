package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"barops/internal/application/usecase/launch"
	"barops/internal/infrastructure/config"
	"barops/internal/infrastructure/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	configPath := fs.String("config", "configs/config.toml", "path to config.toml")
	debug := fs.Bool("debug", false, "debug logging")

	// launcher flags come first; everything else (dashed or not) belongs to
	// the dashboard and passes through untouched
	launcherArgs, passthrough := splitArgs(os.Args[1:])
	_ = fs.Parse(launcherArgs)

	logger.Setup(*debug)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("load config failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := launch.New(launch.Options{
		Runner:     cfg.Dashboard.Runner,
		RunnerArgs: cfg.Dashboard.RunnerArgs,
		Entry:      cfg.Dashboard.Entry,
	})

	err = l.Run(ctx, passthrough)
	if err != nil && !launch.IsExit(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(launch.ExitCode(err))
}

// splitArgs separates the launcher's own flags (-config, -debug) from the
// dashboard passthrough. The first token that is not a launcher flag ends the
// launcher portion; a literal "--" does the same explicitly.
func splitArgs(args []string) (launcher, passthrough []string) {
	i := 0
	for i < len(args) {
		a := args[i]
		switch {
		case a == "--":
			return launcher, args[i+1:]
		case a == "-config" || a == "--config":
			launcher = append(launcher, a)
			if i+1 < len(args) {
				launcher = append(launcher, args[i+1])
				i++
			}
		case strings.HasPrefix(a, "-config=") || strings.HasPrefix(a, "--config="):
			launcher = append(launcher, a)
		case a == "-debug" || a == "--debug" ||
			strings.HasPrefix(a, "-debug=") || strings.HasPrefix(a, "--debug="):
			launcher = append(launcher, a)
		default:
			return launcher, args[i:]
		}
		i++
	}
	return launcher, nil
}
