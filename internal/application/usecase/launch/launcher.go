package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Runner     string   // dashboard runner binary, e.g. "streamlit"
	RunnerArgs []string // runner subcommand/flags, e.g. ["run"]
	Entry      string   // dashboard entry-point file
}

type Launcher struct {
	opts Options
}

func New(opts Options) *Launcher {
	return &Launcher{opts: opts}
}

// Resolve returns the absolute path of the dashboard entry file, or an error
// naming the expected path when the file does not exist.
func Resolve(entry string) (string, error) {
	abs, err := filepath.Abs(entry)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("dashboard entry not found: %s", abs)
		}
		return "", err
	}
	return abs, nil
}

// BuildCommand assembles the child argv: runner args, then the resolved entry
// path, then caller passthrough args, in order and unmodified.
func BuildCommand(runnerArgs []string, entry string, passthrough []string) []string {
	argv := make([]string, 0, len(runnerArgs)+1+len(passthrough))
	argv = append(argv, runnerArgs...)
	argv = append(argv, entry)
	argv = append(argv, passthrough...)
	return argv
}

// Run resolves the entry file and hands the terminal over to the dashboard
// child process. Stdio passes through; the child's error is returned as-is
// for the caller to turn into an exit status.
func (l *Launcher) Run(ctx context.Context, passthrough []string) error {
	entry, err := Resolve(l.opts.Entry)
	if err != nil {
		return err
	}

	argv := BuildCommand(l.opts.RunnerArgs, entry, passthrough)

	log.Info().
		Str("runner", l.opts.Runner).
		Strs("args", argv).
		Msg("starting dashboard")

	cmd := exec.CommandContext(ctx, l.opts.Runner, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// IsExit reports whether err is the child's own non-zero exit. The child has
// already written its diagnostics in that case, so the parent stays quiet.
func IsExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// ExitCode maps a Run error to the status the parent should exit with: the
// child's own code when it ran and failed, 0 on success, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
