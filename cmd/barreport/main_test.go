package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"barops/internal/application/port"
	"barops/internal/infrastructure/config"
)

type countingRepo struct {
	closes   int
	queryErr error
	pingErr  error
}

func (r *countingRepo) DailyBreakdown(ctx context.Context, symbol string, from, to time.Time) ([]port.DailyBars, error) {
	return nil, r.queryErr
}

func (r *countingRepo) Ping(ctx context.Context) error { return r.pingErr }

func (r *countingRepo) Close() error {
	r.closes++
	return nil
}

type discardSink struct{}

func (discardSink) WriteReport(generated time.Time, body string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			Symbol: "BTCUSDT",
			From:   "2025-01-01",
			To:     "2025-02-01",
		},
	}
}

func TestRunClosesRepoOnceOnQueryFailure(t *testing.T) {
	wantErr := errors.New("relation does not exist")
	repo := &countingRepo{queryErr: wantErr}
	open := func(config.Database) (port.BarRepository, error) { return repo, nil }

	err := run(context.Background(), testConfig(), open, discardSink{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected query error to propagate, got %v", err)
	}
	if repo.closes != 1 {
		t.Errorf("expected repo closed exactly once, got %d", repo.closes)
	}
}

func TestRunClosesRepoOnceOnPingFailure(t *testing.T) {
	repo := &countingRepo{pingErr: errors.New("connection refused")}
	open := func(config.Database) (port.BarRepository, error) { return repo, nil }

	err := run(context.Background(), testConfig(), open, discardSink{})
	if err == nil {
		t.Fatal("expected ping error")
	}
	if repo.closes != 1 {
		t.Errorf("expected repo closed exactly once, got %d", repo.closes)
	}
}

func TestRunClosesRepoOnceOnSuccess(t *testing.T) {
	repo := &countingRepo{}
	open := func(config.Database) (port.BarRepository, error) { return repo, nil }

	if err := run(context.Background(), testConfig(), open, discardSink{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if repo.closes != 1 {
		t.Errorf("expected repo closed exactly once, got %d", repo.closes)
	}
}

func TestRunOpenFailureOpensNothing(t *testing.T) {
	wantErr := errors.New("unknown database driver")
	open := func(config.Database) (port.BarRepository, error) { return nil, wantErr }

	err := run(context.Background(), testConfig(), open, discardSink{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected open error to propagate, got %v", err)
	}
}
