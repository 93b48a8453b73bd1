// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinerank/internal/metrics"
)

// scriptedPinger returns errs in order, repeating the last one.
type scriptedPinger struct {
	mu    sync.Mutex
	errs  []error
	calls int
}

func (p *scriptedPinger) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.calls
	if i >= len(p.errs) {
		i = len(p.errs) - 1
	}
	p.calls++
	return p.errs[i]
}

func (p *scriptedPinger) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestDatabaseHealthService_Interface(t *testing.T) {
	var _ suture.Service = (*DatabaseHealthService)(nil)
}

func TestNewDatabaseHealthService_DefaultInterval(t *testing.T) {
	svc := NewDatabaseHealthService(&scriptedPinger{errs: []error{nil}}, 0, zerolog.Nop())
	if svc.interval != defaultHealthInterval {
		t.Errorf("interval = %v, want %v", svc.interval, defaultHealthInterval)
	}
	if svc.timeout != defaultHealthInterval/2 {
		t.Errorf("timeout = %v, want %v", svc.timeout, defaultHealthInterval/2)
	}
}

func TestDatabaseHealthService_Check(t *testing.T) {
	down := errors.New("connection refused")
	pinger := &scriptedPinger{errs: []error{nil, down, nil}}
	svc := NewDatabaseHealthService(pinger, time.Minute, zerolog.Nop())
	ctx := context.Background()

	if _, checked := svc.healthy(); checked {
		t.Error("healthy() checked = true before any ping")
	}

	steps := []struct {
		wantHealthy bool
		wantGauge   float64
	}{
		{true, 1},
		{false, 0},
		{true, 1},
	}
	for i, step := range steps {
		svc.check(ctx)
		healthy, checked := svc.healthy()
		if !checked || healthy != step.wantHealthy {
			t.Errorf("step %d: healthy() = (%v, %v), want (%v, true)", i, healthy, checked, step.wantHealthy)
		}
		if got := testutil.ToFloat64(metrics.DBUp); got != step.wantGauge {
			t.Errorf("step %d: duckdb_up = %v, want %v", i, got, step.wantGauge)
		}
	}
}

func TestDatabaseHealthService_Serve(t *testing.T) {
	pinger := &scriptedPinger{errs: []error{nil}}
	svc := NewDatabaseHealthService(pinger, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for pinger.Calls() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if pinger.Calls() < 3 {
		t.Errorf("Ping called %d times, want at least 3", pinger.Calls())
	}
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}
}
