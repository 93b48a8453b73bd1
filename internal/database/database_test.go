// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/cinerank/internal/config"
)

// testDBSemaphore serializes DuckDB tests. Concurrent CGO calls from many
// parallel tests can hang under CI resource pressure, so each test holds the
// slot for its whole lifetime.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an in-memory database with timeout protection.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "512MB",
	}

	type result struct {
		db  *DB
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		db, err := New(cfg)
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func setupSeededDB(t *testing.T) *DB {
	t.Helper()
	db := setupTestDB(t)
	if err := db.SeedSampleData(context.Background()); err != nil {
		t.Fatalf("SeedSampleData() error = %v", err)
	}
	return db
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) error = nil, want error")
	}
}

func TestNew_CreatesParentDirectory(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &config.DatabaseConfig{
		Path:      filepath.Join(dir, "cinerank.duckdb"),
		MaxMemory: "256MB",
		Threads:   1,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("database directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	cfg := &config.DatabaseConfig{
		Path:      filepath.Join(t.TempDir(), "cinerank.duckdb"),
		MaxMemory: "256MB",
		Threads:   1,
	}
	ctx := context.Background()

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.SeedSampleData(ctx); err != nil {
		t.Fatalf("SeedSampleData() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = New(cfg)
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	n, err := db.countRatings(ctx)
	if err != nil {
		t.Fatalf("countRatings() error = %v", err)
	}
	if n != len(sampleRatings) {
		t.Errorf("countRatings() after reopen = %d, want %d", n, len(sampleRatings))
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestPing_NilConnection(t *testing.T) {
	db := &DB{}
	if err := db.Ping(context.Background()); err == nil {
		t.Error("Ping() on nil connection error = nil, want error")
	}
}

func TestClose_NilConnection(t *testing.T) {
	db := &DB{}
	if err := db.Close(); err != nil {
		t.Errorf("Close() on nil connection error = %v, want nil", err)
	}
}

func TestSchema_RejectsOutOfRangeRating(t *testing.T) {
	db := setupSeededDB(t)

	_, err := db.conn.ExecContext(context.Background(),
		`INSERT INTO ratings (movie_id, user_id, rating, date) VALUES (10, 1, 6, DATE '2024-06-01')`)
	if err == nil {
		t.Error("inserting rating 6 succeeded, want CHECK constraint error")
	}
}
