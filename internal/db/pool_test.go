package db

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNewPool_InvalidURLFailsWithoutRetry(t *testing.T) {
	start := time.Now()

	_, err := NewPool(context.Background(), "not-a-postgres-url://%%%")
	if err == nil {
		t.Fatal("expected error for malformed URL")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error %q should name DATABASE_URL", err)
	}
	// Parse failures must not enter the connect retry loop.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("malformed URL took %s, want immediate failure", elapsed)
	}
}

func TestNewPool_CancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := NewPool(ctx, "postgres://user:pw@127.0.0.1:1/db?connect_timeout=1")
	if err == nil {
		t.Fatal("expected error with cancelled context")
	}
	// One failed attempt is fine; waiting out the full backoff schedule is not.
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cancelled context took %s, want prompt exit", elapsed)
	}
}
