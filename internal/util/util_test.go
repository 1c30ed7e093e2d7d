package util

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	attempts := 0
	targetAttempts := 3

	err := Retry(context.Background(), 5, 0, func() error {
		attempts++
		if attempts < targetAttempts {
			return errors.New("transient error")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Retry returned unexpected error: %v", err)
	}
	if attempts != targetAttempts {
		t.Errorf("Retry called fn %d times, want %d", attempts, targetAttempts)
	}
}

func TestRetryAllFail(t *testing.T) {
	attempts := 0
	maxAttempts := 3

	err := Retry(context.Background(), maxAttempts, 0, func() error {
		attempts++
		return errors.New("persistent error")
	})

	if err == nil {
		t.Fatal("Retry should return error when all attempts fail")
	}
	if attempts != maxAttempts {
		t.Errorf("Retry called fn %d times, want %d", attempts, maxAttempts)
	}
}

func TestRateLimiterNew(t *testing.T) {
	rl := NewRateLimiter(60)
	if rl == nil {
		t.Fatal("NewRateLimiter returned nil")
	}
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait should not block or fail: %v", err)
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info", "json")
	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("json format not applied: %q", buf.String())
	}

	buf.Reset()
	logger = NewLoggerTo(&buf, "warn", "text")
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be below warn level, got %q", buf.String())
	}
	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestIsMarketOpen(t *testing.T) {
	loc := shanghai()
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		// 2026-08-28 is a Friday, 2026-08-29 a Saturday.
		{"morning session", time.Date(2026, 8, 28, 10, 0, 0, 0, loc), true},
		{"lunch break", time.Date(2026, 8, 28, 12, 0, 0, 0, loc), false},
		{"afternoon session", time.Date(2026, 8, 28, 14, 30, 0, 0, loc), true},
		{"after close", time.Date(2026, 8, 28, 15, 0, 0, 0, loc), false},
		{"pre open", time.Date(2026, 8, 28, 9, 29, 0, 0, loc), false},
		{"open minute", time.Date(2026, 8, 28, 9, 30, 0, 0, loc), true},
		{"saturday", time.Date(2026, 8, 29, 10, 0, 0, 0, loc), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMarketOpen(tt.t); got != tt.want {
				t.Errorf("IsMarketOpen(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestNextOpen(t *testing.T) {
	loc := shanghai()

	// Friday after close rolls to Monday morning.
	friEvening := time.Date(2026, 8, 28, 16, 0, 0, 0, loc)
	next := NextOpen(friEvening)
	want := time.Date(2026, 8, 31, 9, 30, 0, 0, loc)
	if !next.Equal(want) {
		t.Errorf("NextOpen(%v) = %v, want %v", friEvening, next, want)
	}

	// Lunch break rolls to the afternoon session the same day.
	lunch := time.Date(2026, 8, 28, 12, 0, 0, 0, loc)
	next = NextOpen(lunch)
	want = time.Date(2026, 8, 28, 13, 0, 0, 0, loc)
	if !next.Equal(want) {
		t.Errorf("NextOpen(%v) = %v, want %v", lunch, next, want)
	}

	// Inside a session returns the input unchanged.
	open := time.Date(2026, 8, 28, 10, 0, 0, 0, loc)
	if got := NextOpen(open); !got.Equal(open) {
		t.Errorf("NextOpen(%v) = %v, want input", open, got)
	}
}
