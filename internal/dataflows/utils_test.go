package dataflows

import (
	"errors"
	"testing"
	"time"
)

func TestCacheManagerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache := NewCacheManager(dir, time.Hour, true)

	want := []EarningsRecord{{Date: time.Date(2025, 2, 6, 0, 0, 0, 0, time.UTC)}}
	if err := cache.Set("finnhub", "earnings_history", "AAPL", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []EarningsRecord
	if !cache.Get("finnhub", "earnings_history", "AAPL", &got) {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || !got[0].Date.Equal(want[0].Date) {
		t.Errorf("cache returned %+v, want %+v", got, want)
	}
}

func TestCacheManagerDisabled(t *testing.T) {
	cache := NewCacheManager(t.TempDir(), time.Hour, false)

	if err := cache.Set("yahoo", "quote", "AAPL", "data"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got string
	if cache.Get("yahoo", "quote", "AAPL", &got) {
		t.Error("disabled cache should never hit")
	}
}

func TestCacheManagerExpiry(t *testing.T) {
	cache := NewCacheManager(t.TempDir(), time.Millisecond, true)

	if err := cache.Set("yahoo", "quote", "AAPL", "data"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var got string
	if cache.Get("yahoo", "quote", "AAPL", &got) {
		t.Error("expected expired entry to miss")
	}
}

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	cfg := &RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}

	calls := 0
	err := WithRetry(cfg, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithRetry: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWithRetryExhausted(t *testing.T) {
	cfg := &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}

	sentinel := errors.New("down")
	err := WithRetry(cfg, func() error { return sentinel })
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
}

func TestValidateSymbol(t *testing.T) {
	if err := ValidateSymbol("AAPL"); err != nil {
		t.Errorf("ValidateSymbol(AAPL): %v", err)
	}
	if err := ValidateSymbol(""); err == nil {
		t.Error("expected error for empty symbol")
	}
	if err := ValidateSymbol("WAYTOOLONGTICKER"); err == nil {
		t.Error("expected error for oversized symbol")
	}
}

func TestNormalizeSymbol(t *testing.T) {
	if got := NormalizeSymbol("  aapl "); got != "AAPL" {
		t.Errorf("NormalizeSymbol = %q, want AAPL", got)
	}
}
