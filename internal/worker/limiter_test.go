package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiterFileSourcesPassThrough(t *testing.T) {
	l := NewLimiter(0.0001, 1) // effectively frozen for URLs
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "data/collection.json"); err != nil {
		t.Fatalf("file source should not be limited: %v", err)
	}
	if !l.Allow("/abs/path.jsonl") {
		t.Error("file source should always be allowed")
	}
}

func TestLimiterThrottlesPerHost(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://a.example.com/items.json") {
		t.Fatal("first request to host should be admitted")
	}
	if l.Allow("https://a.example.com/more.json") {
		t.Error("second immediate request to same host should be throttled")
	}
	// Different host has its own bucket
	if !l.Allow("https://b.example.com/items.json") {
		t.Error("first request to a different host should be admitted")
	}
}

func TestLimiterWaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	if !l.Allow("https://slow.example.com/a") {
		t.Fatal("burst token should admit first request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "https://slow.example.com/b"); err == nil {
		t.Error("expected context deadline error while waiting")
	}
}

func TestLimiterSetHostRate(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.SetHostRate("fast.example.com", 1000, 10)

	for i := 0; i < 5; i++ {
		if !l.Allow("https://fast.example.com/x") {
			t.Fatalf("request %d to overridden host should be admitted", i)
		}
	}
}
