package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/textsieve/textsieve/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "textsieve-test/0.1",
		MaxBodyBytes: 1_000_000,
	}
}

func TestLoaderLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "textsieve-test/0.1" {
			t.Errorf("unexpected user agent %q", ua)
		}
		_, _ = w.Write([]byte(`[{"text": "served item"}]`))
	}))
	defer srv.Close()

	l := NewLoader(testHTTPConfig(), model.CacheConfig{})
	items, err := l.Load(context.Background(), srv.URL+"/items.json", 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if text, _ := items[0].Text("text"); text != "served item" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestLoaderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	l := NewLoader(testHTTPConfig(), model.CacheConfig{})
	if _, err := l.Load(context.Background(), srv.URL, 0); err == nil {
		t.Error("expected error for non-2xx status")
	}
}

func TestLoaderCachesBody(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`[{"text": "cached"}]`))
	}))
	defer srv.Close()

	l := NewLoader(testHTTPConfig(), model.CacheConfig{Enabled: true, TTL: time.Minute})
	for i := 0; i < 3; i++ {
		if _, err := l.Load(context.Background(), srv.URL+"/c.json", 0); err != nil {
			t.Fatalf("Load %d: %v", i, err)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", n)
	}
}

func TestLoaderRespectsRobots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	mux.HandleFunc("/private/items.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"text": "should not be served"}]`))
	})
	mux.HandleFunc("/public/items.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"text": "public"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testHTTPConfig()
	cfg.RespectRobots = true
	l := NewLoader(cfg, model.CacheConfig{})

	if _, err := l.Load(context.Background(), srv.URL+"/private/items.json", 0); err == nil {
		t.Error("disallowed path should fail")
	}
	items, err := l.Load(context.Background(), srv.URL+"/public/items.json", 0)
	if err != nil {
		t.Fatalf("allowed path failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
}

func TestLoaderTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"text":"a"},{"text":"b"},{"text":"c"}]`))
	}))
	defer srv.Close()

	l := NewLoader(testHTTPConfig(), model.CacheConfig{})
	items, err := l.Load(context.Background(), srv.URL, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}
