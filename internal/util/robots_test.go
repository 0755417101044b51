package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsCheckerDisallow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewRobotsChecker("textsieve-test/0.1", 5*time.Second)
	ctx := context.Background()

	allowed, err := c.CanFetch(ctx, srv.URL+"/private/data.json")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Error("disallowed path should be blocked")
	}

	allowed, err = c.CanFetch(ctx, srv.URL+"/public/data.json")
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("path outside the disallow rule should be allowed")
	}
}

func TestRobotsCheckerMissingFileAllows(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewRobotsChecker("textsieve-test/0.1", 5*time.Second)
	allowed, err := c.CanFetch(context.Background(), srv.URL+"/anything")
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("missing robots.txt should allow everything")
	}
}

func TestRobotsCheckerCachesPerHost(t *testing.T) {
	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			atomic.AddInt32(&fetches, 1)
			_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
		}
	}))
	defer srv.Close()

	c := NewRobotsChecker("textsieve-test/0.1", 5*time.Second)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.CanFetch(ctx, srv.URL+"/page"); err != nil {
			t.Fatal(err)
		}
	}
	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("expected 1 robots.txt fetch, got %d", n)
	}

	c.Clear()
	if _, err := c.CanFetch(ctx, srv.URL+"/page"); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&fetches); n != 2 {
		t.Errorf("expected a refetch after Clear, got %d fetches", n)
	}
}

func TestRobotsCheckerUnreachableAllows(t *testing.T) {
	c := NewRobotsChecker("textsieve-test/0.1", 100*time.Millisecond)
	allowed, err := c.CanFetch(context.Background(), "http://127.0.0.1:1/x")
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("unreachable robots.txt should allow the fetch")
	}
}
