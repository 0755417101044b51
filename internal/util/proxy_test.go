package util

import (
	"net/http"
	"net/url"
	"testing"
)

func request(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Request{URL: u}
}

func TestNewProxyFuncExplicit(t *testing.T) {
	f := NewProxyFunc("http://proxy-a:8080", "http://proxy-b:8443")

	p, err := f(request(t, "http://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Host != "proxy-a:8080" {
		t.Errorf("expected proxy-a for http, got %v", p)
	}

	p, err = f(request(t, "https://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Host != "proxy-b:8443" {
		t.Errorf("expected proxy-b for https, got %v", p)
	}
}

func TestNewProxyFuncHTTPFallback(t *testing.T) {
	// Only the http proxy set: https requests fall through to it
	f := NewProxyFunc("http://proxy-a:8080", "")
	p, err := f(request(t, "https://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Host != "proxy-a:8080" {
		t.Errorf("expected proxy-a fallback, got %v", p)
	}
}
