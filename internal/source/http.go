package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/textsieve/textsieve/internal/cache"
	"github.com/textsieve/textsieve/internal/model"
	"github.com/textsieve/textsieve/internal/util"
)

// IsURL reports whether src names an HTTP(S) endpoint rather than a file
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Loader retrieves JSON collections over HTTP(S), honoring robots.txt and
// caching response bodies so repeated batch entries do not refetch.
type Loader struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	robots    *util.RobotsChecker // nil = robots.txt not consulted
	cache     cache.Cache         // nil = caching disabled
	cacheTTL  time.Duration
}

// NewLoader builds a loader from the HTTP and cache configuration
func NewLoader(httpCfg model.HTTPConfig, cacheCfg model.CacheConfig) *Loader {
	l := &Loader{
		client: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: httpCfg.UserAgent,
		maxBytes:  httpCfg.MaxBodyBytes,
	}
	if httpCfg.RespectRobots {
		l.robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}
	if cacheCfg.Enabled {
		l.cache = cache.NewMemory(cacheCfg.TTL, 10*time.Minute)
		l.cacheTTL = cacheCfg.TTL
	}
	return l
}

// Load fetches and parses a collection from the given URL.
// Any failure here is fatal to the run: the pipeline never starts on a
// partial or unparsable collection.
func (l *Loader) Load(ctx context.Context, rawURL string, maxItems int) ([]model.InputItem, error) {
	body, err := l.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	items, err := ParseCollection(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return Truncate(items, maxItems), nil
}

func (l *Loader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.Key(rawURL)
	if l.cache != nil {
		if body, found := l.cache.Get(key); found {
			return body, nil
		}
	}

	if l.robots != nil {
		allowed, err := l.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("fetch of %s disallowed by robots.txt", rawURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/json, application/x-ndjson;q=0.9, */*;q=0.8")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch collection: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status fetching %s: %d %s", rawURL, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if l.cache != nil {
		_ = l.cache.Set(key, body, l.cacheTTL)
	}
	return body, nil
}
