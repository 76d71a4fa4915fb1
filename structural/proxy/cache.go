package proxy

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventHit   observability.EventType = "proxy.hit"
	EventMiss  observability.EventType = "proxy.miss"
	EventEvict observability.EventType = "proxy.evict"
	EventPurge observability.EventType = "proxy.purge"
)

// Stats is a snapshot of cache activity.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
	Entries   int
}

type entry struct {
	content  Content
	storedAt time.Time
}

// Option configures a CachingProxy.
type Option func(*CachingProxy)

func WithTTL(ttl time.Duration) Option {
	return func(p *CachingProxy) { p.ttl = ttl }
}

func WithCapacity(n int) Option {
	return func(p *CachingProxy) { p.capacity = n }
}

func WithObserver(obs observability.Observer) Option {
	return func(p *CachingProxy) { p.observer = obs }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *CachingProxy) { p.now = now }
}

// CachingProxy serves fresh cached content and fetches everything else from
// the origin. When full, the entry stored longest ago is evicted. Errors are
// never cached. All methods are safe for concurrent use.
type CachingProxy struct {
	origin   Origin
	ttl      time.Duration
	capacity int
	observer observability.Observer
	now      func() time.Time

	entries map[string]entry
	stats   Stats
	mu      sync.Mutex
}

// NewCachingProxy wraps origin.
func NewCachingProxy(origin Origin, opts ...Option) *CachingProxy {
	p := &CachingProxy{
		origin:   origin,
		ttl:      defaultTTL,
		capacity: defaultCapacity,
		now:      time.Now,
		entries:  make(map[string]entry),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ttl <= 0 {
		p.ttl = defaultTTL
	}
	if p.capacity < 1 {
		p.capacity = 1
	}
	return p
}

// Fetch looks path up in the cache or fetches and stores it.
func (p *CachingProxy) Fetch(ctx context.Context, path string) (Content, error) {
	if path == "" {
		return Content{}, ErrEmptyPath
	}

	if c, ok := p.lookup(path); ok {
		observability.Emit(ctx, p.observer, EventHit, observability.LevelVerbose, "proxy.CachingProxy",
			map[string]any{"path": path})
		return c, nil
	}

	observability.Emit(ctx, p.observer, EventMiss, observability.LevelVerbose, "proxy.CachingProxy",
		map[string]any{"path": path})

	c, err := p.origin.Fetch(ctx, path)
	if err != nil {
		return Content{}, err
	}

	if evicted := p.store(path, c); evicted != "" {
		observability.Emit(ctx, p.observer, EventEvict, observability.LevelVerbose, "proxy.CachingProxy",
			map[string]any{"path": evicted})
	}
	return Content{Path: c.Path, Body: slices.Clone(c.Body)}, nil
}

func (p *CachingProxy) lookup(path string) (Content, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[path]
	if ok && p.now().Sub(e.storedAt) < p.ttl {
		p.stats.Hits++
		return Content{Path: e.content.Path, Body: slices.Clone(e.content.Body)}, true
	}
	if ok {
		delete(p.entries, path)
	}
	p.stats.Misses++
	return Content{}, false
}

// store saves c and returns the evicted path, if any.
func (p *CachingProxy) store(path string, c Content) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var evicted string
	if _, exists := p.entries[path]; !exists && len(p.entries) >= p.capacity {
		var oldest time.Time
		for key, e := range p.entries {
			if evicted == "" || e.storedAt.Before(oldest) {
				evicted, oldest = key, e.storedAt
			}
		}
		delete(p.entries, evicted)
		p.stats.Evictions++
	}

	p.entries[path] = entry{
		content:  Content{Path: c.Path, Body: slices.Clone(c.Body)},
		storedAt: p.now(),
	}
	return evicted
}

// Purge drops path from the cache and reports whether it was present.
func (p *CachingProxy) Purge(ctx context.Context, path string) bool {
	p.mu.Lock()
	_, ok := p.entries[path]
	delete(p.entries, path)
	p.mu.Unlock()

	if ok {
		observability.Emit(ctx, p.observer, EventPurge, observability.LevelInfo, "proxy.CachingProxy",
			map[string]any{"path": path})
	}
	return ok
}

func (p *CachingProxy) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats
	s.Entries = len(p.entries)
	return s
}
