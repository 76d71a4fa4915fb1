package proxy

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Content is a fetched document.
type Content struct {
	Path string
	Body []byte
}

// Origin is the subject shared by real origins and their proxies.
type Origin interface {
	Fetch(ctx context.Context, path string) (Content, error)
}

// OriginServer is an in-memory origin that counts how often it is asked
// for content.
type OriginServer struct {
	content map[string][]byte
	fetches atomic.Int64
	mu      sync.RWMutex
}

func NewOriginServer() *OriginServer {
	return &OriginServer{content: make(map[string][]byte)}
}

// Publish stores or replaces the body at path.
func (o *OriginServer) Publish(path string, body []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.content[path] = slices.Clone(body)
	return nil
}

// Unpublish removes path; later fetches return ErrNotFound.
func (o *OriginServer) Unpublish(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.content, path)
}

func (o *OriginServer) Fetch(ctx context.Context, path string) (Content, error) {
	if err := ctx.Err(); err != nil {
		return Content{}, err
	}
	o.fetches.Add(1)

	o.mu.RLock()
	defer o.mu.RUnlock()

	body, ok := o.content[path]
	if !ok {
		return Content{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return Content{Path: path, Body: slices.Clone(body)}, nil
}

// Fetches reports how many Fetch calls reached the origin.
func (o *OriginServer) Fetches() int64 {
	return o.fetches.Load()
}
