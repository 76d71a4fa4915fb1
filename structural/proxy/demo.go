package proxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/tailored-agentic-units/patterns/observability"
)

// DemoOrigin returns an origin preloaded with the demo's documents.
func DemoOrigin() *OriginServer {
	origin := NewOriginServer()
	for path, body := range map[string]string{
		"/index.html": "<h1>welcome</h1>",
		"/app.js":     "console.log('hi')",
		"/style.css":  "body { margin: 0 }",
	} {
		_ = origin.Publish(path, []byte(body))
	}
	return origin
}

// Demo fronts an origin served over connect RPC with a caching proxy and
// shows hits, misses, eviction and purge. cfg may be nil.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer, cfg *Config) error {
	settings := DefaultConfig()
	settings.Capacity = 2
	if cfg != nil {
		settings.Merge(cfg)
	}
	opts, err := settings.Options()
	if err != nil {
		return err
	}

	origin := DemoOrigin()
	mux := http.NewServeMux()
	mux.Handle(NewOriginHandler(origin))
	server := httptest.NewServer(mux)
	defer server.Close()

	remote := NewRemoteOrigin(server.Client(), server.URL)
	edge := NewCachingProxy(remote, append(opts, WithObserver(obs))...)

	requests := []string{"/index.html", "/index.html", "/app.js", "/style.css", "/index.html", "/missing.png"}
	for _, path := range requests {
		c, err := edge.Fetch(ctx, path)
		if err != nil {
			fmt.Fprintf(w, "GET %-12s error: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "GET %-12s %d bytes\n", path, len(c.Body))
	}

	if edge.Purge(ctx, "/style.css") {
		fmt.Fprintln(w, "purged /style.css")
	}

	s := edge.Stats()
	fmt.Fprintf(w, "hits=%d misses=%d evictions=%d entries=%d origin fetches=%d\n",
		s.Hits, s.Misses, s.Evictions, s.Entries, origin.Fetches())
	return nil
}
