package singleton

import (
	"maps"
	"sync"
	"time"
)

// AppSettings is the process-wide configuration object used by the demo.
// Counters are safe for concurrent use.
type AppSettings struct {
	Name      string
	Version   string
	CreatedAt time.Time

	counters map[string]int
	mu       sync.Mutex
}

var settings = NewLazy(func() *AppSettings {
	return &AppSettings{
		Name:      "patterns",
		Version:   "1.0.0",
		CreatedAt: time.Now(),
		counters:  make(map[string]int),
	}
})

// Settings returns the single AppSettings instance.
func Settings() *AppSettings {
	return settings.Get()
}

// Increment bumps a named counter and returns its new value.
func (s *AppSettings) Increment(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[name]++
	return s.counters[name]
}

// Counters returns a copy of all counters.
func (s *AppSettings) Counters() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.counters)
}
