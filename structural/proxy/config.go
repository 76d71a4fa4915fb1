package proxy

import (
	"fmt"
	"time"
)

const (
	defaultTTL      = 30 * time.Second
	defaultCapacity = 64
)

// Config holds caching proxy settings. TTL uses time.ParseDuration syntax
// ("30s", "5m").
type Config struct {
	TTL      string `json:"ttl,omitempty" yaml:"ttl,omitempty"`
	Capacity int    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		TTL:      defaultTTL.String(),
		Capacity: defaultCapacity,
	}
}

func (c *Config) Merge(source *Config) {
	if source.TTL != "" {
		c.TTL = source.TTL
	}
	if source.Capacity > 0 {
		c.Capacity = source.Capacity
	}
}

// Options converts the config into CachingProxy options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option

	if c.TTL != "" {
		ttl, err := time.ParseDuration(c.TTL)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTTL, c.TTL)
		}
		opts = append(opts, WithTTL(ttl))
	}

	if c.Capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, c.Capacity)
	}
	if c.Capacity > 0 {
		opts = append(opts, WithCapacity(c.Capacity))
	}
	return opts, nil
}
