package memento

import "fmt"

// Config selects the History implementation.
type Config struct {
	Store string `json:"store,omitempty" yaml:"store,omitempty"` // "memory", "bolt" or "file"
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`   // bolt database file or snapshot directory
}

// DefaultConfig keeps history in memory.
func DefaultConfig() Config {
	return Config{Store: "memory"}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Store != "" {
		c.Store = source.Store
	}
	if source.Path != "" {
		c.Path = source.Path
	}
}

// NewHistory creates the History named by cfg.Store.
func NewHistory(cfg *Config) (History, error) {
	switch cfg.Store {
	case "", "memory":
		return NewMemoryHistory(), nil
	case "bolt":
		if cfg.Path == "" {
			return nil, fmt.Errorf("bolt history requires a path")
		}
		h, err := OpenBoltHistory(cfg.Path)
		if err != nil {
			return nil, err
		}
		return h, nil
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("file history requires a path")
		}
		h, err := OpenFileHistory(cfg.Path)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStore, cfg.Store)
	}
}
