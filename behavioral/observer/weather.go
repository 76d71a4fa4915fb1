package observer

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"time"
)

// Reading is one weather measurement.
type Reading struct {
	Temperature float64
	Humidity    float64
	At          time.Time
}

// WeatherStation is the concrete subject of the demo.
type WeatherStation struct {
	Subject[Reading]
	last Reading
}

// Measure records a reading and notifies every display.
func (ws *WeatherStation) Measure(ctx context.Context, r Reading) error {
	ws.last = r
	return ws.Notify(ctx, r)
}

// Last returns the most recent reading.
func (ws *WeatherStation) Last() Reading {
	return ws.last
}

// CurrentDisplay prints each reading as it arrives.
type CurrentDisplay struct {
	Out io.Writer
}

func (d CurrentDisplay) Update(_ context.Context, r Reading) error {
	_, err := fmt.Fprintf(d.Out, "current: %.1f°C %.0f%% humidity\n", r.Temperature, r.Humidity)
	return err
}

// StatsDisplay keeps running min/max/average temperatures.
type StatsDisplay struct {
	min, max, sum float64
	count         int
	mu            sync.Mutex
}

// NewStatsDisplay creates an empty StatsDisplay.
func NewStatsDisplay() *StatsDisplay {
	return &StatsDisplay{min: math.Inf(1), max: math.Inf(-1)}
}

func (d *StatsDisplay) Update(_ context.Context, r Reading) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.min = math.Min(d.min, r.Temperature)
	d.max = math.Max(d.max, r.Temperature)
	d.sum += r.Temperature
	d.count++
	return nil
}

// Stats returns min, max and average; all zero before the first reading.
func (d *StatsDisplay) Stats() (minimum, maximum, avg float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.count == 0 {
		return 0, 0, 0
	}
	return d.min, d.max, d.sum / float64(d.count)
}
