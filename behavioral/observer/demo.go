package observer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventReading     observability.EventType = "observer.reading"
	EventUnsubscribe observability.EventType = "observer.unsubscribe"
)

// Demo feeds readings to a station with three displays, drops one display
// half way, and fans the final reading out concurrently.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer, concurrency int) error {
	var station WeatherStation
	stats := NewStatsDisplay()

	station.Subscribe(CurrentDisplay{Out: w})
	station.Subscribe(stats)
	unsubscribeAlert := station.Subscribe(ObserverFunc[Reading](func(_ context.Context, r Reading) error {
		if r.Temperature > 30 {
			fmt.Fprintf(w, "alert: heat warning at %.1f°C\n", r.Temperature)
		}
		return nil
	}))

	readings := []Reading{
		{Temperature: 21.5, Humidity: 40},
		{Temperature: 31.2, Humidity: 35},
		{Temperature: 33.0, Humidity: 30},
		{Temperature: 19.8, Humidity: 55},
	}

	for i, r := range readings {
		r.At = time.Now()
		if i == 2 {
			unsubscribeAlert()
			fmt.Fprintln(w, "alert display unsubscribed")
			observability.Emit(ctx, obs, EventUnsubscribe, observability.LevelInfo, "observer.WeatherStation",
				map[string]any{"observers": station.Len()})
		}
		if err := station.Measure(ctx, r); err != nil {
			return err
		}
		observability.Emit(ctx, obs, EventReading, observability.LevelVerbose, "observer.WeatherStation",
			map[string]any{"temperature": r.Temperature, "observers": station.Len()})
	}

	if err := station.NotifyConcurrent(ctx, station.Last(), concurrency); err != nil {
		return err
	}

	lo, hi, avg := stats.Stats()
	fmt.Fprintf(w, "stats: min %.1f max %.1f avg %.2f\n", lo, hi, avg)
	return nil
}
