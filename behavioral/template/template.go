package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventMined  observability.EventType = "template.mined"
	EventFailed observability.EventType = "template.failed"
)

type Record struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// Miner supplies the variable steps of Mine.
type Miner interface {
	Name() string
	Open(ctx context.Context) error
	Extract(ctx context.Context) ([]byte, error)
	Parse(raw []byte) ([]Record, error)
	Close() error
}

// Filterer is the optional hook: records for which Filter returns false are
// dropped before analysis.
type Filterer interface {
	Filter(r Record) bool
}

type Report struct {
	Source  string
	Parsed  int
	Count   int
	Sum     float64
	Average float64
	Max     Record
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d/%d records, sum %.2f, avg %.2f, max %s (%.2f)",
		r.Source, r.Count, r.Parsed, r.Sum, r.Average, r.Max.Name, r.Max.Amount)
}

// Mine runs the fixed algorithm against m. Close is always called once Open
// has succeeded, and its error is joined with any earlier one.
func Mine(ctx context.Context, m Miner, obs observability.Observer) (report Report, err error) {
	defer func() {
		if err != nil {
			observability.Emit(ctx, obs, EventFailed, observability.LevelWarning, "template.Mine",
				map[string]any{"miner": m.Name(), "error": err.Error()})
		}
	}()

	if err := m.Open(ctx); err != nil {
		return Report{}, fmt.Errorf("open %s: %w", m.Name(), err)
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", m.Name(), cerr))
		}
	}()

	raw, err := m.Extract(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("extract %s: %w", m.Name(), err)
	}

	records, err := m.Parse(raw)
	if err != nil {
		return Report{}, fmt.Errorf("parse %s: %w", m.Name(), err)
	}
	parsed := len(records)

	if f, ok := m.(Filterer); ok {
		kept := records[:0]
		for _, r := range records {
			if f.Filter(r) {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	report, err = analyze(m.Name(), records)
	if err != nil {
		return Report{}, err
	}
	report.Parsed = parsed

	observability.Emit(ctx, obs, EventMined, observability.LevelInfo, "template.Mine",
		map[string]any{"miner": m.Name(), "records": report.Count, "sum": report.Sum})
	return report, nil
}

func analyze(source string, records []Record) (Report, error) {
	if len(records) == 0 {
		return Report{}, fmt.Errorf("%w: %s", ErrNoRecords, source)
	}

	report := Report{Source: source, Count: len(records), Max: records[0]}
	for _, r := range records {
		report.Sum += r.Amount
		if r.Amount > report.Max.Amount {
			report.Max = r
		}
	}
	report.Average = report.Sum / float64(report.Count)
	return report, nil
}

type filtered struct {
	Miner
	keep func(Record) bool
}

func (f filtered) Filter(r Record) bool { return f.keep(r) }

// WithFilter adds the Filter hook to any miner.
func WithFilter(m Miner, keep func(Record) bool) Miner {
	return filtered{Miner: m, keep: keep}
}
