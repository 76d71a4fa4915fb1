package template_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/patterns/behavioral/template"
	"github.com/tailored-agentic-units/patterns/observability"
)

func TestMine_Formats(t *testing.T) {
	want := template.Report{Parsed: 2, Count: 2, Sum: 30, Average: 15, Max: template.Record{Name: "b", Amount: 20}}

	tests := []struct {
		name  string
		miner template.Miner
	}{
		{"csv", template.NewCSVMiner(template.FromString("name,amount\na,10\nb,20\n"))},
		{"csv without header", template.NewCSVMiner(template.FromString("a, 10\nb, 20\n"))},
		{"json", template.NewJSONMiner(template.FromString(`[{"name":"a","amount":10},{"name":"b","amount":20}]`))},
		{"yaml", template.NewYAMLMiner(template.FromString("- name: a\n  amount: 10\n- name: b\n  amount: 20\n"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := template.Mine(context.Background(), tt.miner, nil)
			if err != nil {
				t.Fatalf("Mine() error = %v", err)
			}
			want.Source = tt.miner.Name()
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMine_FilterHook(t *testing.T) {
	m := template.WithFilter(
		template.NewJSONMiner(template.FromString(`[{"name":"a","amount":1},{"name":"b","amount":50},{"name":"c","amount":70}]`)),
		func(r template.Record) bool { return r.Amount > 10 },
	)

	got, err := template.Mine(context.Background(), m, nil)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if got.Parsed != 3 || got.Count != 2 || got.Sum != 120 {
		t.Errorf("Report = %+v, want parsed=3 count=2 sum=120", got)
	}
}

func TestMine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		miner   template.Miner
		wantErr error
	}{
		{"malformed csv", template.NewCSVMiner(template.FromString("a,1\nb,two\n")), template.ErrMalformed},
		{"ragged csv", template.NewCSVMiner(template.FromString("a,1\nb\n")), template.ErrMalformed},
		{"malformed json", template.NewJSONMiner(template.FromString(`{"name":"a"}`)), template.ErrMalformed},
		{"malformed yaml", template.NewYAMLMiner(template.FromString("name: [")), template.ErrMalformed},
		{"empty", template.NewJSONMiner(template.FromString(`[]`)), template.ErrNoRecords},
		{"filtered out", template.WithFilter(
			template.NewJSONMiner(template.FromString(`[{"name":"a","amount":1}]`)),
			func(template.Record) bool { return false },
		), template.ErrNoRecords},
		{"missing file", template.NewCSVMiner(template.FromFile("/does/not/exist.csv")), os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := template.Mine(context.Background(), tt.miner, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Mine() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type trackingCloser struct {
	io.Reader
	closed   int
	closeErr error
}

func (c *trackingCloser) Close() error {
	c.closed++
	return c.closeErr
}

func TestMine_AlwaysCloses(t *testing.T) {
	closeErr := errors.New("disk gone")
	tc := &trackingCloser{Reader: strings.NewReader("not,numbers\nx,y\n"), closeErr: closeErr}
	m := template.NewCSVMiner(func() (io.ReadCloser, error) { return tc, nil })

	_, err := template.Mine(context.Background(), m, nil)
	if tc.closed != 1 {
		t.Errorf("Close() called %d times, want 1", tc.closed)
	}
	if !errors.Is(err, template.ErrMalformed) || !errors.Is(err, closeErr) {
		t.Errorf("error = %v, want both parse and close errors", err)
	}
}

func TestMine_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.yaml")
	if err := os.WriteFile(path, []byte("- name: rent\n  amount: 1200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := observability.NewRecorder()
	got, err := template.Mine(context.Background(), template.NewYAMLMiner(template.FromFile(path)), rec)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if got.Max.Name != "rent" || got.Sum != 1200 {
		t.Errorf("Report = %+v", got)
	}
	if rec.Count(template.EventMined) != 1 {
		t.Errorf("mined events = %d, want 1", rec.Count(template.EventMined))
	}
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := template.Demo(context.Background(), &buf, nil); err != nil {
		t.Fatalf("Demo() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"csv: 3/3 records", "csv: 2/3 records", "yaml: 3/3", "malformed document"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
