package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/patterns/catalog"
	"github.com/tailored-agentic-units/patterns/observability"
)

func TestRunner_ContinuesPastFailures(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	record := func(name string, err error) func(context.Context, *catalog.Env) error {
		return func(ctx context.Context, env *catalog.Env) error {
			ran = append(ran, name)
			env.Printf("hello from %s\n", name)
			return err
		}
	}

	r := catalog.NewRegistry()
	for _, d := range []catalog.Demo{
		{Name: "a", Category: catalog.Creational, Run: record("a", nil)},
		{Name: "b", Category: catalog.Creational, Run: record("b", boom)},
		{Name: "c", Category: catalog.Creational, Run: record("c", nil)},
	} {
		if err := r.Register(d); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	rec := observability.NewRecorder()
	err := catalog.NewRunner(r, &catalog.Env{Out: &out, Observer: rec}).Run(context.Background())

	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "b: boom") {
		t.Errorf("error %q does not name the failing demo", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ran); diff != "" {
		t.Errorf("ran mismatch (-want +got):\n%s", diff)
	}

	want := []observability.EventType{
		catalog.EventDemoStart, catalog.EventDemoComplete,
		catalog.EventDemoStart, catalog.EventDemoError,
		catalog.EventDemoStart, catalog.EventDemoComplete,
	}
	if diff := cmp.Diff(want, rec.Types()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	for _, s := range []string{"== a (creational) ==", "hello from c", "b failed: boom"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("output missing %q", s)
		}
	}
}

func TestRunner_UnknownNameRunsNothing(t *testing.T) {
	ran := false
	r := catalog.NewRegistry()
	_ = r.Register(catalog.Demo{Name: "a", Category: catalog.Creational, Run: func(context.Context, *catalog.Env) error {
		ran = true
		return nil
	}})

	err := catalog.NewRunner(r, &catalog.Env{Out: io.Discard}).Run(context.Background(), "a", "zzz")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Run() error = %v, want ErrNotFound", err)
	}
	if ran {
		t.Error("demo ran despite unknown name in selection")
	}
}

func TestRunner_ConfigSelection(t *testing.T) {
	r := testRegistry(t)
	var out bytes.Buffer

	cfg := catalog.DefaultConfig()
	cfg.Category = "creational"
	if err := catalog.NewRunner(r, &catalog.Env{Out: &out, Config: &cfg}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "proxy") || !strings.Contains(out.String(), "singleton") {
		t.Errorf("category filter not applied:\n%s", out.String())
	}

	cfg.Category = "nonsense"
	err := catalog.NewRunner(r, &catalog.Env{Out: io.Discard, Config: &cfg}).Run(context.Background())
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Errorf("Run() error = %v, want ErrUnknownCategory", err)
	}
}

func TestBuiltin_RunAll(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every demo")
	}

	var out bytes.Buffer
	rec := observability.NewRecorder()
	env := &catalog.Env{Out: &out, Observer: rec}

	if err := catalog.NewRunner(catalog.Builtin(), env).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out.String())
	}
	if got := rec.Count(catalog.EventDemoComplete); got != 16 {
		t.Errorf("completed demos = %d, want 16", got)
	}
}
