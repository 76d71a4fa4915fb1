package template

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// Opener produces the document a miner reads.
type Opener func() (io.ReadCloser, error)

// FromFile opens path on demand.
func FromFile(path string) Opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// FromString serves an in-memory document.
func FromString(doc string) Opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(doc)), nil
	}
}

// source implements the Open, Extract and Close steps shared by every
// format; miners embed it and add Parse.
type source struct {
	name string
	open Opener
	rc   io.ReadCloser
}

func (s *source) Name() string { return s.name }

func (s *source) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rc, err := s.open()
	if err != nil {
		return err
	}
	s.rc = rc
	return nil
}

func (s *source) Extract(ctx context.Context) ([]byte, error) {
	if s.rc == nil {
		return nil, errors.New("source not open")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.ReadAll(s.rc)
}

func (s *source) Close() error {
	if s.rc == nil {
		return nil
	}
	err := s.rc.Close()
	s.rc = nil
	return err
}
