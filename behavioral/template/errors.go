package template

import "errors"

var (
	ErrMalformed = errors.New("malformed document")
	ErrNoRecords = errors.New("no records to analyze")
)
