package template

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CSVMiner reads "name,amount" rows. A header row is skipped when its
// amount column is not numeric.
type CSVMiner struct {
	source
}

func NewCSVMiner(open Opener) *CSVMiner {
	return &CSVMiner{source: source{name: "csv", open: open}}
}

func (m *CSVMiner) Parse(raw []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		amount, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, i+1, err)
		}
		records = append(records, Record{Name: strings.TrimSpace(row[0]), Amount: amount})
	}
	return records, nil
}

// JSONMiner reads an array of {"name", "amount"} objects.
type JSONMiner struct {
	source
}

func NewJSONMiner(open Opener) *JSONMiner {
	return &JSONMiner{source: source{name: "json", open: open}}
}

func (m *JSONMiner) Parse(raw []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}

// YAMLMiner reads a sequence of name/amount mappings.
type YAMLMiner struct {
	source
}

func NewYAMLMiner(open Opener) *YAMLMiner {
	return &YAMLMiner{source: source{name: "yaml", open: open}}
}

func (m *YAMLMiner) Parse(raw []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}
