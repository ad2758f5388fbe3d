package rendertext

import (
	"encoding/csv"
	"strings"
)

// Evidence is the tabular context an analysis answer cites: a header row and
// the data rows backing the answer.
type Evidence struct {
	Header []string
	Rows   [][]string
}

// ParseEvidence reads the CSV-shaped evidence block attached to an answer.
// The first line is the header. Ragged rows are tolerated since the block is
// model-produced, and a malformed block degrades to nil rather than an error
// surfaced to the user.
func ParseEvidence(block string) *Evidence {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	reader := csv.NewReader(strings.NewReader(block))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil || len(all) == 0 {
		return nil
	}
	return &Evidence{Header: all[0], Rows: all[1:]}
}
