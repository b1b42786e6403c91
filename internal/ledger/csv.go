// Package ledger writes Records in the FreeAgent bank statement import
// layout: date, amount, description.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/pf2fa/internal/model"
)

const (
	// DateFormat is DD/MM/YYYY.
	DateFormat = "02/01/2006"
	numFields  = 3
	colDate    = 0
	colAmount  = 1
	colDesc    = 2
)

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date.Format(DateFormat)
	row[colAmount] = rec.Amount().String()
	row[colDesc] = rec.Description
	return row
}

// WriteRecords writes one row per record, without a header. Descriptions
// are quoted only when they contain a comma, quote, line break or leading
// space.
func WriteRecords(w io.Writer, recs []model.Record) error {
	cw := csv.NewWriter(w)
	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render returns the rows as a single string.
func Render(recs []model.Record) (string, error) {
	var sb strings.Builder
	if err := WriteRecords(&sb, recs); err != nil {
		return "", err
	}
	return sb.String(), nil
}
