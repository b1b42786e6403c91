package importer

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/pf2fa/internal/model"
)

// Parser turns the data lines of a detected file into Records.
type Parser struct {
	log zerolog.Logger
}

// NewParser creates a Parser that reports amount fallbacks to log.
func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log}
}

// Rows lazily yields a Record for each data line after the header. A data
// line starts with an ASCII digit; anything else is skipped. Iteration stops
// after the first error, which is always a *MalformedRowError.
func (p *Parser) Rows(det Detection, lines []string) iter.Seq2[model.Record, error] {
	d := det.Descriptor
	return func(yield func(model.Record, error) bool) {
		for i := det.HeaderIndex + 1; i < len(lines); i++ {
			line := lines[i]
			if !isDataLine(line) {
				continue
			}

			rec, fallbacks, err := d.Record(d.Split(line))
			if err != nil {
				yield(model.Record{}, &MalformedRowError{Line: i + 1, Content: line, Err: err})
				return
			}
			for _, fb := range fallbacks {
				p.log.Warn().
					Int("line", i+1).
					Str("column", fb.Column).
					Str("value", fb.Value).
					Str("format", d.Kind.String()).
					Msg("unparsable amount, using 0")
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Collect drains seq. On error it returns no records.
func Collect(seq iter.Seq2[model.Record, error]) ([]model.Record, error) {
	var recs []model.Record
	for rec, err := range seq {
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func isDataLine(line string) bool {
	return len(line) > 0 && line[0] >= '0' && line[0] <= '9'
}
