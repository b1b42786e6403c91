package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pf2fa/internal/model"
)

// Kind identifies a supported statement export layout.
type Kind int

const (
	KindAccount Kind = iota
	KindCreditCard
)

func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "account"
	case KindCreditCard:
		return "credit-card"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Columns holds 0-based column indexes into a split data line.
type Columns struct {
	Date        int
	Description int
	Credit      int
	Debit       int
}

// Descriptor describes how to recognize and read one export layout.
type Descriptor struct {
	Kind       Kind
	Name       string
	Header     string // must appear verbatim as a full line
	Delimiter  string
	DateLayout string
	Columns    Columns
}

// NumFields returns the minimum number of fields a data line needs.
func (d Descriptor) NumFields() int {
	return max(d.Columns.Date, d.Columns.Description, d.Columns.Credit, d.Columns.Debit) + 1
}

// Split breaks a data line into fields on the descriptor's delimiter.
func (d Descriptor) Split(line string) []string {
	return strings.Split(line, d.Delimiter)
}

// Fallback records an amount field that could not be parsed and was read as 0.
type Fallback struct {
	Column string
	Value  string
}

// Record maps split fields to a Record. Empty or unparsable amounts become
// zero; unparsable ones are listed in the returned fallbacks.
func (d Descriptor) Record(fields []string) (model.Record, []Fallback, error) {
	if len(fields) < d.NumFields() {
		return model.Record{}, nil, fmt.Errorf("expected at least %d fields, got %d", d.NumFields(), len(fields))
	}

	date, err := time.Parse(d.DateLayout, fields[d.Columns.Date])
	if err != nil {
		return model.Record{}, nil, fmt.Errorf("parsing date %q: %w", fields[d.Columns.Date], err)
	}

	var fallbacks []Fallback
	credit, ok := parseAmount(fields[d.Columns.Credit])
	if !ok {
		fallbacks = append(fallbacks, Fallback{Column: "credit", Value: fields[d.Columns.Credit]})
	}
	debit, ok := parseAmount(fields[d.Columns.Debit])
	if !ok {
		fallbacks = append(fallbacks, Fallback{Column: "debit", Value: fields[d.Columns.Debit]})
	}

	return model.Record{
		Date:        date,
		Credit:      credit,
		Debit:       debit,
		Description: fields[d.Columns.Description],
	}, fallbacks, nil
}

// parseAmount returns zero for an empty field. ok is false only when a
// non-empty value is not a decimal number.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// Account is the PostFinance account statement export.
var Account = Descriptor{
	Kind:       KindAccount,
	Name:       "account parser",
	Header:     "Date;Type of transaction;Notification text;Credit in CHF;Debit in CHF",
	Delimiter:  ";",
	DateLayout: "02.01.2006",
	Columns:    Columns{Date: 0, Description: 2, Credit: 3, Debit: 4},
}

// CreditCard is the PostFinance credit card statement export.
var CreditCard = Descriptor{
	Kind:       KindCreditCard,
	Name:       "credit card parser",
	Header:     "Date;Booking details;Credit in CHF;Debit in CHF",
	Delimiter:  ";",
	DateLayout: "2006-01-02",
	Columns:    Columns{Date: 0, Description: 1, Credit: 2, Debit: 3},
}

// Registry is an ordered, read-only list of descriptors.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry creates a registry holding ds in order. Panics on a duplicate
// kind or header.
func NewRegistry(ds ...Descriptor) *Registry {
	kinds := make(map[Kind]bool, len(ds))
	headers := make(map[string]bool, len(ds))
	for _, d := range ds {
		if kinds[d.Kind] {
			panic("duplicate format kind: " + d.Kind.String())
		}
		if headers[d.Header] {
			panic("duplicate format header: " + d.Header)
		}
		kinds[d.Kind] = true
		headers[d.Header] = true
	}
	return &Registry{descriptors: append([]Descriptor(nil), ds...)}
}

// Descriptors returns a copy of the registered descriptors in order.
func (r *Registry) Descriptors() []Descriptor {
	return append([]Descriptor(nil), r.descriptors...)
}

// Get returns the descriptor for kind.
func (r *Registry) Get(kind Kind) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Kind == kind {
			return d, true
		}
	}
	return Descriptor{}, false
}

// DefaultRegistry returns a registry with all built-in formats.
func DefaultRegistry() *Registry {
	return NewRegistry(Account, CreditCard)
}
