package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one bank statement transaction, independent of the export format.
type Record struct {
	Date        time.Time       // calendar date, no time-of-day
	Credit      decimal.Decimal // zero if absent
	Debit       decimal.Decimal // zero if absent
	Description string
}

// Amount returns the sum of Credit and Debit.
func (r Record) Amount() decimal.Decimal {
	return r.Credit.Add(r.Debit)
}
