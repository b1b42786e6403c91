package importer

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/pf2fa/internal/model"
)

func parseFile(t *testing.T, path string) ([]model.Record, error) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := SplitLines(data)
	det, err := Detect(DefaultRegistry(), lines)
	require.NoError(t, err)

	p := NewParser(zerolog.Nop())
	return Collect(p.Rows(det, lines))
}

func TestRows_AccountFile(t *testing.T) {
	recs, err := parseFile(t, "../../testdata/postfinance_account.csv")
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, "Rent January", recs[0].Description)
	assert.Equal(t, "1500", recs[0].Amount().String())
	assert.Equal(t, "2023-01-31", recs[0].Date.Format("2006-01-02"))

	assert.Equal(t, "Invoice #1", recs[1].Description)
	assert.Equal(t, "100.5", recs[1].Amount().String())

	// Embedded comma survives the semicolon split.
	assert.Equal(t, "Migros Zurich, Bahnhof", recs[2].Description)

	assert.Equal(t, "Salary", recs[3].Description)
	assert.Equal(t, "5200", recs[3].Amount().String())
}

func TestRows_CreditCardFile(t *testing.T) {
	recs, err := parseFile(t, "../../testdata/postfinance_creditcard.csv")
	require.NoError(t, err)
	require.Len(t, recs, 3, "the Total footer is not a data line")

	assert.Equal(t, "Coffee shop", recs[0].Description)
	assert.Equal(t, "4.5", recs[0].Amount().String())
	assert.Equal(t, "19.9", recs[1].Amount().String())
	assert.Equal(t, "56", recs[2].Amount().String())
}

func TestRows_SkipsLinesBeforeHeader(t *testing.T) {
	lines := []string{
		"01.01.2023;looks;like;data;1",
		Account.Header,
		"19.01.2023;Payment;Invoice #1;100.50;",
	}
	det, err := Detect(DefaultRegistry(), lines)
	require.NoError(t, err)

	recs, err := Collect(NewParser(zerolog.Nop()).Rows(det, lines))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Invoice #1", recs[0].Description)
}

func TestRows_SkipsNonDataLines(t *testing.T) {
	lines := []string{
		CreditCard.Header,
		"",
		"Total;;0;4.50",
		" 2023-01-19;leading space;;1",
		"2023-01-19;Coffee shop;;4.50",
		"Disclaimer:",
	}
	det := Detection{Descriptor: CreditCard, HeaderIndex: 0}

	recs, err := Collect(NewParser(zerolog.Nop()).Rows(det, lines))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Coffee shop", recs[0].Description)
}

func TestRows_HeaderOnly(t *testing.T) {
	det := Detection{Descriptor: Account, HeaderIndex: 0}
	recs, err := Collect(NewParser(zerolog.Nop()).Rows(det, []string{Account.Header, ""}))
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestRows_MalformedRow(t *testing.T) {
	lines := []string{
		"Account:;x",
		Account.Header,
		"19.01.2023;Payment;Invoice #1;100.50;",
		"20.01.2023;Payment;short",
		"21.01.2023;Payment;Never reached;1;",
	}
	det, err := Detect(DefaultRegistry(), lines)
	require.NoError(t, err)

	recs, err := Collect(NewParser(zerolog.Nop()).Rows(det, lines))
	require.Error(t, err)
	assert.Nil(t, recs)
	assert.ErrorIs(t, err, ErrMalformedRow)

	var rowErr *MalformedRowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 4, rowErr.Line)
	assert.Equal(t, "20.01.2023;Payment;short", rowErr.Content)
	assert.Contains(t, err.Error(), "line 4")
}

func TestRows_BadDateIsMalformed(t *testing.T) {
	lines := []string{CreditCard.Header, "19.01.2023;Coffee shop;;4.50"}
	det := Detection{Descriptor: CreditCard, HeaderIndex: 0}

	_, err := Collect(NewParser(zerolog.Nop()).Rows(det, lines))
	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "parsing date")
	assert.Contains(t, err.Error(), "line 2")
}

func TestRows_StopsAfterError(t *testing.T) {
	lines := []string{CreditCard.Header, "1;bad", "2;bad"}
	det := Detection{Descriptor: CreditCard, HeaderIndex: 0}

	var errs int
	for _, err := range NewParser(zerolog.Nop()).Rows(det, lines) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestRows_EarlyBreak(t *testing.T) {
	lines := []string{
		CreditCard.Header,
		"2023-01-01;a;;1",
		"2023-01-02;b;;2",
		"2023-01-03;c;;3",
	}
	det := Detection{Descriptor: CreditCard, HeaderIndex: 0}

	var seen []string
	for rec, err := range NewParser(zerolog.Nop()).Rows(det, lines) {
		require.NoError(t, err)
		seen = append(seen, rec.Description)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestRows_LogsAmountFallback(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.WarnLevel)

	lines := []string{CreditCard.Header, "2023-01-19;Coffee shop;;4,50"}
	det := Detection{Descriptor: CreditCard, HeaderIndex: 0}

	recs, err := Collect(NewParser(log).Rows(det, lines))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Amount().IsZero())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, `"line":2`)
	assert.Contains(t, out, `"column":"debit"`)
	assert.Contains(t, out, `"value":"4,50"`)
	assert.Contains(t, out, `"format":"credit-card"`)
}
