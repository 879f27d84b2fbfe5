package ingest

import (
	"strings"
	"time"

	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/parsererror"

	"github.com/shopspring/decimal"
)

// parseAmount reads a decimal amount. A blank cell is zero. Spaces used as
// thousands separators are dropped and a lone decimal comma becomes a point.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '\u202f' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(clean, ",") {
		if strings.Contains(clean, ".") {
			clean = strings.ReplaceAll(clean, ".", "")
		}
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	return decimal.NewFromString(clean)
}

type fieldReader struct {
	source string
	row    int
	err    error
}

func (f *fieldReader) fail(field, value string, err error) {
	if f.err == nil {
		f.err = &parsererror.ParseError{Source: f.source, Field: field, Row: f.row, Value: value, Err: err}
	}
}

func (f *fieldReader) date(field, value, delim string) time.Time {
	if f.err != nil {
		return time.Time{}
	}
	t, err := dateutils.ParseDate(value, delim)
	if err != nil {
		f.fail(field, value, err)
	}
	return t
}

func (f *fieldReader) amount(field, value string) decimal.Decimal {
	if f.err != nil {
		return decimal.Zero
	}
	d, err := parseAmount(value)
	if err != nil {
		f.fail(field, value, err)
	}
	return d
}
