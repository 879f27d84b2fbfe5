package dateutils

import (
	"fmt"
	"time"
)

// Format bundles the date settings used when writing ledger rows.
type Format struct {
	Delimiter  string
	MonthStyle MonthStyle
	Language   Language
	Capitalize bool
}

// DefaultFormat is "/" delimited dates with short, lower-case Norwegian months.
func DefaultFormat() Format {
	return Format{
		Delimiter:  "/",
		MonthStyle: MonthShort,
		Language:   LanguageLocal,
		Capitalize: false,
	}
}

// Validate checks every field against its allowed values.
func (f Format) Validate() error {
	if !IsValidDelimiter(f.Delimiter) {
		return fmt.Errorf("invalid date delimiter '%s' (want one of %v)", f.Delimiter, Delimiters)
	}
	if _, err := ParseMonthStyle(string(f.MonthStyle)); err != nil {
		return err
	}
	if _, ok := monthNames[f.Language]; !ok {
		return fmt.Errorf("unknown month language '%s'", f.Language)
	}
	return nil
}

// Date renders t with the configured delimiter.
func (f Format) Date(t time.Time) string {
	return FormatDate(t, f.Delimiter)
}

// Month renders the month label for t.
func (f Format) Month(t time.Time) string {
	label, err := MonthLabel(int(t.Month()), f.MonthStyle, f.Language, f.Capitalize)
	if err != nil {
		return ""
	}
	return label
}
