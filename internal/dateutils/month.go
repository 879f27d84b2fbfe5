package dateutils

import (
	"fmt"
	"strings"
)

// MonthStyle selects a short (three letter) or full month name.
type MonthStyle string

const (
	MonthShort MonthStyle = "short"
	MonthLong  MonthStyle = "long"
)

// Language selects the month-name table.
type Language string

const (
	// LanguageLocal is the Norwegian table.
	LanguageLocal   Language = "local"
	LanguageEnglish Language = "english"
)

var monthNames = map[Language][12]string{
	LanguageLocal: {
		"Januar", "Februar", "Mars", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Desember",
	},
	LanguageEnglish: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// ParseMonthStyle accepts "short" or "long" in any case.
func ParseMonthStyle(s string) (MonthStyle, error) {
	switch MonthStyle(strings.ToLower(strings.TrimSpace(s))) {
	case MonthShort:
		return MonthShort, nil
	case MonthLong:
		return MonthLong, nil
	}
	return "", fmt.Errorf("unknown month style '%s' (want short or long)", s)
}

// ParseLanguage accepts "local", its alias "norsk", or "english".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "norsk":
		return LanguageLocal, nil
	case "english":
		return LanguageEnglish, nil
	}
	return "", fmt.Errorf("unknown month language '%s' (want local, norsk or english)", s)
}

// MonthLabel returns the name of month (1-12) in lang. The short style keeps the
// first three letters. Without capitalize the label is lower case.
func MonthLabel(month int, style MonthStyle, lang Language, capitalize bool) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month %d out of range", month)
	}
	names, ok := monthNames[lang]
	if !ok {
		return "", fmt.Errorf("unknown month language '%s'", lang)
	}
	label := names[month-1]
	if style == MonthShort {
		label = string([]rune(label)[:3])
	}
	if !capitalize {
		label = strings.ToLower(label)
	}
	return label, nil
}
