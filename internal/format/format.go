// Package format renders amounts and dates for display.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultDateLayout = "02/01/2006"

type Formatter struct {
	printer    *message.Printer
	unit       currency.Unit
	dateLayout string
}

// New builds a formatter for a BCP 47 language tag and an ISO 4217 currency
// code. An empty layout uses DefaultDateLayout.
func New(lang, cur, dateLayout string) (*Formatter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	unit, err := currency.ParseISO(cur)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", cur, err)
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return &Formatter{
		printer:    message.NewPrinter(tag),
		unit:       unit,
		dateLayout: dateLayout,
	}, nil
}

var defaultFormatter = &Formatter{
	printer:    message.NewPrinter(language.French),
	unit:       currency.EUR,
	dateLayout: DefaultDateLayout,
}

// Default returns the French/EUR formatter.
func Default() *Formatter {
	return defaultFormatter
}

// Currency formats amount with two decimals and the currency symbol. A nil
// amount renders as zero.
func (f *Formatter) Currency(amount *float64) string {
	if amount == nil {
		return f.printer.Sprintf("0 %v", currency.Symbol(f.unit))
	}
	return f.printer.Sprintf("%.2f %v", *amount, currency.Symbol(f.unit))
}

// Date formats an RFC 3339 timestamp or a YYYY-MM-DD date. Empty or
// unparseable input renders as "".
func (f *Formatter) Date(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format(f.dateLayout)
}

func (f *Formatter) Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.dateLayout)
}

func Currency(amount *float64) string {
	return defaultFormatter.Currency(amount)
}

func Date(s string) string {
	return defaultFormatter.Date(s)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
