package deck

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reportLocale fixes the number grouping of the report: 1234567 reads 1.234.567.
var reportLocale = language.BrazilianPortuguese

// formatter renders numbers and labels for one deck.
type formatter struct {
	printer *message.Printer
	upper   cases.Caser
}

func newFormatter() *formatter {
	return &formatter{
		printer: message.NewPrinter(reportLocale),
		upper:   cases.Upper(reportLocale),
	}
}

// count formats n with a period as the thousands separator.
func (f *formatter) count(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// FormatCount formats n the way circulation figures appear on slides.
func FormatCount(n int64) string {
	return newFormatter().count(n)
}
