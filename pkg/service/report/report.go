// Package report renders scoring reports as colored text, JSON or PDF
package report

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
)

// ErrUnsupportedFormat is returned for an unknown output format
var ErrUnsupportedFormat = goerr.New("unsupported report format")

// Format is a report output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// AllFormats returns all supported formats
func AllFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatPDF}
}

// IsValid checks if the format is supported
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatPDF:
		return true
	default:
		return false
	}
}

// IsBinary reports whether the output should not be written to a terminal
func (f Format) IsBinary() bool {
	return f == FormatPDF
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a string into a Format
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.IsValid() {
		return "", goerr.Wrap(ErrUnsupportedFormat, "unknown report format", goerr.V("format", s))
	}
	return f, nil
}

// Render writes reports to w in the given format
func Render(w io.Writer, format Format, reports ...*model.Report) error {
	switch format {
	case FormatText:
		return Text(w, reports...)
	case FormatJSON:
		return JSON(w, reports...)
	case FormatPDF:
		return PDF(w, reports...)
	default:
		return goerr.Wrap(ErrUnsupportedFormat, "cannot render report", goerr.V("format", format))
	}
}
