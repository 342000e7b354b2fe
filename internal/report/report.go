// Package report renders analysis reports to an output stream.
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/julianknutsen/oddsight/internal/analysis"
)

// ErrUnknownFormat is returned by New for a format not in Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatProm = "prom"
)

var formats = []string{FormatText, FormatJSON, FormatYAML, FormatProm}

// Formats returns the accepted format names.
func Formats() []string {
	return slices.Clone(formats)
}

// ValidFormat reports whether format is accepted by New.
func ValidFormat(format string) bool {
	return slices.Contains(formats, format)
}

// Sink consumes a report.
type Sink interface {
	Write(r *analysis.Report) error
}

// New returns the sink for format writing to w.
func New(format string, w io.Writer) (Sink, error) {
	switch format {
	case FormatText:
		return &textSink{w: w}, nil
	case FormatJSON:
		return &jsonSink{w: w}, nil
	case FormatYAML:
		return &yamlSink{w: w}, nil
	case FormatProm:
		return &promSink{w: w}, nil
	default:
		return nil, fmt.Errorf("%w %q (supported: %v)", ErrUnknownFormat, format, formats)
	}
}

// Restrict returns a copy of r whose scores and ranking hold only t.
// The analysis is shared with r.
func Restrict(r *analysis.Report, t analysis.Target) (*analysis.Report, error) {
	score, ok := r.Score(t)
	if !ok {
		return nil, fmt.Errorf("%w: %d", analysis.ErrUnknownTarget, int(t))
	}
	rec, _ := r.Ranking.Find(t)
	return &analysis.Report{
		Analysis: r.Analysis,
		Scores:   []analysis.TargetScore{score},
		Ranking:  analysis.Ranking{rec},
	}, nil
}
