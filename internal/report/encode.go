package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/julianknutsen/oddsight/internal/analysis"
)

// document is the serialized shape shared by the json and yaml sinks.
type document struct {
	analysis.Report `yaml:",inline"`
	Best            *analysis.Recommendation `json:"best,omitempty" yaml:"best,omitempty"`
}

func newDocument(r *analysis.Report) document {
	doc := document{Report: *r}
	if best, ok := r.Ranking.Best(); ok {
		doc.Best = &best
	}
	return doc
}

type jsonSink struct {
	w io.Writer
}

func (s *jsonSink) Write(r *analysis.Report) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(r)); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

type yamlSink struct {
	w io.Writer
}

func (s *yamlSink) Write(r *analysis.Report) error {
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(r)); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return nil
}
