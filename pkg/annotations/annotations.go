// Package annotations captures the mapping from generated-output byte
// ranges back to schema elements. A Set is collected per primary output
// file while the emitter writes through a wrapping Writer, then serialized
// to the sibling metadata file.
package annotations

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record attributes one byte range of a generated file to the schema
// element at the given dotted path.
type Record struct {
	Path  string `yaml:"path"`
	Begin int    `yaml:"begin"`
	End   int    `yaml:"end"`
}

// Set accumulates the annotation records for one generated file, in the
// order they were recorded.
type Set struct {
	records []Record
}

// NewSet returns an empty record set.
func NewSet() *Set {
	return &Set{}
}

// Add appends one record.
func (s *Set) Add(path string, begin, end int) {
	s.records = append(s.records, Record{Path: path, Begin: begin, End: end})
}

// Records returns a copy of the collected records.
func (s *Set) Records() []Record {
	return append([]Record(nil), s.records...)
}

// Len reports the number of collected records.
func (s *Set) Len() int {
	return len(s.records)
}

// WriteTo serializes the record set as a YAML document.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	doc := struct {
		Annotations []Record `yaml:"annotations"`
	}{Annotations: s.records}
	if doc.Annotations == nil {
		doc.Annotations = []Record{}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("annotations: marshal records: %w", err)
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("annotations: write records: %w", err)
	}
	return int64(n), nil
}
