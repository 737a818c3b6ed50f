package annotations_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-javagen/pkg/annotations"
)

func TestWriter_TracksOffsets(t *testing.T) {
	var out bytes.Buffer
	set := annotations.NewSet()
	w := annotations.NewWriter(&out, set)

	if _, err := w.Write([]byte("package com.acme;\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	begin := w.Offset()
	if _, err := w.Write([]byte("class EventLog {}\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Annotate("acme.events.EventLog", begin, w.Offset())

	want := []annotations.Record{
		{Path: "acme.events.EventLog", Begin: 18, End: 36},
	}
	if diff := cmp.Diff(want, set.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if out.Len() != w.Offset() {
		t.Fatalf("offset %d does not match written bytes %d", w.Offset(), out.Len())
	}
}

func TestSet_WriteTo(t *testing.T) {
	set := annotations.NewSet()
	set.Add("acme.Severity", 10, 42)

	var out bytes.Buffer
	if _, err := set.WriteTo(&out); err != nil {
		t.Fatalf("write: %v", err)
	}

	text := out.String()
	for _, fragment := range []string{"annotations:", "path: acme.Severity", "begin: 10", "end: 42"} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("serialized set missing %q:\n%s", fragment, text)
		}
	}
}

func TestSet_WriteTo_Empty(t *testing.T) {
	var out bytes.Buffer
	if _, err := annotations.NewSet().WriteTo(&out); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(out.String(), "annotations: []") {
		t.Fatalf("expected explicit empty list, got %q", out.String())
	}
}
