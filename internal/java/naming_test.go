package java

import (
	"testing"

	"github.com/goliatone/go-javagen/pkg/schema"
)

func TestUnderscoresToCamelCase(t *testing.T) {
	cases := []struct {
		input  string
		expect string
	}{
		{input: "event_log", expect: "EventLog"},
		{input: "event__log", expect: "EventLog"},
		{input: "foo2bar", expect: "Foo2Bar"},
		{input: "AlreadyCamel", expect: "AlreadyCamel"},
		{input: "with-dash.and.dot", expect: "WithDashAndDot"},
		{input: "", expect: ""},
	}

	for _, tc := range cases {
		if got := UnderscoresToCamelCase(tc.input); got != tc.expect {
			t.Errorf("UnderscoresToCamelCase(%q) = %q, want %q", tc.input, got, tc.expect)
		}
	}
}

func TestFileClassName(t *testing.T) {
	withOption := &schema.File{
		Name:    "acme/event_log.proto",
		Options: schema.FileOptions{JavaOuterClassname: "EventLogProtos"},
	}
	if got := FileClassName(withOption); got != "EventLogProtos" {
		t.Fatalf("expected option to win, got %q", got)
	}

	derived := &schema.File{Name: "acme/event_log.proto"}
	if got := FileClassName(derived); got != "EventLog" {
		t.Fatalf("expected derived class name, got %q", got)
	}
}

func TestFieldCamelCase(t *testing.T) {
	if got := fieldCamelCase("created_at"); got != "createdAt" {
		t.Fatalf("fieldCamelCase = %q", got)
	}
}

func TestIsJavaIdentifier(t *testing.T) {
	valid := []string{"events", "acme_internal", "v2x", "_private"}
	for _, s := range valid {
		if !isJavaIdentifier(s) {
			t.Errorf("expected %q to be a valid identifier", s)
		}
	}

	invalid := []string{"", "2fast", "com.acme", "white space"}
	for _, s := range invalid {
		if isJavaIdentifier(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
