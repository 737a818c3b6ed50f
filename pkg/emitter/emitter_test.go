package emitter_test

import (
	"testing"

	"github.com/goliatone/go-javagen/pkg/emitter"
)

func TestPackageDir(t *testing.T) {
	cases := []struct {
		pkg    string
		expect string
	}{
		{pkg: "", expect: ""},
		{pkg: "acme", expect: "acme/"},
		{pkg: "com.acme.events", expect: "com/acme/events/"},
	}

	for _, tc := range cases {
		if got := emitter.PackageDir(tc.pkg); got != tc.expect {
			t.Fatalf("PackageDir(%q) = %q, want %q", tc.pkg, got, tc.expect)
		}
	}
}
