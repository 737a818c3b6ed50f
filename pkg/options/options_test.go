package options_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-javagen/pkg/options"
)

func TestParseParameter(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect []options.RawOption
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:   "bare key",
			input:  "immutable",
			expect: []options.RawOption{{Key: "immutable"}},
		},
		{
			name:  "mixed pairs",
			input: "immutable,output_list_file=files.txt,shared",
			expect: []options.RawOption{
				{Key: "immutable"},
				{Key: "output_list_file", Value: "files.txt"},
				{Key: "shared"},
			},
		},
		{
			name:   "value containing equals",
			input:  "annotation_list_file=out=dir/meta.txt",
			expect: []options.RawOption{{Key: "annotation_list_file", Value: "out=dir/meta.txt"}},
		},
		{
			name:  "duplicates preserved in order",
			input: "output_list_file=a.txt,output_list_file=b.txt",
			expect: []options.RawOption{
				{Key: "output_list_file", Value: "a.txt"},
				{Key: "output_list_file", Value: "b.txt"},
			},
		},
		{
			name:   "empty fragments skipped",
			input:  ",immutable,,",
			expect: []options.RawOption{{Key: "immutable"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := options.ParseParameter(tc.input)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatalf("parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_DefaultPlan(t *testing.T) {
	cfg, err := options.Build(nil, false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !cfg.GenerateImmutable || !cfg.GenerateShared {
		t.Fatalf("expected immutable+shared defaults, got %+v", cfg)
	}
	if cfg.GenerateMutable {
		t.Fatalf("mutable must not be defaulted, got %+v", cfg)
	}
}

func TestBuild_NoDefaultWhenVariantRequested(t *testing.T) {
	cfg, err := options.Build(options.ParseParameter("mutable"), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if cfg.GenerateImmutable || cfg.GenerateShared {
		t.Fatalf("defaults must not apply when a variant was requested, got %+v", cfg)
	}
	if !cfg.GenerateMutable {
		t.Fatalf("expected mutable, got %+v", cfg)
	}
}

func TestBuild_AllKeys(t *testing.T) {
	param := "immutable,mutable,shared,annotate_code,output_list_file=files.txt,annotation_list_file=meta.txt"
	cfg, err := options.Build(options.ParseParameter(param), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := options.Config{
		GenerateImmutable:  true,
		GenerateMutable:    true,
		GenerateShared:     true,
		AnnotateCode:       true,
		OutputListFile:     "files.txt",
		AnnotationListFile: "meta.txt",
		OpenSourceRuntime:  true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_PathKeysLastWins(t *testing.T) {
	cfg, err := options.Build(options.ParseParameter("output_list_file=a.txt,immutable,output_list_file=b.txt"), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.OutputListFile != "b.txt" {
		t.Fatalf("expected later value to win, got %q", cfg.OutputListFile)
	}
}

func TestBuild_LiteMutableConflict(t *testing.T) {
	for _, param := range []string{"lite,mutable", "mutable,lite", "mutable,shared,lite"} {
		_, err := options.Build(options.ParseParameter(param), false)
		if !errors.Is(err, options.ErrLiteWithMutable) {
			t.Fatalf("param %q: expected lite/mutable conflict, got %v", param, err)
		}
	}
}

func TestBuild_UnknownKeyFailsFast(t *testing.T) {
	cfg, err := options.Build(options.ParseParameter("immutable,bogus,mutable"), false)
	if !errors.Is(err, options.ErrUnknownOption) {
		t.Fatalf("expected unknown option error, got %v", err)
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("error must identify the offending key, got %q", err.Error())
	}
	if diff := cmp.Diff(options.Config{}, cfg); diff != "" {
		t.Fatalf("failed build must return the zero config:\n%s", diff)
	}
}

func TestBuild_UnknownKeyPrecedesConflict(t *testing.T) {
	// The conflict check runs only after all options are consumed, so the
	// unknown key wins even when lite and mutable are both present.
	_, err := options.Build(options.ParseParameter("lite,mutable,bogus"), false)
	if !errors.Is(err, options.ErrUnknownOption) {
		t.Fatalf("expected unknown option error, got %v", err)
	}
}

func TestBuild_OpenSourceRuntimePassthrough(t *testing.T) {
	cfg, err := options.Build(nil, true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !cfg.OpenSourceRuntime {
		t.Fatal("expected open source runtime flag to pass through")
	}
}
