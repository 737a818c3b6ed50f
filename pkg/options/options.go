// Package options turns the free-form generator parameter string into a
// validated generation plan. Parsing and validation are separate steps so
// callers can inspect the raw pairs before committing to a plan.
package options

import (
	"errors"
	"fmt"
	"strings"
)

// RawOption is a single key/value pair extracted from the parameter string.
// Order is preserved and duplicate keys are kept; Build defines the
// last-wins reading.
type RawOption struct {
	Key   string
	Value string
}

// ParseParameter splits a generator parameter string into ordered key/value
// pairs following the toolchain convention: pairs are comma separated, the
// first "=" separates key from value, and a bare key carries an empty
// value. The function is pure and has no failure mode; empty fragments are
// skipped.
func ParseParameter(parameter string) []RawOption {
	if parameter == "" {
		return nil
	}

	parts := strings.Split(parameter, ",")
	out := make([]RawOption, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		out = append(out, RawOption{Key: key, Value: value})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// Config is the validated generation plan for one message file.
type Config struct {
	GenerateImmutable bool
	GenerateMutable   bool
	GenerateShared    bool
	EnforceLite       bool
	AnnotateCode      bool

	// OutputListFile and AnnotationListFile name the manifest sinks; empty
	// means no manifest is written.
	OutputListFile     string
	AnnotationListFile string

	// OpenSourceRuntime is fixed at driver construction time and never set
	// by a parameter key.
	OpenSourceRuntime bool
}

var (
	// ErrUnknownOption reports a parameter key outside the recognized set.
	ErrUnknownOption = errors.New("options: unknown generator option")

	// ErrLiteWithMutable reports the lite/mutable exclusion.
	ErrLiteWithMutable = errors.New("options: lite runtime generator option cannot be used with mutable API")
)

// Build consumes the parsed options in order and produces a validated
// Config. An unknown key fails immediately and no later option is applied;
// the lite/mutable exclusion is checked only after every option has been
// consumed, so an unknown key always takes precedence. When no variant flag
// was requested the immutable and shared defaults are filled in exactly
// once, after both checks have passed.
func Build(opts []RawOption, openSourceRuntime bool) (Config, error) {
	cfg := Config{OpenSourceRuntime: openSourceRuntime}

	for _, opt := range opts {
		switch opt.Key {
		case "output_list_file":
			cfg.OutputListFile = opt.Value
		case "immutable":
			cfg.GenerateImmutable = true
		case "mutable":
			cfg.GenerateMutable = true
		case "shared":
			cfg.GenerateShared = true
		case "lite":
			cfg.EnforceLite = true
		case "annotate_code":
			cfg.AnnotateCode = true
		case "annotation_list_file":
			cfg.AnnotationListFile = opt.Value
		default:
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownOption, opt.Key)
		}
	}

	if cfg.EnforceLite && cfg.GenerateMutable {
		return Config{}, ErrLiteWithMutable
	}

	if !cfg.GenerateImmutable && !cfg.GenerateMutable && !cfg.GenerateShared {
		cfg.GenerateImmutable = true
		cfg.GenerateShared = true
	}

	return cfg, nil
}
