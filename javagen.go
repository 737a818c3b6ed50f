// Package javagen drives Java source generation from parsed message-file
// descriptors. It re-exports the pieces most callers need so a single
// import is enough for the common path.
package javagen

import (
	"context"

	"github.com/goliatone/go-javagen/pkg/generator"
	"github.com/goliatone/go-javagen/pkg/options"
	"github.com/goliatone/go-javagen/pkg/schema"
	"github.com/goliatone/go-javagen/pkg/sink"
)

// Request describes one schema-to-output run.
type Request = generator.Request

// Outcome lists the artifacts produced by one run.
type Outcome = generator.Outcome

// Config is the validated generation plan derived from a parameter string.
type Config = options.Config

// File is a parsed message-file descriptor.
type File = schema.File

// New exposes the generator constructor from the top-level module.
func New(opts ...generator.Option) *generator.Generator {
	return generator.New(opts...)
}

// GenerateFiles runs the full option-parse → validate → emit pipeline for
// one descriptor against the supplied sink context. It is the simplest
// entry point for callers that just want the generated artifacts.
func GenerateFiles(ctx context.Context, file *schema.File, parameter string, out sink.Context, opts ...generator.Option) (generator.Outcome, error) {
	gen := generator.New(opts...)
	return gen.Generate(ctx, generator.Request{
		File:      file,
		Parameter: parameter,
		Sink:      out,
	})
}
