// Package emitter defines the seam between the generation driver and the
// per-variant Java source emitters. Concrete emitters live behind the
// Factory so callers can swap the built-in implementation for their own.
package emitter

import (
	"io"
	"strings"

	"github.com/goliatone/go-javagen/pkg/options"
	"github.com/goliatone/go-javagen/pkg/schema"
	"github.com/goliatone/go-javagen/pkg/sink"
)

// Variant identifies one requested output variant. The driver constructs
// the immutable request with Immutable true and the mutable request with
// Immutable false; it applies no other special casing to either.
type Variant struct {
	Immutable bool
}

// FileEmitter generates the Java source for one variant of a message file.
// Emitters are constructed per run by a Factory and are not reused.
type FileEmitter interface {
	// Validate checks the descriptor against the variant's preconditions.
	// It runs for every requested variant before any output sink is opened.
	Validate() error

	// JavaPackage returns the Java package generated classes live in.
	JavaPackage() string

	// ClassName returns the wrapper class name for the primary output file.
	ClassName() string

	// Emit writes the primary file. When w implements annotations.Recorder
	// the emitter attributes emitted byte spans to schema elements.
	Emit(w io.Writer) error

	// EmitSiblings generates any companion files under dir, returning their
	// paths and the paths of annotation files it wrote, in emission order.
	EmitSiblings(dir string, ctx sink.Context) (files, annotationFiles []string, err error)
}

// Factory builds the emitter for one variant of a message file.
type Factory interface {
	New(file *schema.File, cfg options.Config, v Variant) FileEmitter
}

// PackageDir converts a Java package name to the directory prefix generated
// files are placed under ("com.acme" -> "com/acme/"). The empty package
// maps to the output root.
func PackageDir(javaPackage string) string {
	if javaPackage == "" {
		return ""
	}
	return strings.ReplaceAll(javaPackage, ".", "/") + "/"
}
