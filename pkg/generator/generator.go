package generator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-javagen/internal/java"
	"github.com/goliatone/go-javagen/pkg/annotations"
	"github.com/goliatone/go-javagen/pkg/emitter"
	"github.com/goliatone/go-javagen/pkg/options"
	"github.com/goliatone/go-javagen/pkg/schema"
	"github.com/goliatone/go-javagen/pkg/sink"
)

const (
	javaSuffix       = ".java"
	annotationSuffix = ".pb.meta"
)

var (
	// ErrValidate wraps emitter precondition failures. They are reported
	// before any output sink is opened, so a failed run leaves no artifacts.
	ErrValidate = errors.New("generator: variant validation failed")

	// ErrEmit wraps failures while driving emission. Files already fully
	// written for earlier variants are not rolled back.
	ErrEmit = errors.New("generator: emission failed")
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithEmitterFactory injects a custom variant emitter factory.
func WithEmitterFactory(factory emitter.Factory) Option {
	return func(g *Generator) {
		g.factory = factory
	}
}

// WithOpenSourceRuntime fixes the open-source-runtime build flag. It is
// part of the driver's construction-time state and never derived from
// parameter keys.
func WithOpenSourceRuntime(enabled bool) Option {
	return func(g *Generator) {
		g.openSourceRuntime = enabled
	}
}

// WithLogger injects a logger for debug breadcrumbs. The default discards
// everything.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Generator drives the generation of one or more Java source variants from
// a parsed message-file descriptor. Construction-time state is immutable;
// everything else lives for a single Generate call.
type Generator struct {
	factory           emitter.Factory
	openSourceRuntime bool
	logger            logrus.FieldLogger
}

// New constructs a Generator applying any provided options. The built-in
// Java emitter factory is used unless one is injected.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.factory == nil {
		g.factory = java.NewFactory()
	}
	if g.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		g.logger = logger
	}
	return g
}

// Request describes one schema-to-output run.
type Request struct {
	// File is the parsed message-file descriptor to generate from.
	File *schema.File

	// Parameter is the flat key/value option string, e.g.
	// "immutable,annotate_code,output_list_file=files.txt".
	Parameter string

	// Sink receives every generated artifact.
	Sink sink.Context
}

// Outcome lists every artifact produced by one successful run, in
// generation order.
type Outcome struct {
	// Files are the generated source paths: each variant's primary file
	// followed by its sibling files.
	Files []string

	// AnnotationFiles are the annotation metadata paths; empty unless the
	// annotate_code option was set.
	AnnotationFiles []string
}

// Generate executes the option-parse → validate → emit pipeline for one
// message file. Validation of every requested variant completes before any
// sink is opened, so a validation failure never leaves partial output; a
// failure during emission aborts the rest of the plan without rolling back
// files that were already written.
func (g *Generator) Generate(ctx context.Context, req Request) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if req.File == nil {
		return Outcome{}, errors.New("generator: file descriptor is required")
	}
	if req.Sink == nil {
		return Outcome{}, errors.New("generator: output sink context is required")
	}

	cfg, err := options.Build(options.ParseParameter(req.Parameter), g.openSourceRuntime)
	if err != nil {
		return Outcome{}, err
	}

	emitters := g.selectVariants(req.File, cfg)

	for _, em := range emitters {
		if err := em.Validate(); err != nil {
			return Outcome{}, fmt.Errorf("%w: %w", ErrValidate, err)
		}
	}

	var outcome Outcome
	for _, em := range emitters {
		if err := g.runVariant(em, cfg, req.Sink, &outcome); err != nil {
			return Outcome{}, err
		}
	}

	if cfg.OutputListFile != "" {
		if err := writeManifest(req.Sink, cfg.OutputListFile, outcome.Files); err != nil {
			return Outcome{}, err
		}
	}
	if cfg.AnnotationListFile != "" {
		if err := writeManifest(req.Sink, cfg.AnnotationListFile, outcome.AnnotationFiles); err != nil {
			return Outcome{}, err
		}
	}

	g.logger.WithFields(logrus.Fields{
		"source":      req.File.Name,
		"files":       len(outcome.Files),
		"annotations": len(outcome.AnnotationFiles),
	}).Debug("generation complete")

	return outcome, nil
}

// selectVariants builds the ordered emitter list: the immutable variant
// first, then the mutable variant. The mutable request is constructed with
// Immutable false and no further special casing; the shared flag never adds
// a variant of its own and is consumed by the emitters.
func (g *Generator) selectVariants(file *schema.File, cfg options.Config) []emitter.FileEmitter {
	var emitters []emitter.FileEmitter
	if cfg.GenerateImmutable {
		emitters = append(emitters, g.factory.New(file, cfg, emitter.Variant{Immutable: true}))
	}
	if cfg.GenerateMutable {
		emitters = append(emitters, g.factory.New(file, cfg, emitter.Variant{Immutable: false}))
	}
	return emitters
}

func (g *Generator) runVariant(em emitter.FileEmitter, cfg options.Config, sc sink.Context, outcome *Outcome) error {
	dir := emitter.PackageDir(em.JavaPackage())
	primary := dir + em.ClassName() + javaSuffix
	outcome.Files = append(outcome.Files, primary)

	var set *annotations.Set
	annotationPath := primary + annotationSuffix
	if cfg.AnnotateCode {
		set = annotations.NewSet()
		outcome.AnnotationFiles = append(outcome.AnnotationFiles, annotationPath)
	}

	g.logger.WithField("path", primary).Debug("emitting primary file")

	if err := emitPrimary(em, sc, primary, set); err != nil {
		return err
	}

	files, annotationFiles, err := em.EmitSiblings(dir, sc)
	if err != nil {
		return fmt.Errorf("%w: siblings of %s: %w", ErrEmit, primary, err)
	}
	outcome.Files = append(outcome.Files, files...)
	outcome.AnnotationFiles = append(outcome.AnnotationFiles, annotationFiles...)

	if set != nil {
		if err := writeAnnotations(sc, annotationPath, set); err != nil {
			return err
		}
	}
	return nil
}

// emitPrimary drives the variant's emission into a freshly opened sink,
// wrapping it for annotation capture when a record set is supplied. The
// sink is closed on every exit path.
func emitPrimary(em emitter.FileEmitter, sc sink.Context, path string, set *annotations.Set) (err error) {
	out, err := sc.Open(path)
	if err != nil {
		return fmt.Errorf("generator: open %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("generator: close %s: %w", path, cerr)
		}
	}()

	var w io.Writer = out
	if set != nil {
		w = annotations.NewWriter(out, set)
	}

	if err := em.Emit(w); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEmit, path, err)
	}
	return nil
}

func writeAnnotations(sc sink.Context, path string, set *annotations.Set) (err error) {
	out, err := sc.Open(path)
	if err != nil {
		return fmt.Errorf("generator: open %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("generator: close %s: %w", path, cerr)
		}
	}()

	if _, err := set.WriteTo(out); err != nil {
		return fmt.Errorf("generator: write annotations %s: %w", path, err)
	}
	return nil
}
