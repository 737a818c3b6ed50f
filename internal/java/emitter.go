package java

import (
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-javagen/pkg/annotations"
	"github.com/goliatone/go-javagen/pkg/emitter"
	"github.com/goliatone/go-javagen/pkg/options"
	"github.com/goliatone/go-javagen/pkg/schema"
	"github.com/goliatone/go-javagen/pkg/sink"
)

const (
	javaSuffix       = ".java"
	annotationSuffix = ".pb.meta"

	openSourceRuntimePackage = "com.goliatone.javagen.runtime"
	internalRuntimePackage   = "com.goliatone.javagen.internal.runtime"
)

// Factory builds the built-in Java emitters.
type Factory struct{}

// NewFactory returns the default emitter factory.
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) New(file *schema.File, cfg options.Config, v emitter.Variant) emitter.FileEmitter {
	return &fileEmitter{file: file, cfg: cfg, immutable: v.Immutable}
}

// fileEmitter renders one variant of a message file. The mutable variant
// (Immutable false) generates settable classes under a Mutable-prefixed
// class name so the two variants never collide on a primary path.
type fileEmitter struct {
	file      *schema.File
	cfg       options.Config
	immutable bool
}

func (e *fileEmitter) JavaPackage() string {
	return e.file.JavaPackage()
}

func (e *fileEmitter) classPrefix() string {
	if e.immutable {
		return ""
	}
	return "Mutable"
}

func (e *fileEmitter) ClassName() string {
	return e.classPrefix() + FileClassName(e.file)
}

func (e *fileEmitter) Validate() error {
	if pkg := e.JavaPackage(); pkg != "" {
		for _, segment := range strings.Split(pkg, ".") {
			if !isJavaIdentifier(segment) {
				return fmt.Errorf("java: package segment %q is not a valid Java identifier", segment)
			}
		}
	}

	if !e.file.Options.JavaMultipleFiles {
		outer := e.ClassName()
		for _, m := range e.file.Messages {
			if m.Name == outer {
				return outerNameConflict(e.file.Name, outer)
			}
		}
		for _, enum := range e.file.Enums {
			if enum.Name == outer {
				return outerNameConflict(e.file.Name, outer)
			}
		}
	}
	return nil
}

func outerNameConflict(file, outer string) error {
	return fmt.Errorf("java: cannot generate %s because the outer class name %q matches a type declared inside it; use the java_outer_classname option to pick a different name", file, outer)
}

func (e *fileEmitter) Emit(w io.Writer) error {
	tpls, err := load()
	if err != nil {
		return err
	}

	rec, _ := w.(annotations.Recorder)
	out := &offsetWriter{w: w}

	header, err := tpls.render(tplHeader, pongo2.Context{
		"source":  e.file.Name,
		"package": e.JavaPackage(),
	})
	if err != nil {
		return err
	}
	if err := out.WriteString(header); err != nil {
		return err
	}

	class := e.ClassName()
	if err := out.WriteString(fmt.Sprintf("public final class %s {\n  private %s() {}\n", class, class)); err != nil {
		return err
	}

	// With java_multiple_files every top-level type moves to its own
	// sibling file and the wrapper stays empty.
	if !e.file.Options.JavaMultipleFiles {
		for _, enum := range e.file.Enums {
			body, err := e.renderEnum(tpls, enum, enum.Name)
			if err != nil {
				return err
			}
			if err := writeSection(out, rec, indent(body, 1), e.qualified(enum.Name)); err != nil {
				return err
			}
		}
		for i := range e.file.Messages {
			m := &e.file.Messages[i]
			body, err := e.renderMessage(tpls, m, m.Name, true)
			if err != nil {
				return err
			}
			if err := writeSection(out, rec, indent(body, 1), e.qualified(m.Name)); err != nil {
				return err
			}
		}
	}

	if e.cfg.GenerateShared && e.immutable && !e.cfg.EnforceLite {
		shared, err := e.renderShared(tpls)
		if err != nil {
			return err
		}
		if err := out.WriteString("\n" + shared); err != nil {
			return err
		}
	}

	return out.WriteString("}\n")
}

func (e *fileEmitter) EmitSiblings(dir string, ctx sink.Context) ([]string, []string, error) {
	if !e.file.Options.JavaMultipleFiles {
		return nil, nil, nil
	}
	tpls, err := load()
	if err != nil {
		return nil, nil, err
	}

	var files, annotationFiles []string

	emitOne := func(body, name, element string) error {
		path := dir + name + javaSuffix
		var set *annotations.Set
		if e.cfg.AnnotateCode {
			set = annotations.NewSet()
		}
		if err := e.writeSibling(tpls, ctx, path, body, element, set); err != nil {
			return err
		}
		files = append(files, path)

		if set != nil {
			annPath := path + annotationSuffix
			if err := writeAnnotationSet(ctx, annPath, set); err != nil {
				return err
			}
			annotationFiles = append(annotationFiles, annPath)
		}
		return nil
	}

	for _, enum := range e.file.Enums {
		name := e.classPrefix() + enum.Name
		body, err := e.renderEnum(tpls, enum, name)
		if err != nil {
			return nil, nil, err
		}
		if err := emitOne(body, name, e.qualified(enum.Name)); err != nil {
			return nil, nil, err
		}
	}
	for i := range e.file.Messages {
		m := &e.file.Messages[i]
		name := e.classPrefix() + m.Name
		body, err := e.renderMessage(tpls, m, name, false)
		if err != nil {
			return nil, nil, err
		}
		if err := emitOne(body, name, e.qualified(m.Name)); err != nil {
			return nil, nil, err
		}
	}

	return files, annotationFiles, nil
}

func (e *fileEmitter) writeSibling(tpls *templates, ctx sink.Context, path, body, element string, set *annotations.Set) (err error) {
	raw, err := ctx.Open(path)
	if err != nil {
		return fmt.Errorf("java: open %s: %w", path, err)
	}
	defer func() {
		if cerr := raw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("java: close %s: %w", path, cerr)
		}
	}()

	var w io.Writer = raw
	var rec annotations.Recorder
	if set != nil {
		aw := annotations.NewWriter(raw, set)
		w = aw
		rec = aw
	}

	header, err := tpls.render(tplHeader, pongo2.Context{
		"source":  e.file.Name,
		"package": e.JavaPackage(),
	})
	if err != nil {
		return err
	}

	out := &offsetWriter{w: w}
	if err := out.WriteString(header); err != nil {
		return err
	}
	begin := out.n
	if err := out.WriteString(body); err != nil {
		return err
	}
	if rec != nil {
		rec.Annotate(element, begin, out.n)
	}
	return nil
}

func writeAnnotationSet(ctx sink.Context, path string, set *annotations.Set) (err error) {
	out, err := ctx.Open(path)
	if err != nil {
		return fmt.Errorf("java: open %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("java: close %s: %w", path, cerr)
		}
	}()

	_, err = set.WriteTo(out)
	return err
}

func (e *fileEmitter) renderMessage(tpls *templates, m *schema.Message, name string, static bool) (string, error) {
	var nestedParts []string
	for _, enum := range m.Enums {
		body, err := e.renderEnum(tpls, enum, enum.Name)
		if err != nil {
			return "", err
		}
		nestedParts = append(nestedParts, indent(body, 1))
	}
	for i := range m.Messages {
		child := &m.Messages[i]
		body, err := e.renderMessage(tpls, child, child.Name, true)
		if err != nil {
			return "", err
		}
		nestedParts = append(nestedParts, indent(body, 1))
	}

	fields := make([]map[string]any, 0, len(m.Fields))
	for _, f := range m.Fields {
		camel := fieldCamelCase(f.Name)
		fields = append(fields, map[string]any{
			"type":   javaType(f),
			"member": camel + "_",
			"param":  camel,
			"getter": "get" + UnderscoresToCamelCase(f.Name),
			"setter": "set" + UnderscoresToCamelCase(f.Name),
		})
	}

	nested := strings.Join(nestedParts, "\n")
	nested = strings.TrimRight(nested, "\n")

	return tpls.render(tplMessage, pongo2.Context{
		"name":    name,
		"static":  static,
		"mutable": !e.immutable,
		"fields":  fields,
		"nested":  nested,
	})
}

func (e *fileEmitter) renderEnum(tpls *templates, enum schema.Enum, name string) (string, error) {
	values := make([]map[string]any, 0, len(enum.Values))
	for _, v := range enum.Values {
		values = append(values, map[string]any{
			"name":   v.Name,
			"number": v.Number,
		})
	}
	return tpls.render(tplEnum, pongo2.Context{
		"name":   name,
		"values": values,
	})
}

func (e *fileEmitter) renderShared(tpls *templates) (string, error) {
	runtime := internalRuntimePackage
	if e.cfg.OpenSourceRuntime {
		runtime = openSourceRuntimePackage
	}

	names := make([]string, 0, len(e.file.Messages))
	for _, m := range e.file.Messages {
		names = append(names, e.qualified(m.Name))
	}

	return tpls.render(tplShared, pongo2.Context{
		"source":   e.file.Name,
		"runtime":  runtime,
		"messages": names,
	})
}

// qualified returns the dotted schema-element path used for annotations.
func (e *fileEmitter) qualified(name string) string {
	if e.file.Package == "" {
		return name
	}
	return e.file.Package + "." + name
}

var scalarJavaTypes = map[string]string{
	"double":   "double",
	"float":    "float",
	"int32":    "int",
	"sint32":   "int",
	"sfixed32": "int",
	"uint32":   "int",
	"fixed32":  "int",
	"int64":    "long",
	"sint64":   "long",
	"sfixed64": "long",
	"uint64":   "long",
	"fixed64":  "long",
	"bool":     "boolean",
	"string":   "String",
	"bytes":    "byte[]",
}

func javaType(f schema.Field) string {
	t, ok := scalarJavaTypes[f.Type]
	if !ok {
		t = f.Type
	}
	if f.Repeated {
		return "java.util.List<" + boxedJavaType(t) + ">"
	}
	return t
}

func boxedJavaType(t string) string {
	switch t {
	case "int":
		return "Integer"
	case "long":
		return "Long"
	case "boolean":
		return "Boolean"
	case "double":
		return "Double"
	case "float":
		return "Float"
	default:
		return t
	}
}

// writeSection emits one top-level type body, recording its byte span when
// the output writer participates in annotation collection.
func writeSection(out *offsetWriter, rec annotations.Recorder, body, element string) error {
	if err := out.WriteString("\n"); err != nil {
		return err
	}
	begin := out.n
	if err := out.WriteString(body); err != nil {
		return err
	}
	if rec != nil {
		rec.Annotate(element, begin, out.n)
	}
	return nil
}

// indent prefixes every non-empty line with two spaces per level.
func indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// offsetWriter tracks how many bytes have been written through it so span
// arithmetic works for plain and annotation-recording writers alike.
type offsetWriter struct {
	w io.Writer
	n int
}

func (o *offsetWriter) WriteString(s string) error {
	n, err := io.WriteString(o.w, s)
	o.n += n
	return err
}
