// Package schema holds the parsed message-file descriptor the generation
// driver consumes. Descriptors arrive already parsed and internally
// consistent; the loader in this package exists so CLIs and tests have a
// concrete input format.
package schema

import (
	"errors"
	"fmt"
)

// File is one parsed message-file descriptor.
type File struct {
	// Name is the source file name, e.g. "acme/event_log.proto".
	Name string `yaml:"name" json:"name"`

	// Package is the schema package the file declares.
	Package string `yaml:"package" json:"package"`

	Options  FileOptions `yaml:"options" json:"options"`
	Messages []Message   `yaml:"messages" json:"messages"`
	Enums    []Enum      `yaml:"enums" json:"enums"`
}

// FileOptions carries the file-level options the Java emitters consume.
type FileOptions struct {
	// JavaPackage overrides the package generated classes are placed in.
	JavaPackage string `yaml:"java_package" json:"java_package"`

	// JavaOuterClassname overrides the wrapper class name derived from the
	// file name.
	JavaOuterClassname string `yaml:"java_outer_classname" json:"java_outer_classname"`

	// JavaMultipleFiles asks for one sibling source file per top-level
	// message and enum instead of nesting everything in the wrapper class.
	JavaMultipleFiles bool `yaml:"java_multiple_files" json:"java_multiple_files"`
}

// Message describes one message type, possibly with nested types.
type Message struct {
	Name     string    `yaml:"name" json:"name"`
	Fields   []Field   `yaml:"fields" json:"fields"`
	Messages []Message `yaml:"messages" json:"messages"`
	Enums    []Enum    `yaml:"enums" json:"enums"`
}

// Field describes one message field.
type Field struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Number   int    `yaml:"number" json:"number"`
	Repeated bool   `yaml:"repeated" json:"repeated"`
}

// Enum describes one enum type.
type Enum struct {
	Name   string      `yaml:"name" json:"name"`
	Values []EnumValue `yaml:"values" json:"values"`
}

// EnumValue is one named enum constant.
type EnumValue struct {
	Name   string `yaml:"name" json:"name"`
	Number int    `yaml:"number" json:"number"`
}

// JavaPackage returns the package generated classes live in: the explicit
// java_package option when present, otherwise the schema package.
func (f *File) JavaPackage() string {
	if f.Options.JavaPackage != "" {
		return f.Options.JavaPackage
	}
	return f.Package
}

// Validate checks the structural basics the driver relies on. Semantic
// validation (name resolution, type references) belongs to the schema
// provider, not this module.
func (f *File) Validate() error {
	if f.Name == "" {
		return errors.New("schema: file name is required")
	}
	for i := range f.Messages {
		if err := f.Messages[i].validate(f.Name); err != nil {
			return err
		}
	}
	for _, enum := range f.Enums {
		if err := enum.validate(f.Name); err != nil {
			return err
		}
	}
	return nil
}

func (m *Message) validate(file string) error {
	if m.Name == "" {
		return fmt.Errorf("schema: file %s declares a message without a name", file)
	}
	for _, field := range m.Fields {
		if field.Name == "" {
			return fmt.Errorf("schema: message %s declares a field without a name", m.Name)
		}
		if field.Number <= 0 {
			return fmt.Errorf("schema: field %s.%s has invalid number %d", m.Name, field.Name, field.Number)
		}
	}
	for i := range m.Messages {
		if err := m.Messages[i].validate(file); err != nil {
			return err
		}
	}
	for _, enum := range m.Enums {
		if err := enum.validate(file); err != nil {
			return err
		}
	}
	return nil
}

func (e *Enum) validate(file string) error {
	if e.Name == "" {
		return fmt.Errorf("schema: file %s declares an enum without a name", file)
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("schema: enum %s has no values", e.Name)
	}
	for _, value := range e.Values {
		if value.Name == "" {
			return fmt.Errorf("schema: enum %s declares a value without a name", e.Name)
		}
	}
	return nil
}
