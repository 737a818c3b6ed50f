// Package java implements the built-in emitter factory: it renders Java
// source for the immutable and mutable variants of a message file.
package java

import (
	"path"
	"strings"
	"unicode"

	"github.com/goliatone/go-javagen/pkg/schema"
)

// FileClassName returns the wrapper class name for a message file: the
// java_outer_classname option when present, otherwise the CamelCase form of
// the file basename.
func FileClassName(file *schema.File) string {
	if file.Options.JavaOuterClassname != "" {
		return file.Options.JavaOuterClassname
	}
	return UnderscoresToCamelCase(fileBaseName(file.Name))
}

func fileBaseName(name string) string {
	base := path.Base(name)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// UnderscoresToCamelCase converts a lowercase-with-separators name into a
// capitalized CamelCase identifier. A letter following a digit or any
// non-alphanumeric rune is capitalized; other runes are dropped.
func UnderscoresToCamelCase(input string) string {
	var b strings.Builder
	capNext := true
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			if capNext {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(r)
			}
			capNext = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			capNext = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			capNext = true
		default:
			capNext = true
		}
	}
	return b.String()
}

// fieldCamelCase converts a field name to the lowerCamelCase form used for
// Java members.
func fieldCamelCase(name string) string {
	camel := UnderscoresToCamelCase(name)
	if camel == "" {
		return camel
	}
	return strings.ToLower(camel[:1]) + camel[1:]
}

// isJavaIdentifier reports whether s is usable as a Java identifier or
// package segment. Reserved words are not checked; the schema provider owns
// semantic naming rules.
func isJavaIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
