package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrorKind classifies a decode failure.
type ErrorKind string

// Decode failure kinds.
const (
	KindSyntax         ErrorKind = "syntax"
	KindMissingField   ErrorKind = "missing_field"
	KindTypeMismatch   ErrorKind = "type_mismatch"
	KindUnknownVariant ErrorKind = "unknown_variant"
)

// Sentinel errors for errors.Is. They match any DecodeError of the same kind.
var (
	ErrSyntax         = &DecodeError{Kind: KindSyntax}
	ErrMissingField   = &DecodeError{Kind: KindMissingField}
	ErrTypeMismatch   = &DecodeError{Kind: KindTypeMismatch}
	ErrUnknownVariant = &DecodeError{Kind: KindUnknownVariant}
)

// DecodeError describes why a document could not be decoded.
// Only the fields relevant to Kind are set.
type DecodeError struct {
	Kind ErrorKind

	// Field is the dotted key path, e.g. "version" or "profile_1.auth_type".
	Field string

	// Expected and Actual are TOML type names for KindTypeMismatch.
	Expected string
	Actual   string

	// Value and Allowed describe a KindUnknownVariant failure.
	Value   string
	Allowed []string

	// Line and Column locate a KindSyntax failure (1-based, 0 when unknown).
	Line   int
	Column int

	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindSyntax:
		if e.Line > 0 {
			return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.causeMessage())
		}
		return "syntax error: " + e.causeMessage()
	case KindMissingField:
		return fmt.Sprintf("missing field `%s`", e.Field)
	case KindTypeMismatch:
		return fmt.Sprintf("invalid type for `%s`: expected %s, found %s", e.Field, e.Expected, e.Actual)
	case KindUnknownVariant:
		return fmt.Sprintf("unknown variant `%s` for `%s`, expected one of %s",
			e.Value, e.Field, quoteList(e.Allowed))
	}
	return "decode error: " + string(e.Kind)
}

// Unwrap returns the underlying reader error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DecodeError of the same kind.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func (e *DecodeError) causeMessage() string {
	if e.Cause == nil {
		return "malformed document"
	}
	return e.Cause.Error()
}

// KindOf returns the kind of a DecodeError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func syntaxError(err error) *DecodeError {
	de := &DecodeError{Kind: KindSyntax, Cause: err}
	var tomlErr *toml.DecodeError
	if errors.As(err, &tomlErr) {
		de.Line, de.Column = tomlErr.Position()
		if key := tomlErr.Key(); len(key) > 0 {
			de.Field = strings.Join(key, ".")
		}
	}
	return de
}

func missingField(field string) *DecodeError {
	return &DecodeError{Kind: KindMissingField, Field: field}
}

func typeMismatch(field, expected string, actual any) *DecodeError {
	return &DecodeError{
		Kind:     KindTypeMismatch,
		Field:    field,
		Expected: expected,
		Actual:   typeName(actual),
	}
}

func unknownVariant(field, value string, allowed []string) *DecodeError {
	return &DecodeError{
		Kind:    KindUnknownVariant,
		Field:   field,
		Value:   value,
		Allowed: append([]string(nil), allowed...),
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "`"
	}
	return strings.Join(quoted, ", ")
}
