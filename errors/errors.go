package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLayout   Phase = "layout"   // layout validation and compilation
	PhaseAccess   Phase = "access"   // field set/get operations
	PhaseDispatch Phase = "dispatch" // indexed register dispatch
)

// Kind categorizes the error
type Kind string

const (
	KindOverlap         Kind = "overlap"          // fields share bits without MayOverlap
	KindWordBounds      Kind = "word_bounds"      // word index >= word count
	KindBitBounds       Kind = "bit_bounds"       // lsb/msb outside the word width
	KindByteOffset      Kind = "byte_offset"      // byte offset disagrees with word index
	KindDefaultValue    Kind = "default_value"    // default does not fit the field mask
	KindValueBounds     Kind = "value_bounds"     // min/max malformed or unrepresentable
	KindFieldCount      Kind = "field_count"      // declared count != len(fields)
	KindBadField        Kind = "bad_field"        // field identifier outside the layout
	KindAccessViolation Kind = "access_violation" // read of WO field / write of RO field
	KindInvalidRange    Kind = "invalid_range"    // register range with end < start
	KindNilPrimitive    Kind = "nil_primitive"    // arch provider returned no thunk
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Field  int // offending field index, -1 when not applicable
	Word   int // offending word index, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field >= 0 {
		fmt.Fprintf(&b, " at field %d", e.Field)
		if e.Word >= 0 {
			fmt.Fprintf(&b, " (word %d)", e.Word)
		}
	} else if e.Word >= 0 {
		fmt.Fprintf(&b, " at word %d", e.Word)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Field: -1,
			Word:  -1,
		},
	}
}

// Field sets the offending field index
func (b *Builder) Field(i int) *Builder {
	b.err.Field = i
	return b
}

// Word sets the offending word index
func (b *Builder) Word(i int) *Builder {
	b.err.Word = i
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Overlap creates a field-overlap error
func Overlap(field, word int, claimed, mask uint64) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindOverlap,
		Field:  field,
		Word:   word,
		Detail: fmt.Sprintf("mask %#x intersects claimed bits %#x", mask, claimed),
	}
}

// WordBounds creates a word-index-out-of-bounds error
func WordBounds(field, word, wordCount int) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindWordBounds,
		Field:  field,
		Word:   word,
		Detail: fmt.Sprintf("word index %d out of bounds (word count %d)", word, wordCount),
	}
}

// BitBounds creates a bit-index-out-of-bounds error
func BitBounds(field int, lsb, msb uint8, wordBits int) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindBitBounds,
		Field:  field,
		Word:   -1,
		Detail: fmt.Sprintf("bit range [%d,%d] invalid for %d-bit word", lsb, msb, wordBits),
	}
}

// ByteOffset creates a byte-offset-inconsistency error
func ByteOffset(field, byteOffset, word, wordSize int) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindByteOffset,
		Field:  field,
		Word:   word,
		Detail: fmt.Sprintf("byte offset %d != word %d * word size %d", byteOffset, word, wordSize),
	}
}

// DefaultValue creates an error for a default that does not fit the field
func DefaultValue(field int, def, fit uint64) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindDefaultValue,
		Field:  field,
		Word:   -1,
		Detail: fmt.Sprintf("default %#x exceeds field capacity %#x", def, fit),
	}
}

// ValueBounds creates an error for malformed or unrepresentable min/max
func ValueBounds(field int, min, max, fit uint64) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindValueBounds,
		Field:  field,
		Word:   -1,
		Detail: fmt.Sprintf("bounds [%#x,%#x] invalid for field capacity %#x", min, max, fit),
	}
}

// FieldCount creates a declared-count mismatch error
func FieldCount(declared, actual int) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindFieldCount,
		Field:  -1,
		Word:   -1,
		Detail: fmt.Sprintf("declared field count %d, layout has %d", declared, actual),
	}
}

// BadField creates an unknown-field-identifier error
func BadField(field, fieldCount int) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindBadField,
		Field:  field,
		Word:   -1,
		Detail: fmt.Sprintf("field %d outside layout (field count %d)", field, fieldCount),
	}
}

// AccessViolation creates an access-rights error
func AccessViolation(field int, op, access string) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindAccessViolation,
		Field:  field,
		Word:   -1,
		Detail: fmt.Sprintf("%s of %s field", op, access),
	}
}

// WrongWord creates an error for a cached-word view asked about another word
func WrongWord(field, viewWord, fieldWord int) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindBadField,
		Field:  field,
		Word:   fieldWord,
		Detail: fmt.Sprintf("view caches word %d, field lives in word %d", viewWord, fieldWord),
	}
}

// InvalidRange creates a register-range error
func InvalidRange(start, end uint64) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindInvalidRange,
		Field:  -1,
		Word:   -1,
		Detail: fmt.Sprintf("end %#x < start %#x", end, start),
	}
}

// NilPrimitive creates an error for an arch provider returning no thunk
func NilPrimitive(reg uint64, op string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNilPrimitive,
		Field:  -1,
		Word:   -1,
		Detail: fmt.Sprintf("no %s primitive for register %#x", op, reg),
	}
}
