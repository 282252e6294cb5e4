package bitfield

import (
	"unsafe"

	"github.com/regbits/regbits"
	"github.com/regbits/regbits/errors"
)

// Layout is the static description the validator and accessors consume: an
// ordered field table plus the backing storage geometry. FieldCount is
// deliberately redundant with len(Fields); the mismatch check catches
// tables that fell out of sync with their ID enumeration.
type Layout[W regbits.Word] struct {
	Fields     []Field[W]
	WordCount  int
	FieldCount int
}

// normalized returns a copy of the layout with byte-offset-only fields
// resolved to their word index.
func (l Layout[W]) normalized() Layout[W] {
	var w W
	size := int(unsafe.Sizeof(w))

	fields := make([]Field[W], len(l.Fields))
	copy(fields, l.Fields)
	for i := range fields {
		if fields[i].Word == 0 && fields[i].ByteOffset > 0 {
			fields[i].Word = fields[i].ByteOffset / size
		}
	}
	l.Fields = fields
	return l
}

// bitRangeValid reports whether the field's bit range is usable for mask
// construction. The per-field checks below report the precise violation;
// the overlap scan uses this to skip fields whose masks cannot be built.
func bitRangeValid[W regbits.Word](f Field[W]) bool {
	return f.LSB <= f.MSB && int(f.MSB) < WordBits[W]()
}

// HasOverlappingFields reports whether any two fields of the same word
// share bits without at least one of them opting out via MayOverlap.
// Words are independent; a field's mask never crosses words.
func (l Layout[W]) HasOverlappingFields() bool {
	l = l.normalized()
	claimed := make(map[int]W, l.WordCount)

	for _, f := range l.Fields {
		if f.MayOverlap || !bitRangeValid(f) {
			continue
		}
		mask := f.mask()
		if claimed[f.Word]&mask != 0 {
			return true
		}
		claimed[f.Word] |= mask
	}
	return false
}

// ByteOffsetConsistent reports whether every field specifying a byte offset
// agrees with its word index.
func (l Layout[W]) ByteOffsetConsistent() bool {
	l = l.normalized()
	var w W
	size := int(unsafe.Sizeof(w))

	for _, f := range l.Fields {
		if f.ByteOffset != 0 && f.ByteOffset != f.Word*size {
			return false
		}
	}
	return true
}

// WordIndexWithinBounds reports whether every field lives inside the
// declared word count.
func (l Layout[W]) WordIndexWithinBounds() bool {
	l = l.normalized()
	for _, f := range l.Fields {
		if f.Word < 0 || f.Word >= l.WordCount {
			return false
		}
	}
	return true
}

// BitIndexWithinTypeBounds reports whether every field's bit range fits the
// word type: 0 <= lsb <= msb < WordBits.
func (l Layout[W]) BitIndexWithinTypeBounds() bool {
	for _, f := range l.Fields {
		if !bitRangeValid(f) {
			return false
		}
	}
	return true
}

// DefaultValueConsistent reports whether every field's default value is
// representable in the field's own bit width.
func (l Layout[W]) DefaultValueConsistent() bool {
	for _, f := range l.Fields {
		if !bitRangeValid(f) {
			continue
		}
		if f.Default > capacity[W](f.LSB, f.MSB) {
			return false
		}
	}
	return true
}

// ValueBoundsConsistent reports whether every field's min/max pair is
// ordered and representable in the field's own bit width.
func (l Layout[W]) ValueBoundsConsistent() bool {
	for _, f := range l.Fields {
		if !bitRangeValid(f) {
			continue
		}
		fit := capacity[W](f.LSB, f.MSB)
		if f.Min > f.Max || f.Max > fit {
			return false
		}
	}
	return true
}

// Validate runs the full check set and returns the first violation as a
// structured error, or nil for a consistent layout. The boolean predicates
// above answer the same questions individually; like them, Validate sees
// byte-offset-only fields with their word index already derived.
func (l Layout[W]) Validate() error {
	l = l.normalized()
	var w W
	size := int(unsafe.Sizeof(w))
	bits := WordBits[W]()

	if l.FieldCount != len(l.Fields) {
		return errors.FieldCount(l.FieldCount, len(l.Fields))
	}

	for i, f := range l.Fields {
		if !bitRangeValid(f) {
			return errors.BitBounds(i, f.LSB, f.MSB, bits)
		}
		if f.Word < 0 || f.Word >= l.WordCount {
			return errors.WordBounds(i, f.Word, l.WordCount)
		}
		if f.ByteOffset != 0 && f.ByteOffset != f.Word*size {
			return errors.ByteOffset(i, f.ByteOffset, f.Word, size)
		}

		fit := capacity[W](f.LSB, f.MSB)
		if f.Default > fit {
			return errors.DefaultValue(i, uint64(f.Default), uint64(fit))
		}
		if f.Min > f.Max || f.Max > fit {
			return errors.ValueBounds(i, uint64(f.Min), uint64(f.Max), uint64(fit))
		}
	}

	claimed := make(map[int]W, l.WordCount)
	for i, f := range l.Fields {
		if f.MayOverlap {
			continue
		}
		mask := f.mask()
		if inter := claimed[f.Word] & mask; inter != 0 {
			return errors.Overlap(i, f.Word, uint64(claimed[f.Word]), uint64(mask))
		}
		claimed[f.Word] |= mask
	}

	return nil
}
