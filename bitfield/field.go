package bitfield

import "github.com/regbits/regbits"

// ID identifies a field within its layout. Consumers declare a closed
// enumeration mirroring the layout table:
//
//	const (
//		Enable bitfield.ID = iota
//		Mode
//		fieldCount
//	)
//
// An ID outside [0, FieldCount) is a contract violation and panics.
type ID int

// Access describes the operations permitted on a field. ReadOnly and
// WriteOnly are independent bits; ReadWrite is their union.
type Access uint8

const (
	AccessNone      Access = 0
	AccessReadOnly  Access = 1 << 0
	AccessWriteOnly Access = 1 << 1
	AccessReadWrite Access = AccessReadOnly | AccessWriteOnly
)

var accessNames = map[Access]string{
	AccessNone:      "none",
	AccessReadOnly:  "read-only",
	AccessWriteOnly: "write-only",
	AccessReadWrite: "read-write",
}

func (a Access) String() string {
	if s, ok := accessNames[a]; ok {
		return s
	}
	return "unknown"
}

// Readable reports whether Get is permitted.
func (a Access) Readable() bool { return a&AccessReadOnly != 0 }

// Writable reports whether Set is permitted.
func (a Access) Writable() bool { return a&AccessWriteOnly != 0 }

// Field describes one named bit field: a contiguous bit range within one
// word, with optional value constraints and access rights. A field's mask
// never crosses words.
//
// ByteOffset is an alternative way to state the owning word. Zero means
// unspecified; a byte offset of zero names the same word the zero Word
// index already does, so nothing is lost. When nonzero it must equal
// Word * sizeof(W); when Word is zero it derives Word during compilation.
//
// Default, Min and Max must each fit the field's own bit width. All-zero
// bounds are the unconstrained case: the layout carries no range claim for
// the field, and the representability checks hold vacuously.
type Field[W regbits.Word] struct {
	ByteOffset int
	Word       int
	LSB, MSB   uint8

	// CompoundOffset positions this field inside an externally composed
	// multi-field value. The masking logic never consults it; see
	// Set.Compound.
	CompoundOffset uint8

	Default W
	Min, Max W

	Access     Access
	MayOverlap bool
}

// Bits builds a read-write field spanning bits [lsb, msb] of word.
func Bits[W regbits.Word](word int, lsb, msb uint8) Field[W] {
	return Field[W]{Word: word, LSB: lsb, MSB: msb, Access: AccessReadWrite}
}

// Flag builds a single-bit read-write field at bit pos of word.
func Flag[W regbits.Word](word int, pos uint8) Field[W] {
	return Bits[W](word, pos, pos)
}

// WithAccess returns a copy of f restricted to the given access rights.
func (f Field[W]) WithAccess(a Access) Field[W] {
	f.Access = a
	return f
}

// WithDefault returns a copy of f with the given default (POR) value.
func (f Field[W]) WithDefault(def W) Field[W] {
	f.Default = def
	return f
}

// WithBounds returns a copy of f with the given allowed value range.
func (f Field[W]) WithBounds(min, max W) Field[W] {
	f.Min, f.Max = min, max
	return f
}

// Constrained reports whether the field carries a value range claim.
func (f Field[W]) Constrained() bool {
	return f.Min != 0 || f.Max != 0
}

// mask returns the field's bit mask within its word.
func (f Field[W]) mask() W {
	return Mask[W](f.LSB, f.MSB)
}
