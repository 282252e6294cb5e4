// Package bitfield provides masked access to named bit fields packed into
// fixed-width machine words.
//
// A layout is an ordered table of field descriptors over a word type:
//
//	const (
//		Enable bitfield.ID = iota
//		Mode
//		Divider
//		fieldCount
//	)
//
//	var ctrl = bitfield.MustCompile(bitfield.Layout[uint32]{
//		Fields: []bitfield.Field[uint32]{
//			Enable:  bitfield.Flag[uint32](0, 0),
//			Mode:    bitfield.Bits[uint32](0, 1, 2),
//			Divider: bitfield.Bits[uint32](0, 8, 15),
//		},
//		WordCount:  1,
//		FieldCount: int(fieldCount),
//	})
//
// # Validation
//
// Compile runs the full set of layout checks before any accessor exists:
// field overlap (per word, honoring MayOverlap), word and bit index bounds,
// byte offset consistency, and representability of default/min/max inside
// the field's own mask. MustCompile in a package-level var makes a broken
// layout fail at program start.
//
// # Accessors
//
// Set holds exactly WordCount words of raw storage. Get and Set are masked
// read-modify-write against the owning word; values wider than the field
// are truncated by masking. Word snapshots one word so several fields can
// be read from a single fetch:
//
//	w := s.Word(Mode)
//	mode, div := w.Get(Mode), w.Get(Divider)
//
// The snapshot is served from the cached copy, which keeps multi-field
// reads consistent when the backing storage is hardware that can change
// between accesses.
//
// # Volatile Storage
//
// VolatileSet applies the same algorithms through accesses the compiler
// cannot elide or reorder: sync/atomic loads and stores for 32- and 64-bit
// words. This addresses compiler reordering for memory-mapped registers; it
// is not a substitute for cross-thread synchronization.
//
// # Contract Violations
//
// Out-of-range field identifiers, access-right violations, and word-view
// mismatches are caller errors against static contracts. They panic with a
// structured *errors.Error; validated programs never hit these paths, so
// the accessors carry no error returns.
package bitfield
