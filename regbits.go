package regbits

// Word is the set of unsigned machine word types a field layout can be
// defined over. The word type fixes the width of every storage access the
// accessors perform.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}
