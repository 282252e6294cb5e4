package bitfield

import (
	"unsafe"

	"github.com/regbits/regbits"
)

// WordBits returns the width of W in bits.
func WordBits[W regbits.Word]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}

// Bit returns a word with only bit pos set. pos must be below the word
// width; larger values are a shift-amount fault at runtime.
func Bit[W regbits.Word](pos uint8) W {
	return W(1) << pos
}

// Mask returns a word with bits [lsb, msb] set, inclusive, and all others
// clear. Requires lsb <= msb < WordBits[W]().
//
// The width-limited mask is built first and then positioned, so no shift
// ever reaches the full word width even for msb == WordBits-1.
func Mask[W regbits.Word](lsb, msb uint8) W {
	span := Bit[W](msb - lsb)
	return (span | (span - 1)) << lsb
}

// capacity returns the largest value representable in bits [lsb, msb],
// i.e. the field mask shifted down to position zero.
func capacity[W regbits.Word](lsb, msb uint8) W {
	return Mask[W](lsb, msb) >> lsb
}
