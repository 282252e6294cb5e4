package riscv

import "github.com/regbits/regbits/bitfield"

// Field identifiers for the fcsr register, in layout order.
const (
	FCSRNX bitfield.ID = iota // inexact
	FCSRUF                    // underflow
	FCSROF                    // overflow
	FCSRDZ                    // divide by zero
	FCSRNV                    // invalid operation
	FCSRFRM                   // dynamic rounding mode

	fcsrFieldCount
)

// FCSRLayout is the floating-point control and status register: the five
// accrued exception flags plus the rounding mode. The flags alias the
// fflags CSR and the rounding mode aliases frm; through fcsr they are all
// plainly read-write.
var FCSRLayout = bitfield.MustCompile(bitfield.Layout[uint64]{
	Fields: []bitfield.Field[uint64]{
		FCSRNX:  bitfield.Flag[uint64](0, 0),
		FCSRUF:  bitfield.Flag[uint64](0, 1),
		FCSROF:  bitfield.Flag[uint64](0, 2),
		FCSRDZ:  bitfield.Flag[uint64](0, 3),
		FCSRNV:  bitfield.Flag[uint64](0, 4),
		FCSRFRM: bitfield.Bits[uint64](0, 5, 7).WithBounds(0, 4),
	},
	WordCount:  1,
	FieldCount: int(fcsrFieldCount),
})

// FCSRFieldNames maps fcsr field identifiers to their architectural names.
var FCSRFieldNames = [...]string{
	FCSRNX:  "NX",
	FCSRUF:  "UF",
	FCSROF:  "OF",
	FCSRDZ:  "DZ",
	FCSRNV:  "NV",
	FCSRFRM: "FRM",
}
