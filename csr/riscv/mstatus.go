package riscv

import "github.com/regbits/regbits/bitfield"

// Field identifiers for the RV64 mstatus register, in layout order.
const (
	MStatusSIE bitfield.ID = iota
	MStatusMIE
	MStatusSPIE
	MStatusUBE
	MStatusMPIE
	MStatusSPP
	MStatusVS
	MStatusMPP
	MStatusFS
	MStatusXS
	MStatusMPRV
	MStatusSUM
	MStatusMXR
	MStatusTVM
	MStatusTW
	MStatusTSR
	MStatusUXL
	MStatusSXL
	MStatusSBE
	MStatusMBE
	MStatusSD

	mstatusFieldCount
)

// MStatusLayout is the RV64 machine status register. XS and SD summarize
// extension state and are read-only; everything else is software-writable.
// MPP can only legally hold a privilege level, which the value bounds
// record.
var MStatusLayout = bitfield.MustCompile(bitfield.Layout[uint64]{
	Fields: []bitfield.Field[uint64]{
		MStatusSIE:  bitfield.Flag[uint64](0, 1),
		MStatusMIE:  bitfield.Flag[uint64](0, 3),
		MStatusSPIE: bitfield.Flag[uint64](0, 5),
		MStatusUBE:  bitfield.Flag[uint64](0, 6),
		MStatusMPIE: bitfield.Flag[uint64](0, 7),
		MStatusSPP:  bitfield.Flag[uint64](0, 8),
		MStatusVS:   bitfield.Bits[uint64](0, 9, 10),
		MStatusMPP:  bitfield.Bits[uint64](0, 11, 12).WithBounds(0, 3),
		MStatusFS:   bitfield.Bits[uint64](0, 13, 14),
		MStatusXS:   bitfield.Bits[uint64](0, 15, 16).WithAccess(bitfield.AccessReadOnly),
		MStatusMPRV: bitfield.Flag[uint64](0, 17),
		MStatusSUM:  bitfield.Flag[uint64](0, 18),
		MStatusMXR:  bitfield.Flag[uint64](0, 19),
		MStatusTVM:  bitfield.Flag[uint64](0, 20),
		MStatusTW:   bitfield.Flag[uint64](0, 21),
		MStatusTSR:  bitfield.Flag[uint64](0, 22),
		MStatusUXL:  bitfield.Bits[uint64](0, 32, 33).WithDefault(2),
		MStatusSXL:  bitfield.Bits[uint64](0, 34, 35).WithDefault(2),
		MStatusSBE:  bitfield.Flag[uint64](0, 36),
		MStatusMBE:  bitfield.Flag[uint64](0, 37),
		MStatusSD:   bitfield.Flag[uint64](0, 63).WithAccess(bitfield.AccessReadOnly),
	},
	WordCount:  1,
	FieldCount: int(mstatusFieldCount),
})

// MStatusFieldNames maps mstatus field identifiers to their architectural
// names, in layout order.
var MStatusFieldNames = [...]string{
	MStatusSIE:  "SIE",
	MStatusMIE:  "MIE",
	MStatusSPIE: "SPIE",
	MStatusUBE:  "UBE",
	MStatusMPIE: "MPIE",
	MStatusSPP:  "SPP",
	MStatusVS:   "VS",
	MStatusMPP:  "MPP",
	MStatusFS:   "FS",
	MStatusXS:   "XS",
	MStatusMPRV: "MPRV",
	MStatusSUM:  "SUM",
	MStatusMXR:  "MXR",
	MStatusTVM:  "TVM",
	MStatusTW:   "TW",
	MStatusTSR:  "TSR",
	MStatusUXL:  "UXL",
	MStatusSXL:  "SXL",
	MStatusSBE:  "SBE",
	MStatusMBE:  "MBE",
	MStatusSD:   "SD",
}
