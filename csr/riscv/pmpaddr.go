package riscv

import (
	"github.com/regbits/regbits"
	"github.com/regbits/regbits/csr"
)

// PMPAddrCount is the number of pmpaddr registers in the base file.
const PMPAddrCount = 16

// PMPAddrTable builds the indexed dispatch table over pmpaddr0..pmpaddr15.
// PMP regions are configured by number at runtime, while each pmpaddr
// register is its own CSR immediate; this table is the bridge.
func PMPAddrTable[V regbits.Word](p csr.Primitives[CSR, V]) (*csr.Table[CSR, V], error) {
	return csr.New(p, PMPAddr0, PMPAddr15)
}

// MustPMPAddrTable is PMPAddrTable for package-level construction.
func MustPMPAddrTable[V regbits.Word](p csr.Primitives[CSR, V]) *csr.Table[CSR, V] {
	return csr.MustNew(p, PMPAddr0, PMPAddr15)
}
