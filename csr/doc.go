// Package csr dispatches a runtime register index to one of several
// registers that are only individually addressable.
//
// CSR-style instruction sets encode the register number as an immediate:
// there is one access operation per register, and no instruction that takes
// the register number from a runtime value. Reaching "register start+i" for
// a runtime i therefore needs a table of per-register thunks built ahead of
// time.
//
// Table is that table. It is built once from an architecture's Primitives
// (one read and one write thunk instantiated per register in [start, end])
// and dispatches an index in O(1):
//
//	tbl := csr.MustNew[riscv.CSR, uint64](prims, riscv.PMPAddr0, riscv.PMPAddr15)
//	v, ok := tbl.Read(3) // pmpaddr3
//
// An out-of-range index is the only condition not known until runtime; it
// is a side-effect-free miss (zero value, ok=false), never a dereference
// past the table.
//
// Tables are immutable after construction and safe for concurrent use.
package csr
