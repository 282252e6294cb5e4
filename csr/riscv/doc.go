// Package riscv carries the RISC-V privileged-architecture register data
// the generic csr and bitfield machinery consumes: the CSR address
// enumeration, indexed helpers for the pmpaddr file, and the mstatus
// bit-field layout.
//
// CSR instructions (csrr, csrw and friends) encode the register number as
// a 12-bit immediate, so a runtime register index has to go through a
// dispatch table; see the csr package. This package supplies no hardware
// access of its own: the Primitives implementation comes from the target,
// an assembly shim on real silicon or a csr.RegFile in an emulator.
package riscv
