// Package regbits provides bit-field manipulation over fixed-width machine
// words and indexed access to compile-time-enumerated registers.
//
// The library targets the structures embedded development keeps running into:
// hardware register maps, DMA descriptors, and memory-mapped device state.
// Field layouts are static data, validated before any accessor exists; the
// accessors themselves are a handful of mask-and-shift operations.
//
// # Packages
//
//	bitfield   - layout description, validation, compiled field accessors
//	csr        - runtime-indexed dispatch over per-register access primitives
//	csr/riscv  - RISC-V CSR enumeration and pmpaddr indexed helpers
//	errors     - structured error types shared by the above
//
// # Validation Model
//
// A layout is compiled once, typically into a package-level variable:
//
//	var regs = bitfield.MustCompile(layout)
//
// MustCompile panics on any layout inconsistency (overlapping fields,
// out-of-range bit indices, unrepresentable defaults), so a broken register
// map fails at program start rather than at first access. Compile returns
// the same violations as structured errors for build-time tooling.
package regbits
