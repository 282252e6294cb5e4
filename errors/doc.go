// Package errors provides structured error types for the regbits library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending field and word indices plus
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindOverlap).
//		Field(3).
//		Word(0).
//		Detail("mask %#x intersects claimed bits %#x", mask, claimed).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overlap(3, 0, claimed, mask)
//	err := errors.AccessViolation(1, "write", "read-only")
//
// All errors implement the standard error interface and support errors.Is/As.
// Layout and access errors describe violations of static contracts: they are
// produced once, during layout compilation or as accessor panics, never on a
// validated hot path.
package errors
