package csr

import "github.com/regbits/regbits"

// RegFile is an in-memory register file implementing Primitives: each
// thunk it hands out closes over one fixed slot. It stands in for real
// hardware in emulators and tests, and doubles as the backing store for
// soft-modelled register blocks.
type RegFile[R RegID, V regbits.Word] struct {
	base R
	regs []V
}

// NewRegFile builds a register file covering [base, base+count).
func NewRegFile[R RegID, V regbits.Word](base R, count int) *RegFile[R, V] {
	return &RegFile[R, V]{base: base, regs: make([]V, count)}
}

func (f *RegFile[R, V]) slot(reg R) int {
	if reg < f.base {
		return -1
	}
	i := int(reg - f.base)
	if i >= len(f.regs) {
		return -1
	}
	return i
}

// Reader returns the read thunk for reg, or nil outside the file.
func (f *RegFile[R, V]) Reader(reg R) ReadFunc[V] {
	i := f.slot(reg)
	if i < 0 {
		return nil
	}
	return func() V { return f.regs[i] }
}

// Writer returns the write thunk for reg, or nil outside the file.
func (f *RegFile[R, V]) Writer(reg R) WriteFunc[V] {
	i := f.slot(reg)
	if i < 0 {
		return nil
	}
	return func(v V) { f.regs[i] = v }
}

// Peek reads reg directly, outside the dispatch path.
func (f *RegFile[R, V]) Peek(reg R) V {
	i := f.slot(reg)
	if i < 0 {
		var zero V
		return zero
	}
	return f.regs[i]
}

// Poke writes reg directly, outside the dispatch path.
func (f *RegFile[R, V]) Poke(reg R, v V) {
	if i := f.slot(reg); i >= 0 {
		f.regs[i] = v
	}
}
