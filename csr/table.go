package csr

import (
	"go.uber.org/zap"

	"github.com/regbits/regbits"
	"github.com/regbits/regbits/errors"
)

// RegID is the set of types usable as architecture register identifiers.
type RegID interface {
	~uint16 | ~uint32
}

// ReadFunc reads one fixed register.
type ReadFunc[V regbits.Word] func() V

// WriteFunc writes one fixed register.
type WriteFunc[V regbits.Word] func(V)

// Primitives is the architecture collaborator: it hands out the access
// thunk for one concrete register. Each thunk wraps whatever the target
// needs for that single register, typically one privileged instruction.
// A nil return means the register has no such primitive.
type Primitives[R RegID, V regbits.Word] interface {
	Reader(reg R) ReadFunc[V]
	Writer(reg R) WriteFunc[V]
}

// Table dispatches a runtime index across the contiguous register range
// [start, end]. Entry i accesses register start+i.
type Table[R RegID, V regbits.Word] struct {
	start R
	read  []ReadFunc[V]
	write []WriteFunc[V]
}

// New builds the per-register thunk tables by instantiating one primitive
// per slot. end < start is a construction error, as is a register in range
// for which the architecture provides no thunk; a constructed table can
// always dispatch any in-range index.
func New[R RegID, V regbits.Word](p Primitives[R, V], start, end R) (*Table[R, V], error) {
	if end < start {
		return nil, errors.InvalidRange(uint64(start), uint64(end))
	}

	count := int(end-start) + 1
	t := &Table[R, V]{
		start: start,
		read:  make([]ReadFunc[V], count),
		write: make([]WriteFunc[V], count),
	}

	for i := 0; i < count; i++ {
		reg := start + R(i)
		if t.read[i] = p.Reader(reg); t.read[i] == nil {
			return nil, errors.NilPrimitive(uint64(reg), "read")
		}
		if t.write[i] = p.Writer(reg); t.write[i] == nil {
			return nil, errors.NilPrimitive(uint64(reg), "write")
		}
	}

	Logger().Debug("built dispatch table",
		zap.Uint64("start", uint64(start)),
		zap.Uint64("end", uint64(end)),
		zap.Int("registers", count))

	return t, nil
}

// MustNew is New for static ranges: it panics on a construction error, so
// a malformed range in a package-level table fails at program start.
func MustNew[R RegID, V regbits.Word](p Primitives[R, V], start, end R) *Table[R, V] {
	t, err := New(p, start, end)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of registers the table covers.
func (t *Table[R, V]) Len() int { return len(t.read) }

// Start returns the first register of the range.
func (t *Table[R, V]) Start() R { return t.start }

// Read reads register start+idx. An out-of-range idx returns the zero
// value and false without touching any register.
func (t *Table[R, V]) Read(idx int) (V, bool) {
	if idx < 0 || idx >= len(t.read) {
		var zero V
		return zero, false
	}
	return t.read[idx](), true
}

// Write writes register start+idx and reports whether the index was in
// range. An out-of-range idx is a no-op.
func (t *Table[R, V]) Write(idx int, v V) bool {
	if idx < 0 || idx >= len(t.write) {
		return false
	}
	t.write[idx](v)
	return true
}
