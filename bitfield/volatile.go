package bitfield

import (
	"sync/atomic"
	"unsafe"

	"github.com/regbits/regbits"
	"github.com/regbits/regbits/errors"
)

// VolatileSet applies the Set algorithms through accesses the compiler
// cannot elide or reorder, for storage that changes underneath the program
// (memory-mapped hardware registers). 32- and 64-bit words go through
// sync/atomic; 8- and 16-bit words fall back to plain loads and stores,
// since Go has no sub-word atomics and MMIO maps on hosted targets use
// word-sized registers.
//
// Volatile access addresses compiler elision and reordering only. It is
// not cross-thread synchronization; sharing the backing words between
// goroutines still needs external coordination.
type VolatileSet[W regbits.Word] struct {
	c     *Compiled[W]
	words []W
}

// Volatile builds a volatile field-set over caller-owned storage,
// typically a slice constructed over a device's register block.
func (c *Compiled[W]) Volatile(words []W) VolatileSet[W] {
	if len(words) != c.layout.WordCount {
		panic(errors.New(errors.PhaseAccess, errors.KindWordBounds).
			Detail("storage has %d words, layout needs %d", len(words), c.layout.WordCount).
			Build())
	}
	return VolatileSet[W]{c: c, words: words}
}

// Set writes v into field f with a volatile read-modify-write of the
// owning word. Panics if f is not writable.
func (s *VolatileSet[W]) Set(f ID, v W) {
	cf := s.c.writable(f)
	p := &s.words[cf.word]
	storeVolatile(p, cf.insert(loadVolatile(p), v))
}

// Get reads field f through a volatile load. Panics if f is not readable.
func (s *VolatileSet[W]) Get(f ID) W {
	cf := s.c.readable(f)
	return cf.extract(loadVolatile(&s.words[cf.word]))
}

// Word snapshots the word owning f with one volatile load. Subsequent
// field reads through the view see the register as of snapshot time, even
// if the hardware updates it in between.
func (s *VolatileSet[W]) Word(f ID) View[W] {
	cf := s.c.readable(f)
	return View[W]{c: s.c, word: cf.word, value: loadVolatile(&s.words[cf.word])}
}

// Read reads f into out and returns the cached view of the owning word.
func (s *VolatileSet[W]) Read(f ID, out *W) View[W] {
	v := s.Word(f)
	*out = v.Get(f)
	return v
}

// ResetAll zeroes every backing word through volatile stores.
func (s *VolatileSet[W]) ResetAll() {
	for i := range s.words {
		storeVolatile(&s.words[i], 0)
	}
}

// loadVolatile performs a load the compiler must not elide. The size
// switch resolves per instantiation; only the matching branch survives.
func loadVolatile[W regbits.Word](p *W) W {
	switch unsafe.Sizeof(*p) {
	case 4:
		return W(atomic.LoadUint32((*uint32)(unsafe.Pointer(p))))
	case 8:
		return W(atomic.LoadUint64((*uint64)(unsafe.Pointer(p))))
	default:
		return *p
	}
}

func storeVolatile[W regbits.Word](p *W, v W) {
	switch unsafe.Sizeof(v) {
	case 4:
		atomic.StoreUint32((*uint32)(unsafe.Pointer(p)), uint32(v))
	case 8:
		atomic.StoreUint64((*uint64)(unsafe.Pointer(p)), uint64(v))
	default:
		*p = v
	}
}
