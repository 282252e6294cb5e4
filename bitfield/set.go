package bitfield

import (
	"github.com/regbits/regbits"
	"github.com/regbits/regbits/errors"
)

// Set is the runtime field-set: exactly WordCount words of raw storage
// viewed through a compiled layout. No field is materialized on its own;
// they are all views over the shared words. The zero Set is not usable;
// construct through Compiled.NewSet or Over.
type Set[W regbits.Word] struct {
	c     *Compiled[W]
	words []W
}

// NewSet allocates a zeroed field-set over the layout.
func (c *Compiled[W]) NewSet() Set[W] {
	return Set[W]{c: c, words: make([]W, c.layout.WordCount)}
}

// Over builds a field-set viewing caller-owned storage, e.g. a slice
// mapped over device memory. len(words) must equal the layout's word
// count.
func (c *Compiled[W]) Over(words []W) Set[W] {
	if len(words) != c.layout.WordCount {
		panic(errors.New(errors.PhaseAccess, errors.KindWordBounds).
			Detail("storage has %d words, layout needs %d", len(words), c.layout.WordCount).
			Build())
	}
	return Set[W]{c: c, words: words}
}

// Layout returns the compiled layout the set was built over.
func (s *Set[W]) Layout() *Compiled[W] { return s.c }

// Words exposes the raw backing storage.
func (s *Set[W]) Words() []W { return s.words }

// Clone returns a set with its own copy of the backing words.
func (s *Set[W]) Clone() Set[W] {
	words := make([]W, len(s.words))
	copy(words, s.words)
	return Set[W]{c: s.c, words: words}
}

// Set writes v into field f: the field's bits are cleared in the owning
// word and v is ORed in at position. Values wider than the field are
// truncated by masking. Panics if f is not writable.
func (s *Set[W]) Set(f ID, v W) {
	cf := s.c.writable(f)
	s.words[cf.word] = cf.insert(s.words[cf.word], v)
}

// Get reads field f. Panics if f is not readable.
func (s *Set[W]) Get(f ID) W {
	cf := s.c.readable(f)
	return cf.extract(s.words[cf.word])
}

// Word snapshots the word owning f and returns a view serving any field of
// that word from the cached copy. One fetch covers several field reads,
// and the reads stay consistent even if the storage changes in between.
func (s *Set[W]) Word(f ID) View[W] {
	cf := s.c.readable(f)
	return View[W]{c: s.c, word: cf.word, value: s.words[cf.word]}
}

// Read reads f into out and returns the cached view of the owning word, so
// further fields of the same word chain off a single fetch:
//
//	var mode, div uint32
//	s.Read(Mode, &mode).Read(Divider, &div)
func (s *Set[W]) Read(f ID, out *W) View[W] {
	v := s.Word(f)
	*out = v.Get(f)
	return v
}

// ResetAll zeroes every backing word.
func (s *Set[W]) ResetAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// ResetToDefaults programs every field's default value, the power-on-reset
// state of a register map. Fields are applied in layout order, so for
// deliberately aliased fields the later one wins.
func (s *Set[W]) ResetToDefaults() {
	s.ResetAll()
	for i := range s.c.fields {
		cf := &s.c.fields[i]
		s.words[cf.word] = cf.insert(s.words[cf.word], cf.def)
	}
}

// Compound assembles a multi-field value, placing each field's bits at its
// CompoundOffset. This is the consumer side of the layering the descriptor
// carries; the masking logic itself never uses CompoundOffset.
func (s *Set[W]) Compound(fs ...ID) W {
	var out W
	for _, f := range fs {
		cf := s.c.readable(f)
		out |= cf.extract(s.words[cf.word]) << s.c.layout.Fields[f].CompoundOffset
	}
	return out
}

// SetCompound scatters a composed value back into its fields, each taking
// its bits from v at its CompoundOffset.
func (s *Set[W]) SetCompound(v W, fs ...ID) {
	for _, f := range fs {
		cf := s.c.writable(f)
		part := v >> s.c.layout.Fields[f].CompoundOffset
		s.words[cf.word] = cf.insert(s.words[cf.word], part)
	}
}
