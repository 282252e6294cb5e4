package bitfield

import (
	"github.com/regbits/regbits"
	"github.com/regbits/regbits/errors"
)

// View is a cached copy of one backing word. Every Get is computed from
// the snapshot, not from storage, so a sequence of field reads observes
// one consistent word value regardless of concurrent external mutation.
//
// A View is valid only as long as its originating access sequence; it
// must not be retained across a possible external write if snapshot-time
// consistency matters.
type View[W regbits.Word] struct {
	c     *Compiled[W]
	word  int
	value W
}

// Value returns the snapshotted word.
func (v View[W]) Value() W { return v.value }

// WordIndex returns which word the view caches.
func (v View[W]) WordIndex() int { return v.word }

// Get reads field f from the cached word. f must live in the cached word;
// asking for a field of another word is a contract violation and panics.
func (v View[W]) Get(f ID) W {
	cf := v.c.readable(f)
	if cf.word != v.word {
		panic(errors.WrongWord(int(f), v.word, cf.word))
	}
	return cf.extract(v.value)
}

// Read reads f into out and returns the view unchanged, allowing chained
// extraction of several fields from the one snapshot.
func (v View[W]) Read(f ID, out *W) View[W] {
	*out = v.Get(f)
	return v
}
