package bitfield

import (
	"go.uber.org/zap"

	"github.com/regbits/regbits"
	"github.com/regbits/regbits/errors"
)

// compiledField is the per-field access plan: everything a masked
// read/write needs, precomputed once.
type compiledField[W regbits.Word] struct {
	mask   W
	def    W
	word   int
	lsb    uint8
	access Access
}

// Compiled is an immutable, validated layout with precomputed per-field
// masks. It is safe for concurrent use; all Sets over the same layout
// share one Compiled.
type Compiled[W regbits.Word] struct {
	layout Layout[W]
	fields []compiledField[W]
}

// Compile validates the layout and builds the access plan. A layout that
// fails any consistency check never yields an accessor.
func Compile[W regbits.Word](l Layout[W]) (*Compiled[W], error) {
	l = l.normalized()
	if err := l.Validate(); err != nil {
		return nil, err
	}

	fields := make([]compiledField[W], len(l.Fields))
	for i, f := range l.Fields {
		fields[i] = compiledField[W]{
			mask:   f.mask(),
			def:    f.Default,
			word:   f.Word,
			lsb:    f.LSB,
			access: f.Access,
		}
	}

	Logger().Debug("compiled layout",
		zap.Int("fields", len(fields)),
		zap.Int("words", l.WordCount),
		zap.Int("word_bits", WordBits[W]()))

	return &Compiled[W]{layout: l, fields: fields}, nil
}

// MustCompile is Compile for static layouts: it panics on any violation.
// Assigning the result to a package-level variable makes a broken layout
// fail at program start.
func MustCompile[W regbits.Word](l Layout[W]) *Compiled[W] {
	c, err := Compile(l)
	if err != nil {
		panic(err)
	}
	return c
}

// FieldCount returns the number of fields in the layout.
func (c *Compiled[W]) FieldCount() int { return len(c.fields) }

// WordCount returns the number of backing words.
func (c *Compiled[W]) WordCount() int { return c.layout.WordCount }

// Field returns the descriptor for f, as normalized during compilation.
func (c *Compiled[W]) Field(f ID) Field[W] {
	c.check(f)
	return c.layout.Fields[f]
}

// Mask returns the bit mask of f within its word.
func (c *Compiled[W]) Mask(f ID) W {
	c.check(f)
	return c.fields[f].mask
}

// WordIndex returns the owning word of f.
func (c *Compiled[W]) WordIndex(f ID) int {
	c.check(f)
	return c.fields[f].word
}

func (c *Compiled[W]) check(f ID) {
	if f < 0 || int(f) >= len(c.fields) {
		panic(errors.BadField(int(f), len(c.fields)))
	}
}

// extract computes the field's value from a fetched word.
func (cf *compiledField[W]) extract(word W) W {
	return (word & cf.mask) >> cf.lsb
}

// insert returns word with the field replaced by v, truncated by masking.
func (cf *compiledField[W]) insert(word, v W) W {
	return (word &^ cf.mask) | ((v << cf.lsb) & cf.mask)
}

// readable panics unless f permits Get; access rights are static data, so
// a violation is a caller bug, not a runtime condition.
func (c *Compiled[W]) readable(f ID) *compiledField[W] {
	c.check(f)
	cf := &c.fields[f]
	if !cf.access.Readable() {
		panic(errors.AccessViolation(int(f), "read", cf.access.String()))
	}
	return cf
}

// writable panics unless f permits Set.
func (c *Compiled[W]) writable(f ID) *compiledField[W] {
	c.check(f)
	cf := &c.fields[f]
	if !cf.access.Writable() {
		panic(errors.AccessViolation(int(f), "write", cf.access.String()))
	}
	return cf
}
