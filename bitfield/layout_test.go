package bitfield

import (
	"errors"
	"testing"

	rberr "github.com/regbits/regbits/errors"
)

// flexLayout mirrors a typical multi-word register block: three fields in
// word 0, two splitting word 1, one covering word 2 whole.
func flexLayout[W interface{ ~uint32 | ~uint64 }]() Layout[W] {
	bits := uint8(WordBits[W]())
	return Layout[W]{
		Fields: []Field[W]{
			Bits[W](0, 0, 2),
			Bits[W](0, 3, 4),
			Bits[W](0, 5, bits-1),
			Bits[W](1, 0, bits/2),
			Bits[W](1, bits/2+1, bits-1),
			Bits[W](2, 0, bits-1),
		},
		WordCount:  5,
		FieldCount: 6,
	}
}

func TestValidateFlexLayout(t *testing.T) {
	l32 := flexLayout[uint32]()
	if err := l32.Validate(); err != nil {
		t.Fatalf("uint32 layout: %v", err)
	}
	l64 := flexLayout[uint64]()
	if err := l64.Validate(); err != nil {
		t.Fatalf("uint64 layout: %v", err)
	}
}

func TestValidatePredicates(t *testing.T) {
	l := flexLayout[uint32]()

	if l.HasOverlappingFields() {
		t.Error("disjoint layout reported overlapping")
	}
	if !l.ByteOffsetConsistent() {
		t.Error("layout without byte offsets reported inconsistent")
	}
	if !l.WordIndexWithinBounds() {
		t.Error("in-bounds words reported out of bounds")
	}
	if !l.BitIndexWithinTypeBounds() {
		t.Error("in-bounds bits reported out of bounds")
	}
	if !l.DefaultValueConsistent() {
		t.Error("zero defaults reported inconsistent")
	}
	if !l.ValueBoundsConsistent() {
		t.Error("zero bounds reported inconsistent")
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout[uint32]
		kind   rberr.Kind
	}{
		{
			name: "field count mismatch",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Flag[uint32](0, 0)},
				WordCount:  1,
				FieldCount: 2,
			},
			kind: rberr.KindFieldCount,
		},
		{
			name: "msb below lsb",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Bits[uint32](0, 4, 3)},
				WordCount:  1,
				FieldCount: 1,
			},
			kind: rberr.KindBitBounds,
		},
		{
			name: "msb beyond word width",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Bits[uint32](0, 0, 32)},
				WordCount:  1,
				FieldCount: 1,
			},
			kind: rberr.KindBitBounds,
		},
		{
			name: "word index out of bounds",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Flag[uint32](3, 0)},
				WordCount:  3,
				FieldCount: 1,
			},
			kind: rberr.KindWordBounds,
		},
		{
			name: "inconsistent byte offset",
			layout: Layout[uint32]{
				Fields: []Field[uint32]{
					{ByteOffset: 3, Word: 1, LSB: 0, MSB: 7, Access: AccessReadWrite},
				},
				WordCount:  2,
				FieldCount: 1,
			},
			kind: rberr.KindByteOffset,
		},
		{
			name: "default exceeds field width",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Bits[uint32](0, 0, 2).WithDefault(8)},
				WordCount:  1,
				FieldCount: 1,
			},
			kind: rberr.KindDefaultValue,
		},
		{
			name: "min above max",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Bits[uint32](0, 0, 3).WithBounds(5, 2)},
				WordCount:  1,
				FieldCount: 1,
			},
			kind: rberr.KindValueBounds,
		},
		{
			name: "max exceeds field width",
			layout: Layout[uint32]{
				Fields:     []Field[uint32]{Bits[uint32](0, 0, 2).WithBounds(0, 9)},
				WordCount:  1,
				FieldCount: 1,
			},
			kind: rberr.KindValueBounds,
		},
		{
			name: "overlapping fields",
			layout: Layout[uint32]{
				Fields: []Field[uint32]{
					Bits[uint32](0, 0, 4),
					Bits[uint32](0, 4, 7),
				},
				WordCount:  1,
				FieldCount: 2,
			},
			kind: rberr.KindOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var e *rberr.Error
			if !errors.As(err, &e) {
				t.Fatalf("error is %T, want *errors.Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind, tt.kind)
			}
		})
	}
}

func TestOverlapOptOut(t *testing.T) {
	overlapping := Layout[uint32]{
		Fields: []Field[uint32]{
			Bits[uint32](0, 0, 7),
			Bits[uint32](0, 0, 3),
		},
		WordCount:  1,
		FieldCount: 2,
	}
	if !overlapping.HasOverlappingFields() {
		t.Fatal("shared bits without MayOverlap must report overlap")
	}
	if overlapping.Validate() == nil {
		t.Fatal("expected validation failure")
	}

	// The same geometry passes once either field opts out.
	aliased := overlapping
	aliased.Fields = append([]Field[uint32]{}, overlapping.Fields...)
	aliased.Fields[1].MayOverlap = true
	if aliased.HasOverlappingFields() {
		t.Fatal("MayOverlap field must be excluded from the overlap check")
	}
	if err := aliased.Validate(); err != nil {
		t.Fatalf("aliased layout: %v", err)
	}
}

func TestByteOffsetOnlyFieldPredicates(t *testing.T) {
	// A field stated by byte offset alone must answer every check as the
	// word index it derives to, not as word 0. With a real word-0 field
	// alongside, a failure here shows up as a phantom overlap.
	l := Layout[uint32]{
		Fields: []Field[uint32]{
			{ByteOffset: 8, LSB: 0, MSB: 3, Access: AccessReadWrite},
			Bits[uint32](0, 0, 3),
		},
		WordCount:  3,
		FieldCount: 2,
	}

	if err := l.Validate(); err != nil {
		t.Fatalf("byte-offset-only field rejected: %v", err)
	}
	if !l.ByteOffsetConsistent() {
		t.Error("derived word reported inconsistent with its byte offset")
	}
	if l.HasOverlappingFields() {
		t.Error("fields in distinct words reported overlapping")
	}
	if !l.WordIndexWithinBounds() {
		t.Error("derived word 2 reported out of bounds")
	}

	// The derived word must still be bounds-checked.
	l.WordCount = 2
	if l.WordIndexWithinBounds() {
		t.Error("derived word 2 must be out of bounds for word count 2")
	}
	if l.Validate() == nil {
		t.Fatal("expected word bounds violation")
	}
}

func TestByteOffsetForms(t *testing.T) {
	// Byte offset alone resolves the word index during normalization.
	l := Layout[uint32]{
		Fields: []Field[uint32]{
			{ByteOffset: 8, LSB: 0, MSB: 7, Access: AccessReadWrite},
		},
		WordCount:  3,
		FieldCount: 1,
	}
	c := MustCompile(l)
	if got := c.WordIndex(0); got != 2 {
		t.Errorf("WordIndex = %d, want 2", got)
	}

	// Matching word and byte offset are accepted.
	l.Fields[0].Word = 2
	if err := l.Validate(); err != nil {
		t.Fatalf("consistent byte offset rejected: %v", err)
	}
	if !l.ByteOffsetConsistent() {
		t.Error("consistent byte offset reported inconsistent")
	}
	l.Fields[0].ByteOffset = 9
	if l.ByteOffsetConsistent() {
		t.Error("byte offset 9 for word 2 of uint32 must be inconsistent")
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile must panic on invalid layout")
		}
		var e *rberr.Error
		if err, ok := r.(error); !ok || !errors.As(err, &e) {
			t.Fatalf("panic value %v, want *errors.Error", r)
		}
	}()

	MustCompile(Layout[uint32]{
		Fields: []Field[uint32]{
			Bits[uint32](0, 0, 4),
			Bits[uint32](0, 2, 3),
		},
		WordCount:  1,
		FieldCount: 2,
	})
}
