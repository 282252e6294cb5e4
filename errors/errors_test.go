package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseLayout,
				Kind:   KindOverlap,
				Field:  3,
				Word:   1,
				Detail: "mask 0x18 intersects claimed bits 0x1f",
			},
			contains: []string{"[layout]", "overlap", "field 3", "word 1", "0x18"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDispatch,
				Kind:  KindInvalidRange,
				Field: -1,
				Word:  -1,
			},
			contains: []string{"[dispatch]", "invalid_range"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLayout,
				Kind:   KindFieldCount,
				Field:  -1,
				Word:   -1,
				Detail: "declared field count 6, layout has 5",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[layout]", "field_count", "caused by", "underlying error"},
		},
		{
			name: "word without field",
			err: &Error{
				Phase: PhaseLayout,
				Kind:  KindWordBounds,
				Field: -1,
				Word:  7,
			},
			contains: []string{"[layout]", "word_bounds", "at word 7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(PhaseLayout, KindByteOffset).Cause(cause).Build()

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := Overlap(0, 0, 0x7, 0x3)
	b := &Error{Phase: PhaseLayout, Kind: KindOverlap}
	c := &Error{Phase: PhaseLayout, Kind: KindWordBounds}

	if !errors.Is(a, b) {
		t.Error("errors with same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseAccess, KindAccessViolation).
		Field(2).
		Detail("write of %s field", "read-only").
		Build()

	if err.Phase != PhaseAccess || err.Kind != KindAccessViolation {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Field != 2 {
		t.Errorf("field = %d, want 2", err.Field)
	}
	if err.Word != -1 {
		t.Errorf("word = %d, want -1 (unset)", err.Word)
	}
	if err.Detail != "write of read-only field" {
		t.Errorf("detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err  *Error
		kind Kind
	}{
		{Overlap(0, 0, 1, 1), KindOverlap},
		{WordBounds(1, 5, 5), KindWordBounds},
		{BitBounds(2, 4, 3, 32), KindBitBounds},
		{ByteOffset(0, 3, 1, 4), KindByteOffset},
		{DefaultValue(0, 8, 7), KindDefaultValue},
		{ValueBounds(0, 2, 1, 7), KindValueBounds},
		{FieldCount(6, 5), KindFieldCount},
		{BadField(9, 6), KindBadField},
		{AccessViolation(0, "write", "read-only"), KindAccessViolation},
		{InvalidRange(0x3b0, 0x3af), KindInvalidRange},
		{NilPrimitive(0x3b0, "read"), KindNilPrimitive},
	}

	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
		}
		if tt.err.Error() == "" {
			t.Errorf("%s: empty error message", tt.kind)
		}
	}
}
