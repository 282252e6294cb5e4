package csr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rberr "github.com/regbits/regbits/errors"
)

func TestDispatchReachesDistinctRegisters(t *testing.T) {
	file := NewRegFile[uint16, uint64](0, 32)
	tbl, err := New[uint16, uint64](file, 0, 15)
	require.NoError(t, err)
	require.Equal(t, 16, tbl.Len())

	// Tag every register, then check each index lands on its own one.
	for reg := uint16(0); reg < 32; reg++ {
		file.Poke(reg, uint64(reg)*0x100+1)
	}
	for idx := 0; idx < 16; idx++ {
		v, ok := tbl.Read(idx)
		require.True(t, ok, "idx %d", idx)
		assert.Equal(t, uint64(idx)*0x100+1, v, "idx %d reaches register %d", idx, idx)
	}

	for idx := 0; idx < 16; idx++ {
		require.True(t, tbl.Write(idx, uint64(idx)+7))
	}
	for reg := uint16(0); reg < 16; reg++ {
		assert.Equal(t, uint64(reg)+7, file.Peek(reg))
	}
}

func TestDispatchOutOfRangeIsNoOp(t *testing.T) {
	file := NewRegFile[uint16, uint64](0, 32)
	tbl := MustNew[uint16, uint64](file, 0, 15)

	file.Poke(16, 0xDEAD)

	v, ok := tbl.Read(16)
	assert.False(t, ok)
	assert.Zero(t, v, "out-of-range read returns the zero value")

	assert.False(t, tbl.Write(16, 0xBEEF))
	assert.Equal(t, uint64(0xDEAD), file.Peek(16), "register 16 must never be touched")

	_, ok = tbl.Read(-1)
	assert.False(t, ok)
	assert.False(t, tbl.Write(-1, 1))
}

func TestDispatchOffsetRange(t *testing.T) {
	// Range not starting at the file base, the pmpaddr shape.
	file := NewRegFile[uint16, uint64](0x3B0, 16)
	tbl := MustNew[uint16, uint64](file, 0x3B0, 0x3BF)

	require.True(t, tbl.Write(5, 0x8000_0000))
	assert.Equal(t, uint64(0x8000_0000), file.Peek(0x3B5))

	v, ok := tbl.Read(5)
	require.True(t, ok)
	assert.Equal(t, uint64(0x8000_0000), v)
}

func TestDispatchSingleRegisterRange(t *testing.T) {
	file := NewRegFile[uint16, uint32](0x40, 1)
	tbl := MustNew[uint16, uint32](file, 0x40, 0x40)

	require.Equal(t, 1, tbl.Len())
	require.True(t, tbl.Write(0, 42))
	v, ok := tbl.Read(0)
	require.True(t, ok)
	assert.Equal(t, uint32(42), v)

	_, ok = tbl.Read(1)
	assert.False(t, ok)
}

func TestNewInvalidRange(t *testing.T) {
	file := NewRegFile[uint16, uint64](0, 8)

	_, err := New[uint16, uint64](file, 4, 3)
	require.Error(t, err)
	var e *rberr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, rberr.KindInvalidRange, e.Kind)

	assert.Panics(t, func() { MustNew[uint16, uint64](file, 4, 3) })
}

func TestNewMissingPrimitive(t *testing.T) {
	file := NewRegFile[uint16, uint64](0, 8)

	_, err := New[uint16, uint64](file, 0, 15)
	require.Error(t, err)
	var e *rberr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, rberr.KindNilPrimitive, e.Kind)
}
