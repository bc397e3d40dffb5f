package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	var s Status

	assert.False(t, s.Carry())
	s.SetCarry()
	assert.True(t, s.Carry())
	s.ClearCarry()
	assert.False(t, s.Carry())

	s.SetZero()
	s.SetNegative()
	assert.True(t, s.Zero())
	assert.True(t, s.Negative())
	assert.False(t, s.Overflow())

	s.SetOverflow()
	s.ClearZero()
	assert.True(t, s.Overflow())
	assert.False(t, s.Zero())
	assert.True(t, s.Negative())

	// storable-only flags
	s = 0
	s.SetInterruptDisable()
	s.SetDecimal()
	s.SetBreak()
	assert.True(t, s.InterruptDisable())
	assert.True(t, s.Decimal())
	assert.True(t, s.Break())
	assert.Equal(t, s.Byte(), byte(0b0001_1100))
}

func TestStatusByteRoundTrip(t *testing.T) {
	var s Status
	s.SetCarry()
	s.SetOverflow()
	s.SetNegative()
	assert.Equal(t, s.Byte(), byte(0b1100_0001))

	// C, Z, I, D, V, N survive the round trip
	assert.Equal(t, FromByte(s.Byte()), s)

	// break and bit 5 are stack-only: masked off on load
	assert.Equal(t, FromByte(0b1111_1111).Byte(), byte(0b1100_1111))
}

func TestSetZN(t *testing.T) {
	var s Status

	s.setZN(0x00)
	assert.True(t, s.Zero())
	assert.False(t, s.Negative())

	s.setZN(0x80)
	assert.False(t, s.Zero())
	assert.True(t, s.Negative())

	// set -and- cleared, never one-way
	s.setZN(0x01)
	assert.False(t, s.Zero())
	assert.False(t, s.Negative())
}
