package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, B3))
	assert.True(t, IsSet(0b1101_1000, B4))
	assert.False(t, IsSet(0b1101_1000, B5))
	assert.True(t, IsSet(0b1101_1000, B7))
	assert.False(t, IsSet(0b1101_1000, B0))

	assert.Equal(t, Set(0b0000_0000, B0), byte(0b0000_0001))
	assert.Equal(t, Set(0b0000_0000, B7), byte(0b1000_0000))
	assert.Equal(t, Set(0b1111_1111, B3), byte(0b1111_1111))

	assert.Equal(t, Clear(0b1111_1111, B0), byte(0b1111_1110))
	assert.Equal(t, Clear(0b1111_1111, B7), byte(0b0111_1111))
	assert.Equal(t, Clear(0b0000_0000, B3), byte(0b0000_0000))

	assert.Equal(t, Put(0b0000_0000, B6, true), byte(0b0100_0000))
	assert.Equal(t, Put(0b1111_1111, B6, false), byte(0b1011_1111))
}

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x12, 0x34), uint16(0x1234))
	assert.Equal(t, Word(0x00, 0xff), uint16(0x00ff))
	assert.Equal(t, Word(0xff, 0x00), uint16(0xff00))

	assert.Equal(t, Hi(0x1234), byte(0x12))
	assert.Equal(t, Lo(0x1234), byte(0x34))

	// round trip
	assert.Equal(t, Word(Hi(0xbeef), Lo(0xbeef)), uint16(0xbeef))
}

func TestSamePage(t *testing.T) {
	assert.True(t, SamePage(0x12f0, 0x12ff))
	assert.False(t, SamePage(0x12f0, 0x1310))
	assert.True(t, SamePage(0x0000, 0x00ff))
	assert.False(t, SamePage(0x00ff, 0x0100))
}
