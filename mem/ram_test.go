package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamZeroed(t *testing.T) {
	r := NewRam()
	assert.Equal(t, r.Read(0x0000), byte(0))
	assert.Equal(t, r.Read(0x8000), byte(0))
	assert.Equal(t, r.Read(0xffff), byte(0))
}

func TestRamRoundTrip(t *testing.T) {
	r := NewRam()
	r.Write(0x0010, 0x42)
	r.Write(0xffff, 0xab)
	assert.Equal(t, r.Read(0x0010), byte(0x42))
	assert.Equal(t, r.Read(0xffff), byte(0xab))
}

func TestLoad(t *testing.T) {
	r := NewRam()
	r.Load(0x8000, []byte{0xa9, 0x42, 0x85, 0x10})
	assert.Equal(t, r.Read(0x8000), byte(0xa9))
	assert.Equal(t, r.Read(0x8003), byte(0x10))

	// loading past 0xffff wraps
	r.Load(0xffff, []byte{0x11, 0x22})
	assert.Equal(t, r.Read(0xffff), byte(0x11))
	assert.Equal(t, r.Read(0x0000), byte(0x22))
}

func TestLoadHex(t *testing.T) {
	r := NewRam()
	err := r.LoadHex(0x8000, "A9 42 85 10")
	assert.NoError(t, err)
	assert.Equal(t, r.Read(0x8000), byte(0xa9))
	assert.Equal(t, r.Read(0x8001), byte(0x42))
	assert.Equal(t, r.Read(0x8002), byte(0x85))
	assert.Equal(t, r.Read(0x8003), byte(0x10))

	assert.Error(t, r.LoadHex(0x8000, "A9 GG"))
	assert.Error(t, r.LoadHex(0x8000, "123")) // wider than a byte
}
