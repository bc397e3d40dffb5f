package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfive/mem"
)

// load places a program image at addr and returns a CPU with PC pointing
// at it, borrowing the returned ram for direct Step calls.
func load(addr uint16, image ...byte) (*Cpu, *mem.Ram) {
	r := mem.NewRam()
	r.Load(addr, image)
	c := New()
	c.PC = addr
	return c, r
}

func TestZeroPageXWraps(t *testing.T) {
	// operand 0xff + X 0x02 lands on 0x01, not 0x0101
	c, r := load(0x8000, 0xb5, 0xff) // LDA $ff,X
	c.X = 0x02
	r.Write(0x0001, 0x7e)
	r.Write(0x0101, 0xaa) // must not be read

	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x7e))
	assert.Equal(t, spent, uint32(4))
}

func TestZeroPageYWraps(t *testing.T) {
	c, r := load(0x8000, 0xb6, 0xfe) // LDX $fe,Y
	c.Y = 0x05
	r.Write(0x0003, 0x11)

	c.Step(r)
	assert.Equal(t, c.X, byte(0x11))
}

func TestAbsoluteXPageCross(t *testing.T) {
	// base 0x12f0 + X 0x20 = 0x1310 crosses a page: one extra cycle
	c, r := load(0x8000, 0xbd, 0xf0, 0x12) // LDA $12f0,X
	c.X = 0x20
	r.Write(0x1310, 0x42)

	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x42))
	assert.Equal(t, spent, uint32(5))
}

func TestAbsoluteXSamePage(t *testing.T) {
	c, r := load(0x8000, 0xbd, 0x00, 0x12) // LDA $1200,X
	c.X = 0x20
	r.Write(0x1220, 0x42)

	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x42))
	assert.Equal(t, spent, uint32(4))
}

func TestIndirectXWraps(t *testing.T) {
	// operand 0xfe + X 0x02 wraps to 0x00: pointer bytes at 0x00, 0x01
	c, r := load(0x8000, 0xa1, 0xfe) // LDA ($fe,X)
	c.X = 0x02
	r.Write(0x0000, 0x34)
	r.Write(0x0001, 0x12)
	r.Write(0x1234, 0x99)

	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x99))
	assert.Equal(t, spent, uint32(6))
}

func TestIndirectYPointerWraps(t *testing.T) {
	// the pointer's high byte comes from (op+1) mod 256
	c, r := load(0x8000, 0xb1, 0xff) // LDA ($ff),Y
	c.Y = 0x00
	r.Write(0x00ff, 0x28)
	r.Write(0x0000, 0x40) // high byte, wrapped
	r.Write(0x4028, 0x55)

	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x55))
	assert.Equal(t, spent, uint32(5))
}

func TestIndirectYPageCross(t *testing.T) {
	c, r := load(0x8000, 0xb1, 0x86) // LDA ($86),Y
	c.Y = 0x10
	r.Write(0x0086, 0xf8)
	r.Write(0x0087, 0x40)
	r.Write(0x4108, 0x77) // 0x40f8 + 0x10 crosses into page 0x41

	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x77))
	assert.Equal(t, spent, uint32(6))
}

func TestStoreNoPageCrossSurcharge(t *testing.T) {
	// stores always pay the worst case, crossed or not
	c, r := load(0x8000, 0x9d, 0xf0, 0x12) // STA $12f0,X
	c.A = 0x42
	c.X = 0x20
	assert.Equal(t, c.Step(r), uint32(5))
	assert.Equal(t, r.Read(0x1310), byte(0x42))

	c, r = load(0x8000, 0x9d, 0x00, 0x12) // STA $1200,X, same page
	c.A = 0x42
	c.X = 0x20
	assert.Equal(t, c.Step(r), uint32(5))

	c, r = load(0x8000, 0x91, 0x86) // STA ($86),Y, no cross
	c.A = 0x42
	c.Y = 0x01
	r.Write(0x0086, 0x00)
	r.Write(0x0087, 0x40)
	assert.Equal(t, c.Step(r), uint32(6))
	assert.Equal(t, r.Read(0x4001), byte(0x42))
}

func TestJmpIndirectPageBug(t *testing.T) {
	// a pointer at 0xxxff fetches its high byte from 0xxx00
	c, r := load(0x8000, 0x6c, 0xff, 0x30) // JMP ($30ff)
	r.Write(0x30ff, 0x40)
	r.Write(0x3000, 0x50) // used
	r.Write(0x3100, 0x60) // not used

	spent := c.Step(r)
	assert.Equal(t, c.PC, uint16(0x5040))
	assert.Equal(t, spent, uint32(5))
}

func TestImmediateOperandAdvancesPC(t *testing.T) {
	c, r := load(0x8000, 0xa9, 0x42) // LDA #$42
	spent := c.Step(r)
	assert.Equal(t, c.A, byte(0x42))
	assert.Equal(t, c.PC, uint16(0x8002))
	assert.Equal(t, spent, uint32(2))
}
