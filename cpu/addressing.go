package cpu

import "sixfive/mask"

// An AddressingMode tells the CPU where to find an instruction's operand.
// Each mode consumes 0-2 bytes following the opcode (fetched via PC) and
// yields an effective address, a value, or both.
//
// Most modes can index the full 64 kB range, that is, 256 pages of 256
// bytes. The zero-page modes are confined to the first page: indexing
// wraps within it and never crosses out.
//
// https://www.nesdev.org/wiki/CPU_addressing_modes
// https://www.middle-engine.com/blog/posts/2020/06/23/programming-the-nes-the-6502-in-detail#addressing-modes
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand bytes
	Accumulator                       // operate on A directly
	Immediate                         // operand is the next byte itself
	ZeroPage                          // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX
	Relative  // branches: signed displacement from the post-operand PC
	Absolute
	AbsoluteX // may cross a page
	AbsoluteY // may cross a page
	Indirect  // JMP only
	IndirectX // indexed indirect: pointer found at (op+X) in page zero
	IndirectY // indirect indexed: pointer at op, then +Y; may cross a page
)

// Per-mode cycle costs, excluding the one-cycle opcode fetch the dispatch
// loop already charged. Reads of indexed modes add one more cycle when the
// effective address leaves the base page; stores and read-modify-write
// instructions always pay the worst case instead.
var (
	readCycles = map[AddressingMode]uint32{
		Immediate: 1,
		ZeroPage:  2,
		ZeroPageX: 3,
		ZeroPageY: 3,
		Absolute:  3,
		AbsoluteX: 3, // +1 on page cross
		AbsoluteY: 3, // +1 on page cross
		IndirectX: 5,
		IndirectY: 4, // +1 on page cross
	}

	storeCycles = map[AddressingMode]uint32{
		ZeroPage:  2,
		ZeroPageX: 3,
		ZeroPageY: 3,
		Absolute:  3,
		AbsoluteX: 4,
		AbsoluteY: 4,
		IndirectX: 5,
		IndirectY: 5,
	}

	rmwCycles = map[AddressingMode]uint32{
		Accumulator: 1,
		ZeroPage:    4,
		ZeroPageX:   5,
		Absolute:    5,
		AbsoluteX:   6,
	}
)

// resolve consumes the operand bytes of the given mode and returns the
// effective address, plus whether indexing carried the address onto a
// different page than the base.
func (c *Cpu) resolve(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {

	case Immediate:
		// the operand -is- the next instruction byte
		addr = c.PC
		c.PC++

	case ZeroPage:
		addr = uint16(c.fetch())

	case ZeroPageX:
		// the byte add wraps within page zero; 0xff+0x02 lands on
		// 0x01, not 0x101
		addr = uint16(c.fetch() + c.X)

	case ZeroPageY:
		addr = uint16(c.fetch() + c.Y)

	case Absolute:
		lo := c.fetch()
		hi := c.fetch()
		addr = mask.Word(hi, lo)

	case AbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		base := mask.Word(hi, lo)
		addr = base + uint16(c.X)
		crossed = !mask.SamePage(base, addr)

	case AbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		base := mask.Word(hi, lo)
		addr = base + uint16(c.Y)
		crossed = !mask.SamePage(base, addr)

	case Indirect:
		// JMP only. The pointer's high byte is fetched without a
		// carry into the page: a pointer at 0xxxff reads its high
		// byte from 0xxx00. Famous NMOS bug, faithfully reproduced.
		//
		// http://www.6502.org/tutorials/6502opcodes.html#JMP
		lo := c.fetch()
		hi := c.fetch()
		ptr := mask.Word(hi, lo)
		if lo == 0xff {
			addr = mask.Word(c.read(ptr&0xff00), c.read(ptr))
		} else {
			addr = mask.Word(c.read(ptr+1), c.read(ptr))
		}

	case IndirectX:
		// jump once into page zero at op+X, read 2 adjacent bytes
		// there, and concat them into the real address. both pointer
		// bytes come from page zero: op+X and op+X+1 wrap.
		zp := c.fetch() + c.X
		addr = mask.Word(c.read(uint16(zp+1)), c.read(uint16(zp)))

	case IndirectY:
		// unlike IndirectX, the Y offset is applied -after- the
		// indirection, so a page cross is possible and must be
		// checked. the pointer itself still wraps within page zero.
		zp := c.fetch()
		base := mask.Word(c.read(uint16(zp+1)), c.read(uint16(zp)))
		addr = base + uint16(c.Y)
		crossed = !mask.SamePage(base, addr)

	default:
		panic("mode has no effective address")
	}

	return addr, crossed
}

// operand resolves the mode and reads the operand byte, returning it with
// the cycles consumed (page-cross surcharge included).
func (c *Cpu) operand(mode AddressingMode) (byte, uint32) {
	addr, crossed := c.resolve(mode)
	cycles := readCycles[mode]
	if crossed {
		cycles++
	}
	return c.read(addr), cycles
}

// target resolves the mode for a store. Stores never take the page-cross
// surcharge; they always pay the worst-case constant.
func (c *Cpu) target(mode AddressingMode) (uint16, uint32) {
	addr, _ := c.resolve(mode)
	return addr, storeCycles[mode]
}

// modify runs a read-modify-write cycle: read the operand, pass it through
// f, write the result back (or through A in accumulator mode). Returns the
// result byte for flag updates and the cycles consumed.
func (c *Cpu) modify(mode AddressingMode, f func(byte) byte) (byte, uint32) {
	if mode == Accumulator {
		c.A = f(c.A)
		return c.A, rmwCycles[mode]
	}
	addr, _ := c.resolve(mode)
	v := f(c.read(addr))
	c.write(addr, v)
	return v, rmwCycles[mode]
}

// branchTarget consumes the displacement byte of a relative-mode operand
// and returns the destination: PC plus the sign-extended displacement,
// where PC already points past the operand.
func (c *Cpu) branchTarget() uint16 {
	rel := c.fetch()
	return c.PC + uint16(int16(int8(rel)))
}
