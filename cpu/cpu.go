// Package cpu implements the MOS Technology 6502 microprocessor: the
// architectural register file, the addressing-mode machinery, and an
// instruction decode/execute loop driven by a cycle budget.
//
// The CPU has no memory of its own (aside from a handful of small
// registers amounting to about 7 bytes). Memory is an external
// collaborator, borrowed mutably for the duration of each Execute call.

package cpu

import (
	"sixfive/mask"
	"sixfive/mem"
)

// ResetVector is the address PC is seeded to at power-on. The host is
// expected to place the first instruction there, or to overwrite PC before
// executing.
//
// fffa nmi
// fffc reset
// fffe irq
const ResetVector = 0xfffc

// BreakVector is the address BRK loads PC from.
const BreakVector = 0xfffe

// stackPage is ORed with SP to form the effective stack address. Stack
// instructions always access page 1 (0x0100-0x01ff).
const stackPage = 0x0100

// Cpu is the architectural state of the processor.
//
// https://problemkaputt.de/everynes.htm#cpuregistersandflags
// https://www.nesdev.org/wiki/CPU_ALL#CPU_2
type Cpu struct {
	// PC is a 2-byte (word) memory address that increments (almost)
	// continuously. The byte located at this address provides the
	// opcode of the next instruction to execute. Wraps modulo 2^16.
	PC uint16

	// SP holds the low byte of the next free stack slot; the effective
	// address is always 0x0100|SP. Pushes decrement, pulls increment,
	// both wrapping modulo 2^8.
	SP byte

	A byte // accumulator
	X byte
	Y byte

	Status Status

	mem mem.Memory // borrowed by Execute/Step; nil between calls
}

// New returns a CPU in its power-on state: PC at the reset vector, SP at
// the top of the stack page, registers and flags cleared.
func New() *Cpu {
	return &Cpu{
		PC: ResetVector,
		SP: 0xff,
	}
}

// read reads one byte from the given addr.
func (c *Cpu) read(addr uint16) byte {
	return c.mem.Read(addr)
}

// write passes data to the memory collaborator, which performs the store.
func (c *Cpu) write(addr uint16, data byte) {
	c.mem.Write(addr, data)
}

// fetch consumes the next byte of the instruction stream, post-
// incrementing PC.
func (c *Cpu) fetch() byte {
	b := c.read(c.PC)
	c.PC++
	return b
}

// push writes a byte to the current stack slot, then decrements SP.
func (c *Cpu) push(b byte) {
	c.write(stackPage|uint16(c.SP), b)
	c.SP--
}

// pull increments SP, then reads the byte at the new stack slot.
func (c *Cpu) pull() byte {
	c.SP++
	return c.read(stackPage | uint16(c.SP))
}

// pushWord pushes a 16-bit word, high byte first, so that two pulls
// restore it low byte first.
func (c *Cpu) pushWord(w uint16) {
	c.push(mask.Hi(w))
	c.push(mask.Lo(w))
}

func (c *Cpu) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return mask.Word(hi, lo)
}

// setZN updates the Zero and Negative flags from a result byte.
func (c *Cpu) setZN(v byte) { c.Status.setZN(v) }

// Step fetches, decodes and executes a single instruction against m,
// returning the number of cycles it consumed (including the one-cycle
// opcode fetch). An unrecognized opcode byte is reported to the diagnostic
// sink and costs only its fetch; execution continues at the next byte.
func (c *Cpu) Step(m mem.Memory) uint32 {
	c.mem = m
	defer func() { c.mem = nil }()

	pc := c.PC
	b := c.fetch()
	op, legal := Opcodes[b]
	if !legal {
		logf("unknown opcode 0x%02X at 0x%04X", b, pc)
		return 1
	}
	return 1 + op.Instruction(c, op.Mode)
}

// Execute runs instructions against m until the cycle budget is spent.
// The budget is advisory: an instruction that would overrun the remaining
// budget still completes, and the loop terminates after it finishes.
// Re-invoke with a fresh budget to continue.
func (c *Cpu) Execute(cycles uint32, m mem.Memory) {
	for cycles > 0 {
		spent := c.Step(m)
		if spent >= cycles {
			break
		}
		cycles -= spent
	}
}
