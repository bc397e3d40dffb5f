package cpu

import "sixfive/mask"

// Each instruction takes the addressing mode its opcode was decoded with
// and returns the cycles it consumed, excluding the opcode fetch. The
// operand plumbing (and any page-cross surcharge) lives in the mode
// helpers; the bodies below are pure register/flag semantics.
//
// how to read the obelisk guide:
// A,Z,N = A&M
// [target],[flags...] = [op]
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html (best)
// http://www.6502.org/tutorials/6502opcodes.html

// load group

// LDA - Load Accumulator
func (c *Cpu) LDA(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.A = v
	c.setZN(c.A)
	return n
}

// LDX - Load X Register
func (c *Cpu) LDX(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.X = v
	c.setZN(c.X)
	return n
}

// LDY - Load Y Register
func (c *Cpu) LDY(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.Y = v
	c.setZN(c.Y)
	return n
}

// store group: writes through the mode, no flags touched

// STA - Store Accumulator
func (c *Cpu) STA(mode AddressingMode) uint32 {
	addr, n := c.target(mode)
	c.write(addr, c.A)
	return n
}

// STX - Store X Register
func (c *Cpu) STX(mode AddressingMode) uint32 {
	addr, n := c.target(mode)
	c.write(addr, c.X)
	return n
}

// STY - Store Y Register
func (c *Cpu) STY(mode AddressingMode) uint32 {
	addr, n := c.target(mode)
	c.write(addr, c.Y)
	return n
}

// register transfers

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(AddressingMode) uint32 {
	c.X = c.A
	c.setZN(c.X)
	return 1
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(AddressingMode) uint32 {
	c.Y = c.A
	c.setZN(c.Y)
	return 1
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(AddressingMode) uint32 {
	c.X = c.SP
	c.setZN(c.X)
	return 1
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(AddressingMode) uint32 {
	c.A = c.X
	c.setZN(c.A)
	return 1
}

// TXS - Transfer X to Stack Pointer. The one transfer that leaves the
// flags alone.
func (c *Cpu) TXS(AddressingMode) uint32 {
	c.SP = c.X
	return 1
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(AddressingMode) uint32 {
	c.A = c.Y
	c.setZN(c.A)
	return 1
}

// stack group

// PHA - Push Accumulator
func (c *Cpu) PHA(AddressingMode) uint32 {
	c.push(c.A)
	return 2
}

// PHP - Push Processor Status. The pushed copy has the break bit and
// bit 5 set; they exist only on the stack.
func (c *Cpu) PHP(AddressingMode) uint32 {
	b := c.Status.Byte()
	b = mask.Set(b, bitBreak)
	b = mask.Set(b, bitUnused)
	c.push(b)
	return 2
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(AddressingMode) uint32 {
	c.A = c.pull()
	c.setZN(c.A)
	return 3
}

// PLP - Pull Processor Status. Break and bit 5 are masked off on load.
func (c *Cpu) PLP(AddressingMode) uint32 {
	c.Status = FromByte(c.pull())
	return 3
}

// logical group

// AND - Logical AND
func (c *Cpu) AND(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.A &= v
	c.setZN(c.A)
	return n
}

// EOR - Exclusive OR
func (c *Cpu) EOR(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.A ^= v
	c.setZN(c.A)
	return n
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.A |= v
	c.setZN(c.A)
	return n
}

// BIT - Bit Test. Z from the masked accumulator, N and V copied straight
// from bits 7 and 6 of the operand. A is untouched.
func (c *Cpu) BIT(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.Status.put(bitZero, c.A&v == 0)
	c.Status.put(bitNegative, mask.IsSet(v, mask.B7))
	c.Status.put(bitOverflow, mask.IsSet(v, mask.B6))
	return n
}

// arithmetic group

// adc adds the operand and the carry into A as a 9-bit sum. Carry out is
// the 9th bit; overflow is set when both inputs share a sign and the
// result does not. Decimal mode is not honored: the D flag is storable
// but the sum is always binary.
func (c *Cpu) adc(v byte) {
	var carry uint16
	if c.Status.Carry() {
		carry = 1
	}
	r := uint16(c.A) + uint16(v) + carry

	c.Status.put(bitCarry, r > 0xff)

	aSign := mask.IsSet(c.A, mask.B7)
	vSign := mask.IsSet(v, mask.B7)
	rSign := mask.IsSet(byte(r), mask.B7)
	c.Status.put(bitOverflow, aSign == vSign && aSign != rSign)

	c.A = byte(r)
	c.setZN(c.A)
}

// ADC - Add with Carry
func (c *Cpu) ADC(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.adc(v)
	return n
}

// sbc subtracts the operand and the borrow (the inverted carry) from A.
// Carry is set when no borrow out occurred.
func (c *Cpu) sbc(v byte) {
	borrow := int16(1)
	if c.Status.Carry() {
		borrow = 0
	}
	r := int16(c.A) - int16(v) - borrow

	c.Status.put(bitCarry, r >= 0)

	aSign := mask.IsSet(c.A, mask.B7)
	vSign := mask.IsSet(v, mask.B7)
	rSign := mask.IsSet(byte(r), mask.B7)
	c.Status.put(bitOverflow, aSign != vSign && aSign != rSign)

	c.A = byte(r)
	c.setZN(c.A)
}

// SBC - Subtract with Carry
func (c *Cpu) SBC(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.sbc(v)
	return n
}

// compare sets C/Z/N from reg - v without modifying the register.
func (c *Cpu) compare(reg byte, v byte) {
	c.Status.put(bitCarry, reg >= v)
	c.Status.put(bitZero, reg == v)
	c.Status.put(bitNegative, mask.IsSet(reg-v, mask.B7))
}

// CMP - Compare
func (c *Cpu) CMP(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.compare(c.A, v)
	return n
}

// CPX - Compare X Register
func (c *Cpu) CPX(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.compare(c.X, v)
	return n
}

// CPY - Compare Y Register
func (c *Cpu) CPY(mode AddressingMode) uint32 {
	v, n := c.operand(mode)
	c.compare(c.Y, v)
	return n
}

// increment/decrement group

// INC - Increment Memory
func (c *Cpu) INC(mode AddressingMode) uint32 {
	v, n := c.modify(mode, func(v byte) byte { return v + 1 })
	c.setZN(v)
	return n
}

// DEC - Decrement Memory
func (c *Cpu) DEC(mode AddressingMode) uint32 {
	v, n := c.modify(mode, func(v byte) byte { return v - 1 })
	c.setZN(v)
	return n
}

// INX - Increment X Register
func (c *Cpu) INX(AddressingMode) uint32 {
	c.X++
	c.setZN(c.X)
	return 1
}

// INY - Increment Y Register
func (c *Cpu) INY(AddressingMode) uint32 {
	c.Y++
	c.setZN(c.Y)
	return 1
}

// DEX - Decrement X Register
func (c *Cpu) DEX(AddressingMode) uint32 {
	c.X--
	c.setZN(c.X)
	return 1
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(AddressingMode) uint32 {
	c.Y--
	c.setZN(c.Y)
	return 1
}

// shift/rotate group

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(mode AddressingMode) uint32 {
	v, n := c.modify(mode, func(v byte) byte {
		c.Status.put(bitCarry, mask.IsSet(v, mask.B7)) // old bit 7
		return v << 1
	})
	c.setZN(v)
	return n
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(mode AddressingMode) uint32 {
	v, n := c.modify(mode, func(v byte) byte {
		c.Status.put(bitCarry, mask.IsSet(v, mask.B0)) // old bit 0
		return v >> 1
	})
	c.setZN(v)
	return n
}

// ROL - Rotate Left. The old carry rotates into bit 0.
func (c *Cpu) ROL(mode AddressingMode) uint32 {
	carry := c.Status.Carry()
	v, n := c.modify(mode, func(v byte) byte {
		c.Status.put(bitCarry, mask.IsSet(v, mask.B7))
		r := v << 1
		if carry {
			r = mask.Set(r, mask.B0)
		}
		return r
	})
	c.setZN(v)
	return n
}

// ROR - Rotate Right. The old carry rotates into bit 7.
func (c *Cpu) ROR(mode AddressingMode) uint32 {
	carry := c.Status.Carry()
	v, n := c.modify(mode, func(v byte) byte {
		c.Status.put(bitCarry, mask.IsSet(v, mask.B0))
		r := v >> 1
		if carry {
			r = mask.Set(r, mask.B7)
		}
		return r
	})
	c.setZN(v)
	return n
}

// branch group

// branch consumes the displacement operand, then moves PC if the
// condition holds. A taken branch costs one extra cycle, one more if the
// destination is on a different page than the post-operand PC.
func (c *Cpu) branch(taken bool) uint32 {
	target := c.branchTarget()
	n := uint32(1)
	if taken {
		n++
		if !mask.SamePage(c.PC, target) {
			n++
		}
		c.PC = target
	}
	return n
}

// BPL - Branch if Positive
func (c *Cpu) BPL(AddressingMode) uint32 { return c.branch(!c.Status.Negative()) }

// BMI - Branch if Minus
func (c *Cpu) BMI(AddressingMode) uint32 { return c.branch(c.Status.Negative()) }

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC(AddressingMode) uint32 { return c.branch(!c.Status.Overflow()) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS(AddressingMode) uint32 { return c.branch(c.Status.Overflow()) }

// BCC - Branch if Carry Clear
func (c *Cpu) BCC(AddressingMode) uint32 { return c.branch(!c.Status.Carry()) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS(AddressingMode) uint32 { return c.branch(c.Status.Carry()) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE(AddressingMode) uint32 { return c.branch(!c.Status.Zero()) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ(AddressingMode) uint32 { return c.branch(c.Status.Zero()) }

// jump/subroutine group

// JMP - Jump
func (c *Cpu) JMP(mode AddressingMode) uint32 {
	addr, _ := c.resolve(mode)
	c.PC = addr
	if mode == Indirect {
		return 4
	}
	return 2
}

// JSR - Jump to Subroutine. Pushes the address of the last operand byte
// (the return address minus one); RTS compensates.
func (c *Cpu) JSR(mode AddressingMode) uint32 {
	lo := c.fetch()
	hi := c.fetch()
	c.pushWord(c.PC - 1)
	c.PC = mask.Word(hi, lo)
	return 5
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(AddressingMode) uint32 {
	c.PC = c.pullWord() + 1
	return 5
}

// BRK - Force Interrupt. Pushes PC past the padding byte, then the status
// with break and bit 5 set, and vectors through 0xfffe. The hardware
// interrupt lines themselves are not modeled; BRK is the one software
// entry into the vector.
func (c *Cpu) BRK(AddressingMode) uint32 {
	c.pushWord(c.PC + 1)
	b := c.Status.Byte()
	b = mask.Set(b, bitBreak)
	b = mask.Set(b, bitUnused)
	c.push(b)
	c.Status.SetInterruptDisable()
	c.PC = mask.Word(c.read(BreakVector+1), c.read(BreakVector))
	return 6
}

// RTI - Return from Interrupt. Unlike RTS there is no +1: the pushed PC
// is the resume address itself.
func (c *Cpu) RTI(AddressingMode) uint32 {
	c.Status = FromByte(c.pull())
	c.PC = c.pullWord()
	return 5
}

// flag group

// CLC - Clear Carry Flag
func (c *Cpu) CLC(AddressingMode) uint32 {
	c.Status.ClearCarry()
	return 1
}

// SEC - Set Carry Flag
func (c *Cpu) SEC(AddressingMode) uint32 {
	c.Status.SetCarry()
	return 1
}

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(AddressingMode) uint32 {
	c.Status.ClearInterruptDisable()
	return 1
}

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(AddressingMode) uint32 {
	c.Status.SetInterruptDisable()
	return 1
}

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(AddressingMode) uint32 {
	c.Status.ClearOverflow()
	return 1
}

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(AddressingMode) uint32 {
	c.Status.ClearDecimal()
	return 1
}

// SED - Set Decimal Flag
func (c *Cpu) SED(AddressingMode) uint32 {
	c.Status.SetDecimal()
	return 1
}

// NOP - No Operation
func (c *Cpu) NOP(AddressingMode) uint32 {
	return 1
}
