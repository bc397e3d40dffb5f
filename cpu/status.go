package cpu

import "sixfive/mask"

// Status is the processor status register (P): 8 flags packed into one
// byte. It is the sole authority for flags; every query goes through it.
//
// 7654 3210
// NV1B DIZC
//
// https://www.nesdev.org/wiki/Status_flags#Flags
type Status byte

const (
	bitCarry     mask.BitIndex = iota // unsigned overflow / no-borrow
	bitZero                           // result byte == 0
	bitInterrupt                      // storable only; no IRQ model here
	bitDecimal                        // storable only; BCD not modeled
	bitBreak                          // storable; set on the byte PHP/BRK push
	bitUnused                         // bit 5; reads as clear
	bitOverflow                       // signed (two's-complement) overflow
	bitNegative                       // bit 7 of the result byte
)

// Byte packs the register into a single byte. PHP and BRK push this byte
// with the break bit and bit 5 additionally set.
func (s Status) Byte() byte { return byte(s) }

// FromByte rebuilds the register from a byte, as pulled by PLP. The break
// bit and bit 5 exist only on the stack copy and are masked off on load.
func FromByte(b byte) Status {
	b = mask.Clear(b, bitBreak)
	b = mask.Clear(b, bitUnused)
	return Status(b)
}

func (s Status) flag(pos mask.BitIndex) bool { return mask.IsSet(byte(s), pos) }
func (s *Status) put(pos mask.BitIndex, on bool) { *s = Status(mask.Put(byte(*s), pos, on)) }

// Carry flag (bit 0)

func (s Status) Carry() bool { return s.flag(bitCarry) }
func (s *Status) SetCarry() { s.put(bitCarry, true) }
func (s *Status) ClearCarry() { s.put(bitCarry, false) }

// Zero flag (bit 1)

func (s Status) Zero() bool { return s.flag(bitZero) }
func (s *Status) SetZero() { s.put(bitZero, true) }
func (s *Status) ClearZero() { s.put(bitZero, false) }

// Interrupt disable (bit 2)

func (s Status) InterruptDisable() bool { return s.flag(bitInterrupt) }
func (s *Status) SetInterruptDisable() { s.put(bitInterrupt, true) }
func (s *Status) ClearInterruptDisable() { s.put(bitInterrupt, false) }

// Decimal mode (bit 3)

func (s Status) Decimal() bool { return s.flag(bitDecimal) }
func (s *Status) SetDecimal() { s.put(bitDecimal, true) }
func (s *Status) ClearDecimal() { s.put(bitDecimal, false) }

// Break command (bit 4)

func (s Status) Break() bool { return s.flag(bitBreak) }
func (s *Status) SetBreak() { s.put(bitBreak, true) }
func (s *Status) ClearBreak() { s.put(bitBreak, false) }

// Overflow flag (bit 6)

func (s Status) Overflow() bool { return s.flag(bitOverflow) }
func (s *Status) SetOverflow() { s.put(bitOverflow, true) }
func (s *Status) ClearOverflow() { s.put(bitOverflow, false) }

// Negative flag (bit 7)

func (s Status) Negative() bool { return s.flag(bitNegative) }
func (s *Status) SetNegative() { s.put(bitNegative, true) }
func (s *Status) ClearNegative() { s.put(bitNegative, false) }

// setZN sets or clears Zero and Negative from a result byte. Almost every
// instruction that produces a result routes it through here; no other
// flags are implicitly touched.
func (s *Status) setZN(v byte) {
	s.put(bitZero, v == 0)
	s.put(bitNegative, mask.IsSet(v, mask.B7))
}
