package cpu

// An Opcode pairs an instruction with the addressing mode its byte value
// encodes. Multiple opcodes execute the same instruction, differing only
// in how the operand is retrieved.
//
// Cycle counts are not stored here: the mode helpers charge the per-mode
// cost (and any page-cross surcharge) and each instruction returns its
// total, so the table stays pure dispatch.
type Opcode struct {
	Mode AddressingMode

	// Instruction executes the semantics and returns the cycles
	// consumed, excluding the opcode fetch.
	Instruction func(c *Cpu, mode AddressingMode) uint32

	Name string // for diagnostics and the debugger
}

// Opcodes lists the 151 byte values the CPU recognises, mapped to 56
// instructions. Any other byte is reported to the diagnostic sink and
// skipped.
//
// Generated from http://www.6502.org/tutorials/6502opcodes.html
var Opcodes = map[byte]Opcode{
	0xa9: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: Immediate},
	0xa5: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: ZeroPage},
	0xb5: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: ZeroPageX},
	0xad: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: Absolute},
	0xbd: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: AbsoluteX},
	0xb9: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: AbsoluteY},
	0xa1: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: IndirectX},
	0xb1: {Instruction: (*Cpu).LDA, Name: "LDA", Mode: IndirectY},

	0xa2: {Instruction: (*Cpu).LDX, Name: "LDX", Mode: Immediate},
	0xa6: {Instruction: (*Cpu).LDX, Name: "LDX", Mode: ZeroPage},
	0xb6: {Instruction: (*Cpu).LDX, Name: "LDX", Mode: ZeroPageY},
	0xae: {Instruction: (*Cpu).LDX, Name: "LDX", Mode: Absolute},
	0xbe: {Instruction: (*Cpu).LDX, Name: "LDX", Mode: AbsoluteY},

	0xa0: {Instruction: (*Cpu).LDY, Name: "LDY", Mode: Immediate},
	0xa4: {Instruction: (*Cpu).LDY, Name: "LDY", Mode: ZeroPage},
	0xb4: {Instruction: (*Cpu).LDY, Name: "LDY", Mode: ZeroPageX},
	0xac: {Instruction: (*Cpu).LDY, Name: "LDY", Mode: Absolute},
	0xbc: {Instruction: (*Cpu).LDY, Name: "LDY", Mode: AbsoluteX},

	0x85: {Instruction: (*Cpu).STA, Name: "STA", Mode: ZeroPage},
	0x95: {Instruction: (*Cpu).STA, Name: "STA", Mode: ZeroPageX},
	0x8d: {Instruction: (*Cpu).STA, Name: "STA", Mode: Absolute},
	0x9d: {Instruction: (*Cpu).STA, Name: "STA", Mode: AbsoluteX},
	0x99: {Instruction: (*Cpu).STA, Name: "STA", Mode: AbsoluteY},
	0x81: {Instruction: (*Cpu).STA, Name: "STA", Mode: IndirectX},
	0x91: {Instruction: (*Cpu).STA, Name: "STA", Mode: IndirectY},

	0x86: {Instruction: (*Cpu).STX, Name: "STX", Mode: ZeroPage},
	0x96: {Instruction: (*Cpu).STX, Name: "STX", Mode: ZeroPageY},
	0x8e: {Instruction: (*Cpu).STX, Name: "STX", Mode: Absolute},

	0x84: {Instruction: (*Cpu).STY, Name: "STY", Mode: ZeroPage},
	0x94: {Instruction: (*Cpu).STY, Name: "STY", Mode: ZeroPageX},
	0x8c: {Instruction: (*Cpu).STY, Name: "STY", Mode: Absolute},

	// register transfers
	0xaa: {Instruction: (*Cpu).TAX, Name: "TAX", Mode: Implied},
	0xa8: {Instruction: (*Cpu).TAY, Name: "TAY", Mode: Implied},
	0xba: {Instruction: (*Cpu).TSX, Name: "TSX", Mode: Implied},
	0x8a: {Instruction: (*Cpu).TXA, Name: "TXA", Mode: Implied},
	0x9a: {Instruction: (*Cpu).TXS, Name: "TXS", Mode: Implied},
	0x98: {Instruction: (*Cpu).TYA, Name: "TYA", Mode: Implied},

	// stack
	0x48: {Instruction: (*Cpu).PHA, Name: "PHA", Mode: Implied},
	0x08: {Instruction: (*Cpu).PHP, Name: "PHP", Mode: Implied},
	0x68: {Instruction: (*Cpu).PLA, Name: "PLA", Mode: Implied},
	0x28: {Instruction: (*Cpu).PLP, Name: "PLP", Mode: Implied},

	0x29: {Instruction: (*Cpu).AND, Name: "AND", Mode: Immediate},
	0x25: {Instruction: (*Cpu).AND, Name: "AND", Mode: ZeroPage},
	0x35: {Instruction: (*Cpu).AND, Name: "AND", Mode: ZeroPageX},
	0x2d: {Instruction: (*Cpu).AND, Name: "AND", Mode: Absolute},
	0x3d: {Instruction: (*Cpu).AND, Name: "AND", Mode: AbsoluteX},
	0x39: {Instruction: (*Cpu).AND, Name: "AND", Mode: AbsoluteY},
	0x21: {Instruction: (*Cpu).AND, Name: "AND", Mode: IndirectX},
	0x31: {Instruction: (*Cpu).AND, Name: "AND", Mode: IndirectY},

	0x49: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: Immediate},
	0x45: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: ZeroPage},
	0x55: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: ZeroPageX},
	0x4d: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: Absolute},
	0x5d: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: AbsoluteX},
	0x59: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: AbsoluteY},
	0x41: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: IndirectX},
	0x51: {Instruction: (*Cpu).EOR, Name: "EOR", Mode: IndirectY},

	0x09: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: Immediate},
	0x05: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: ZeroPage},
	0x15: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: ZeroPageX},
	0x0d: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: Absolute},
	0x1d: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: AbsoluteX},
	0x19: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: AbsoluteY},
	0x01: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: IndirectX},
	0x11: {Instruction: (*Cpu).ORA, Name: "ORA", Mode: IndirectY},

	0x24: {Instruction: (*Cpu).BIT, Name: "BIT", Mode: ZeroPage},
	0x2c: {Instruction: (*Cpu).BIT, Name: "BIT", Mode: Absolute},

	0x69: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: Immediate},
	0x65: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: ZeroPage},
	0x75: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: ZeroPageX},
	0x6d: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: Absolute},
	0x7d: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: AbsoluteX},
	0x79: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: AbsoluteY},
	0x61: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: IndirectX},
	0x71: {Instruction: (*Cpu).ADC, Name: "ADC", Mode: IndirectY},

	0xe9: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: Immediate},
	0xe5: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: ZeroPage},
	0xf5: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: ZeroPageX},
	0xed: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: Absolute},
	0xfd: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: AbsoluteX},
	0xf9: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: AbsoluteY},
	0xe1: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: IndirectX},
	0xf1: {Instruction: (*Cpu).SBC, Name: "SBC", Mode: IndirectY},

	0xc9: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: Immediate},
	0xc5: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: ZeroPage},
	0xd5: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: ZeroPageX},
	0xcd: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: Absolute},
	0xdd: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: AbsoluteX},
	0xd9: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: AbsoluteY},
	0xc1: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: IndirectX},
	0xd1: {Instruction: (*Cpu).CMP, Name: "CMP", Mode: IndirectY},

	0xe0: {Instruction: (*Cpu).CPX, Name: "CPX", Mode: Immediate},
	0xe4: {Instruction: (*Cpu).CPX, Name: "CPX", Mode: ZeroPage},
	0xec: {Instruction: (*Cpu).CPX, Name: "CPX", Mode: Absolute},

	0xc0: {Instruction: (*Cpu).CPY, Name: "CPY", Mode: Immediate},
	0xc4: {Instruction: (*Cpu).CPY, Name: "CPY", Mode: ZeroPage},
	0xcc: {Instruction: (*Cpu).CPY, Name: "CPY", Mode: Absolute},

	// increment, decrement
	0xe6: {Instruction: (*Cpu).INC, Name: "INC", Mode: ZeroPage},
	0xf6: {Instruction: (*Cpu).INC, Name: "INC", Mode: ZeroPageX},
	0xee: {Instruction: (*Cpu).INC, Name: "INC", Mode: Absolute},
	0xfe: {Instruction: (*Cpu).INC, Name: "INC", Mode: AbsoluteX},

	0xc6: {Instruction: (*Cpu).DEC, Name: "DEC", Mode: ZeroPage},
	0xd6: {Instruction: (*Cpu).DEC, Name: "DEC", Mode: ZeroPageX},
	0xce: {Instruction: (*Cpu).DEC, Name: "DEC", Mode: Absolute},
	0xde: {Instruction: (*Cpu).DEC, Name: "DEC", Mode: AbsoluteX},

	0xe8: {Instruction: (*Cpu).INX, Name: "INX", Mode: Implied},
	0xc8: {Instruction: (*Cpu).INY, Name: "INY", Mode: Implied},
	0xca: {Instruction: (*Cpu).DEX, Name: "DEX", Mode: Implied},
	0x88: {Instruction: (*Cpu).DEY, Name: "DEY", Mode: Implied},

	// shifts, rotates
	0x0a: {Instruction: (*Cpu).ASL, Name: "ASL", Mode: Accumulator},
	0x06: {Instruction: (*Cpu).ASL, Name: "ASL", Mode: ZeroPage},
	0x16: {Instruction: (*Cpu).ASL, Name: "ASL", Mode: ZeroPageX},
	0x0e: {Instruction: (*Cpu).ASL, Name: "ASL", Mode: Absolute},
	0x1e: {Instruction: (*Cpu).ASL, Name: "ASL", Mode: AbsoluteX},

	0x4a: {Instruction: (*Cpu).LSR, Name: "LSR", Mode: Accumulator},
	0x46: {Instruction: (*Cpu).LSR, Name: "LSR", Mode: ZeroPage},
	0x56: {Instruction: (*Cpu).LSR, Name: "LSR", Mode: ZeroPageX},
	0x4e: {Instruction: (*Cpu).LSR, Name: "LSR", Mode: Absolute},
	0x5e: {Instruction: (*Cpu).LSR, Name: "LSR", Mode: AbsoluteX},

	0x2a: {Instruction: (*Cpu).ROL, Name: "ROL", Mode: Accumulator},
	0x26: {Instruction: (*Cpu).ROL, Name: "ROL", Mode: ZeroPage},
	0x36: {Instruction: (*Cpu).ROL, Name: "ROL", Mode: ZeroPageX},
	0x2e: {Instruction: (*Cpu).ROL, Name: "ROL", Mode: Absolute},
	0x3e: {Instruction: (*Cpu).ROL, Name: "ROL", Mode: AbsoluteX},

	0x6a: {Instruction: (*Cpu).ROR, Name: "ROR", Mode: Accumulator},
	0x66: {Instruction: (*Cpu).ROR, Name: "ROR", Mode: ZeroPage},
	0x76: {Instruction: (*Cpu).ROR, Name: "ROR", Mode: ZeroPageX},
	0x6e: {Instruction: (*Cpu).ROR, Name: "ROR", Mode: Absolute},
	0x7e: {Instruction: (*Cpu).ROR, Name: "ROR", Mode: AbsoluteX},

	// branches
	0x10: {Instruction: (*Cpu).BPL, Name: "BPL", Mode: Relative},
	0x30: {Instruction: (*Cpu).BMI, Name: "BMI", Mode: Relative},
	0x50: {Instruction: (*Cpu).BVC, Name: "BVC", Mode: Relative},
	0x70: {Instruction: (*Cpu).BVS, Name: "BVS", Mode: Relative},
	0x90: {Instruction: (*Cpu).BCC, Name: "BCC", Mode: Relative},
	0xb0: {Instruction: (*Cpu).BCS, Name: "BCS", Mode: Relative},
	0xd0: {Instruction: (*Cpu).BNE, Name: "BNE", Mode: Relative},
	0xf0: {Instruction: (*Cpu).BEQ, Name: "BEQ", Mode: Relative},

	// jumps, subroutines, interrupts
	0x4c: {Instruction: (*Cpu).JMP, Name: "JMP", Mode: Absolute},
	0x6c: {Instruction: (*Cpu).JMP, Name: "JMP", Mode: Indirect},
	0x20: {Instruction: (*Cpu).JSR, Name: "JSR", Mode: Absolute},
	0x60: {Instruction: (*Cpu).RTS, Name: "RTS", Mode: Implied},
	0x00: {Instruction: (*Cpu).BRK, Name: "BRK", Mode: Implied},
	0x40: {Instruction: (*Cpu).RTI, Name: "RTI", Mode: Implied},

	// flag clear, set
	0x18: {Instruction: (*Cpu).CLC, Name: "CLC", Mode: Implied},
	0x38: {Instruction: (*Cpu).SEC, Name: "SEC", Mode: Implied},
	0x58: {Instruction: (*Cpu).CLI, Name: "CLI", Mode: Implied},
	0x78: {Instruction: (*Cpu).SEI, Name: "SEI", Mode: Implied},
	0xb8: {Instruction: (*Cpu).CLV, Name: "CLV", Mode: Implied},
	0xd8: {Instruction: (*Cpu).CLD, Name: "CLD", Mode: Implied},
	0xf8: {Instruction: (*Cpu).SED, Name: "SED", Mode: Implied},

	0xea: {Instruction: (*Cpu).NOP, Name: "NOP", Mode: Implied},
}
