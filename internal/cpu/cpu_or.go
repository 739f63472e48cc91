package cpu

import "gameboy-emulator/internal/memory"

// === OR Operations ===
// OR operations perform bitwise OR between register A and another operand
// Result is stored in register A
// All OR operations affect flags: Z N H C
// Z: Set if result is zero
// N: Always reset (logical operation)
// H: Always reset (Game Boy specification for OR operations)
// C: Always reset (no carry in logical OR)

// OR_A_A - Bitwise OR register A with itself (0xB7)
// Since A | A = A, this operation effectively tests if A is zero
// Cycles: 4
func (cpu *CPU) OR_A_A() uint8 {
	result := cpu.A | cpu.A
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_B - Bitwise OR register A with register B (0xB0)
// Cycles: 4
func (cpu *CPU) OR_A_B() uint8 {
	result := cpu.A | cpu.B
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_C - Bitwise OR register A with register C (0xB1)
// Cycles: 4
func (cpu *CPU) OR_A_C() uint8 {
	result := cpu.A | cpu.C
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_D - Bitwise OR register A with register D (0xB2)
// Cycles: 4
func (cpu *CPU) OR_A_D() uint8 {
	result := cpu.A | cpu.D
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_E - Bitwise OR register A with register E (0xB3)
// Cycles: 4
func (cpu *CPU) OR_A_E() uint8 {
	result := cpu.A | cpu.E
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_H - Bitwise OR register A with register H (0xB4)
// Cycles: 4
func (cpu *CPU) OR_A_H() uint8 {
	result := cpu.A | cpu.H
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_L - Bitwise OR register A with register L (0xB5)
// Cycles: 4
func (cpu *CPU) OR_A_L() uint8 {
	result := cpu.A | cpu.L
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 4
}

// OR_A_HL - Bitwise OR register A with memory value at address HL (0xB6)
// Cycles: 8
func (cpu *CPU) OR_A_HL(mmu memory.MemoryInterface) uint8 {
	memoryValue := mmu.ReadByte(cpu.GetHL())
	result := cpu.A | memoryValue
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 8
}

// OR_A_n - Bitwise OR register A with immediate 8-bit value (0xF6)
// Cycles: 8
func (cpu *CPU) OR_A_n(value uint8) uint8 {
	result := cpu.A | value
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, false)
	cpu.SetFlag(FlagC, false)

	return 8
}
