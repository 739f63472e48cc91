package cpu

import "gameboy-emulator/internal/memory"

// === ADD Operations ===
// ADD operations add a value to register A and store the result in A
// Flags affected: Z N H C
// Z: Set if result is zero
// N: Always cleared (addition operation)
// H: Set if carry from bit 3 to bit 4
// C: Set if carry from bit 7 (result overflows above 0xFF)

// ADD_A_A adds register A to itself (0x87)
// Cycles: 4
func (cpu *CPU) ADD_A_A() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.A)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(oldA&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_B adds register B to register A (0x80)
// Cycles: 4
func (cpu *CPU) ADD_A_B() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.B)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(cpu.B&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_C adds register C to register A (0x81)
// Cycles: 4
func (cpu *CPU) ADD_A_C() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.C)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(cpu.C&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_D adds register D to register A (0x82)
// Cycles: 4
func (cpu *CPU) ADD_A_D() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.D)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(cpu.D&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_E adds register E to register A (0x83)
// Cycles: 4
func (cpu *CPU) ADD_A_E() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.E)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(cpu.E&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_H adds register H to register A (0x84)
// Cycles: 4
func (cpu *CPU) ADD_A_H() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.H)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(cpu.H&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_L adds register L to register A (0x85)
// Cycles: 4
func (cpu *CPU) ADD_A_L() uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(cpu.L)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(cpu.L&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 4
}

// ADD_A_HL adds the memory value at HL to register A (0x86)
// Cycles: 8
func (cpu *CPU) ADD_A_HL(mmu memory.MemoryInterface) uint8 {
	oldA := cpu.A
	memoryValue := mmu.ReadByte(cpu.GetHL())
	result := uint16(cpu.A) + uint16(memoryValue)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(memoryValue&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 8
}

// ADD_A_n adds an immediate 8-bit value to register A (0xC6)
// Cycles: 8
func (cpu *CPU) ADD_A_n(value uint8) uint8 {
	oldA := cpu.A
	result := uint16(cpu.A) + uint16(value)
	cpu.A = uint8(result)

	cpu.SetFlag(FlagZ, cpu.A == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, (oldA&0x0F)+(value&0x0F) > 0x0F)
	cpu.SetFlag(FlagC, result > 0xFF)

	return 8
}
