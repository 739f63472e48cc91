package cpu

import (
	"fmt"

	"gameboy-emulator/internal/memory"
)

// === Remaining 8-bit register-to-register loads ===
// The bulk of LD r,r lives in cpu.go; these fill in the L-register column
// and the A<->L pairing that didn't get written alongside it.

// LD_A_L - Copy register L to register A (0x7D)
func (cpu *CPU) LD_A_L() uint8 {
	cpu.A = cpu.L
	return 4
}

// LD_B_L - Copy register L to register B (0x45)
func (cpu *CPU) LD_B_L() uint8 {
	cpu.B = cpu.L
	return 4
}

// LD_C_L - Copy register L to register C (0x4D)
func (cpu *CPU) LD_C_L() uint8 {
	cpu.C = cpu.L
	return 4
}

// LD_L_A - Copy register A to register L (0x6F)
func (cpu *CPU) LD_L_A() uint8 {
	cpu.L = cpu.A
	return 4
}

// LD_L_B - Copy register B to register L (0x68)
func (cpu *CPU) LD_L_B() uint8 {
	cpu.L = cpu.B
	return 4
}

// LD_L_C - Copy register C to register L (0x69)
func (cpu *CPU) LD_L_C() uint8 {
	cpu.L = cpu.C
	return 4
}

// LD_L_D - Copy register D to register L (0x6A)
func (cpu *CPU) LD_L_D() uint8 {
	cpu.L = cpu.D
	return 4
}

// LD_L_E - Copy register E to register L (0x6B)
func (cpu *CPU) LD_L_E() uint8 {
	cpu.L = cpu.E
	return 4
}

// LD_L_H - Copy register H to register L (0x6C)
func (cpu *CPU) LD_L_H() uint8 {
	cpu.L = cpu.H
	return 4
}

// === Register-indirect loads/stores through BC, DE, HL ===

// LD_A_BC - Load register A from memory at address BC (0x0A)
// Cycles: 8
func (cpu *CPU) LD_A_BC(mmu memory.MemoryInterface) uint8 {
	cpu.A = mmu.ReadByte(cpu.GetBC())
	return 8
}

// LD_A_DE - Load register A from memory at address DE (0x1A)
// Cycles: 8
func (cpu *CPU) LD_A_DE(mmu memory.MemoryInterface) uint8 {
	cpu.A = mmu.ReadByte(cpu.GetDE())
	return 8
}

// LD_BC_A - Store register A to memory at address BC (0x02)
// Cycles: 8
func (cpu *CPU) LD_BC_A(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetBC(), cpu.A)
	return 8
}

// LD_DE_A - Store register A to memory at address DE (0x12)
// Cycles: 8
func (cpu *CPU) LD_DE_A(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetDE(), cpu.A)
	return 8
}

// LD_A_HL - Load register A from memory at address HL (0x7E)
// Cycles: 8
func (cpu *CPU) LD_A_HL(mmu memory.MemoryInterface) uint8 {
	cpu.A = mmu.ReadByte(cpu.GetHL())
	return 8
}

// === Wrapper functions for opcode dispatch ===

func wrapLD_A_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_L(), nil
}

func wrapLD_B_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_B_L(), nil
}

func wrapLD_C_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_C_L(), nil
}

func wrapLD_L_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_L_A(), nil
}

func wrapLD_L_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_L_B(), nil
}

func wrapLD_L_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_L_C(), nil
}

func wrapLD_L_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_L_D(), nil
}

func wrapLD_L_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_L_E(), nil
}

func wrapLD_L_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_L_H(), nil
}

func wrapLD_A_BC(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_BC(mmu), nil
}

func wrapLD_A_DE(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_DE(mmu), nil
}

func wrapLD_BC_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_BC_A(mmu), nil
}

func wrapLD_DE_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_DE_A(mmu), nil
}

func wrapLD_A_HL(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_HL(mmu), nil
}

// === Register-register and immediate wrapper functions ===
// These wrap methods already implemented in cpu.go / cpu_load_16_bit.go
// that had never been connected to the dispatch table.

func wrapLD_A_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_B(), nil
}

func wrapLD_A_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_C(), nil
}

func wrapLD_A_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_D(), nil
}

func wrapLD_A_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_E(), nil
}

func wrapLD_A_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_A_H(), nil
}

func wrapLD_B_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_B_A(), nil
}

func wrapLD_B_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_B_C(), nil
}

func wrapLD_B_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_B_D(), nil
}

func wrapLD_B_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_B_E(), nil
}

func wrapLD_B_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_B_H(), nil
}

func wrapLD_C_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_C_A(), nil
}

func wrapLD_C_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_C_B(), nil
}

func wrapLD_C_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_C_D(), nil
}

func wrapLD_C_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_C_E(), nil
}

func wrapLD_C_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_C_H(), nil
}

func wrapLD_D_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_D_A(), nil
}

func wrapLD_D_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_D_B(), nil
}

func wrapLD_D_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_D_C(), nil
}

func wrapLD_D_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_D_E(), nil
}

func wrapLD_D_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_D_H(), nil
}

func wrapLD_D_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_D_L(), nil
}

func wrapLD_E_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_E_A(), nil
}

func wrapLD_E_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_E_B(), nil
}

func wrapLD_E_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_E_C(), nil
}

func wrapLD_E_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_E_D(), nil
}

func wrapLD_E_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_E_H(), nil
}

func wrapLD_E_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_E_L(), nil
}

func wrapLD_H_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_H_A(), nil
}

func wrapLD_H_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_H_B(), nil
}

func wrapLD_H_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_H_C(), nil
}

func wrapLD_H_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_H_D(), nil
}

func wrapLD_H_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_H_E(), nil
}

func wrapLD_H_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.LD_H_L(), nil
}

// === Immediate-load wrappers (LD r,n) ===

func wrapLD_B_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD B,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_B_n(params[0]), nil
}

func wrapLD_C_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD C,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_C_n(params[0]), nil
}

func wrapLD_D_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD D,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_D_n(params[0]), nil
}

func wrapLD_E_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD E,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_E_n(params[0]), nil
}

func wrapLD_H_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD H,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_H_n(params[0]), nil
}

func wrapLD_L_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD L,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_L_n(params[0]), nil
}

func wrapLD_A_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("LD A,n requires 1 parameter, got %d", len(params))
	}
	return cpu.LD_A_n(params[0]), nil
}

// === 16-bit immediate load wrappers (LD rr,nn) ===

func wrapLD_BC_nn(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 2 {
		return 0, fmt.Errorf("LD BC,nn requires 2 parameters, got %d", len(params))
	}
	return cpu.LD_BC_nn(params[0], params[1]), nil
}

func wrapLD_DE_nn(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 2 {
		return 0, fmt.Errorf("LD DE,nn requires 2 parameters, got %d", len(params))
	}
	return cpu.LD_DE_nn(params[0], params[1]), nil
}

func wrapLD_HL_nn(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 2 {
		return 0, fmt.Errorf("LD HL,nn requires 2 parameters, got %d", len(params))
	}
	return cpu.LD_HL_nn(params[0], params[1]), nil
}

func wrapLD_SP_nn(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 2 {
		return 0, fmt.Errorf("LD SP,nn requires 2 parameters, got %d", len(params))
	}
	return cpu.LD_SP_nn(params[0], params[1]), nil
}
