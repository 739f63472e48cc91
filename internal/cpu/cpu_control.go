package cpu

import (
	"gameboy-emulator/internal/memory"
)

// Control and Interrupt Instructions for Game Boy CPU
// These instructions control CPU execution state and interrupt handling

// ================================
// CPU Control Instructions
// ================================

// HALT - Halt CPU until interrupt (0x76)
// Stops the CPU clock until an interrupt is pending. If IME is clear and
// an interrupt is already pending at the moment HALT executes, the real
// hardware doesn't halt at all - it latches the halt bug instead, which
// makes the byte immediately after HALT execute twice (PC fails to
// advance past it once).
func (cpu *CPU) HALT(mmu memory.MemoryInterface) uint8 {
	pending := cpu.InterruptController.HasPendingInterrupts()
	if !cpu.InterruptsEnabled && pending {
		cpu.haltBug = true
	} else {
		cpu.Halted = true
	}
	return 4 // 4 cycles
}

// STOP - Stop CPU and LCD until button press (0x10)
// Stops CPU and LCD completely until a button is pressed
// Most aggressive power saving mode
// Flags affected: None
// Note: In real Game Boy, next byte is consumed (should be 0x00)
func (cpu *CPU) STOP(mmu memory.MemoryInterface) uint8 {
	cpu.Stopped = true
	cpu.Halted = true // STOP also halts the CPU
	return 4 // 4 cycles
}

// ================================
// Interrupt Control Instructions
// ================================

// DI - Disable Interrupts (0xF3)
// Clears the Interrupt Master Enable flag immediately - DI has no delay.
// Also cancels any EI that is still pending from the previous instruction.
func (cpu *CPU) DI(mmu memory.MemoryInterface) uint8 {
	cpu.InterruptsEnabled = false
	cpu.imePendingCycles = 0
	return 4 // 4 cycles
}

// EI - Enable Interrupts (0xFB)
// Schedules IME to be set, not set it directly: real hardware enables
// interrupts only after the instruction following EI has completed, so
// "EI; DI" never actually opens a window for an interrupt to fire.
// ApplyPendingIME (called once per instruction by ExecuteInstruction)
// is what actually flips InterruptsEnabled.
func (cpu *CPU) EI(mmu memory.MemoryInterface) uint8 {
	cpu.imePendingCycles = 2
	return 4 // 4 cycles
}

// RETI - Return from interrupt and enable interrupts (0xD9)
// Unlike EI, RETI's IME takes effect immediately: the interrupt service
// routine that's returning from already consumed the delay.
func (cpu *CPU) RETI(mmu memory.MemoryInterface) uint8 {
	cycles := cpu.RET(mmu)
	cpu.InterruptsEnabled = true
	cpu.imePendingCycles = 0
	return cycles
}

// ApplyPendingIME advances the EI delay counter by one instruction
// boundary. ExecuteInstruction calls this after every instruction, EI's
// own included, so IME is only actually set once the instruction after
// EI has finished running.
func (cpu *CPU) ApplyPendingIME() {
	if cpu.imePendingCycles == 0 {
		return
	}
	cpu.imePendingCycles--
	if cpu.imePendingCycles == 0 {
		cpu.InterruptsEnabled = true
	}
}

// ================================
// CPU State Query Functions
// ================================

// IsHalted returns true if CPU is in halt state
func (cpu *CPU) IsHalted() bool {
	return cpu.Halted
}

// IsStopped returns true if CPU is in stop state
func (cpu *CPU) IsStopped() bool {
	return cpu.Stopped
}

// AreInterruptsEnabled returns true if interrupts are enabled
func (cpu *CPU) AreInterruptsEnabled() bool {
	return cpu.InterruptsEnabled
}

// ConsumeHaltBug reports whether the halt bug latched since the last
// call, clearing it. The fetch cycle calls this to decide whether to
// re-read the current opcode without advancing PC.
func (cpu *CPU) ConsumeHaltBug() bool {
	bug := cpu.haltBug
	cpu.haltBug = false
	return bug
}

// Resume - Resume CPU from halt/stop state
// Used by interrupt handling or external events
func (cpu *CPU) Resume() {
	cpu.Halted = false
	cpu.Stopped = false
}

// === Dispatch table wrappers ===

func wrapHALT(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.HALT(mmu), nil
}

func wrapSTOP(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.STOP(mmu), nil
}

func wrapDI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.DI(mmu), nil
}

func wrapEI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.EI(mmu), nil
}

func wrapRETI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RETI(mmu), nil
}
