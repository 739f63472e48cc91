package cpu

import (
	"gameboy-emulator/internal/cartridge"
	"gameboy-emulator/internal/interrupt"
	"gameboy-emulator/internal/memory"
)

// createTestMMU builds a bare MMU (ROM-only cartridge, fresh interrupt
// controller) for instruction tests that only care about reads/writes to
// flat memory, not the full bus wiring the emulator package assembles.
func createTestMMU() memory.MemoryInterface {
	return memory.NewMMU(&cartridge.MBC0{}, interrupt.NewInterruptController())
}
