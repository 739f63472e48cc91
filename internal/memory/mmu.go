// Package memory implements the Game Boy's 16-bit address bus: the MMU
// decodes every CPU-visible address into ROM/RAM banking through the
// cartridge MBC, the PPU's VRAM/OAM/registers, the timer, the joypad, the
// interrupt controller, OAM DMA and flat internal RAM for everything else.
package memory

import (
	"gameboy-emulator/internal/apu"
	"gameboy-emulator/internal/cartridge"
	"gameboy-emulator/internal/dma"
	"gameboy-emulator/internal/interrupt"
	"gameboy-emulator/internal/joypad"
	"gameboy-emulator/internal/ppu"
	"gameboy-emulator/internal/timer"
)

// Memory region boundaries. The Game Boy address space is fully covered
// and contiguous from 0x0000 to 0xFFFF.
const (
	ROMBank0Start uint16 = 0x0000
	ROMBank0End   uint16 = 0x3FFF
	ROMBank0Size  uint32 = 0x4000

	ROMBank1Start uint16 = 0x4000
	ROMBank1End   uint16 = 0x7FFF
	ROMBank1Size  uint32 = 0x4000

	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	VRAMSize  uint32 = 0x2000

	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	ExternalRAMSize  uint32 = 0x2000

	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	WRAMSize  uint32 = 0x2000

	EchoRAMStart uint16 = 0xE000
	EchoRAMEnd   uint16 = 0xFDFF

	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	OAMSize  uint32 = 0xA0

	ProhibitedStart uint16 = 0xFEA0
	ProhibitedEnd   uint16 = 0xFEFF

	IORegistersStart uint16 = 0xFF00
	IORegistersEnd   uint16 = 0xFF7F
	IORegistersSize  uint32 = 0x80

	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
	HRAMSize  uint32 = 0x7F

	InterruptEnableRegister uint16 = 0xFFFF
)

// I/O register addresses within the I/O Registers region.
const (
	JoypadRegister            uint16 = 0xFF00
	SerialDataRegister        uint16 = 0xFF01
	SerialControlRegister     uint16 = 0xFF02
	DividerRegister           uint16 = 0xFF04
	TimerCounterRegister      uint16 = 0xFF05
	TimerModuloRegister       uint16 = 0xFF06
	TimerControlRegister      uint16 = 0xFF07
	InterruptFlagRegister     uint16 = 0xFF0F
	LCDControlRegister        uint16 = 0xFF40
	LCDStatusRegister         uint16 = 0xFF41
	ScrollYRegister           uint16 = 0xFF42
	ScrollXRegister           uint16 = 0xFF43
	LYRegister                uint16 = 0xFF44
	LYCompareRegister         uint16 = 0xFF45
	DMARegister               uint16 = 0xFF46
	BackgroundPaletteRegister uint16 = 0xFF47
	ObjectPalette0Register    uint16 = 0xFF48
	ObjectPalette1Register    uint16 = 0xFF49
	WindowYRegister           uint16 = 0xFF4A
	WindowXRegister           uint16 = 0xFF4B
)

// MemoryInterface is the bus contract the CPU and DMA controller program
// against; MMU is its only production implementation.
type MemoryInterface interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
	ReadWord(address uint16) uint16
	WriteWord(address uint16, value uint16)
}

// MMU represents the Memory Management Unit for the Game Boy
// This is like the Game Boy's memory controller that manages access to all 64KB of address space
// It handles the mapping between CPU addresses and actual memory locations
type MMU struct {
	// memory represents the entire 64KB Game Boy address space, backing
	// any region not routed to a more specific component below.
	memory [0x10000]uint8 // 64KB total memory space (0x0000 to 0xFFFF)

	mbc    cartridge.MBC
	ic     *interrupt.InterruptController
	joypad *joypad.Joypad
	timer  *timer.Timer
	dma    *dma.DMAController
	ppu    *ppu.PPU
	apu    *apu.APU
}

// isAPURegister reports whether address is one of the sound registers
// (NR10-NR52, wave RAM) the APU itself decodes.
func isAPURegister(address uint16) bool {
	return (address >= 0xFF10 && address <= 0xFF26) || (address >= 0xFF30 && address <= 0xFF3F)
}

// NewMMU builds an MMU wired to a cartridge and interrupt controller. A
// joypad may be supplied; if omitted, the MMU constructs its own so callers
// that don't care about input handling don't need to wire one up.
func NewMMU(mbc cartridge.MBC, ic *interrupt.InterruptController, joypads ...*joypad.Joypad) *MMU {
	var jp *joypad.Joypad
	if len(joypads) > 0 {
		jp = joypads[0]
	} else {
		jp = joypad.NewJoypad()
	}

	return &MMU{
		mbc:    mbc,
		ic:     ic,
		joypad: jp,
		timer:  timer.NewTimer(),
		dma:    dma.NewDMAController(),
	}
}

// SetPPU connects a PPU so VRAM, OAM and the LCD registers route through
// it instead of falling back to flat internal memory.
func (m *MMU) SetPPU(p *ppu.PPU) {
	m.ppu = p
}

// SetAPU connects an APU so the sound registers (0xFF10-0xFF26, wave RAM
// at 0xFF30-0xFF3F) route through it instead of falling back to flat
// internal memory.
func (m *MMU) SetAPU(a *apu.APU) {
	m.apu = a
}

// GetTimer exposes the timer so components that need its DIV counter
// directly (the APU's frame sequencer) can connect to it without routing
// every read through the bus.
func (m *MMU) GetTimer() *timer.Timer {
	return m.timer
}

// GetDMAController exposes the OAM DMA controller so the CPU can check
// CanCPUAccessMemory before fetching or the emulator can tick it directly.
func (m *MMU) GetDMAController() *dma.DMAController {
	return m.dma
}

// UpdateDMA advances the DMA controller by the given number of M-cycles,
// copying one byte per cycle while a transfer is active. It reports
// whether the transfer completed during this call.
func (m *MMU) UpdateDMA(cycles uint8) bool {
	completed := false
	for i := uint8(0); i < cycles; i++ {
		if !m.dma.IsActive() {
			break
		}
		m.dma.Tick(m)
		if !m.dma.IsActive() {
			completed = true
		}
	}
	return completed
}

// ReadByte reads a single byte from the address space, routing to the
// cartridge, PPU, timer, joypad, interrupt controller or DMA controller
// as appropriate, and falling back to flat internal memory otherwise.
func (m *MMU) ReadByte(address uint16) uint8 {
	switch {
	case address >= ROMBank0Start && address <= ROMBank1End:
		return m.mbc.ReadByte(address)

	case address >= VRAMStart && address <= VRAMEnd:
		if m.ppu != nil {
			return m.ppu.ReadVRAM(address)
		}
		return m.memory[address]

	case address >= ExternalRAMStart && address <= ExternalRAMEnd:
		return m.mbc.ReadByte(address)

	case address >= WRAMStart && address <= WRAMEnd:
		return m.memory[address]

	case address >= EchoRAMStart && address <= EchoRAMEnd:
		return m.memory[address-EchoRAMStart+WRAMStart]

	case address >= OAMStart && address <= OAMEnd:
		if m.ppu != nil {
			return m.ppu.ReadOAM(address)
		}
		return m.memory[address]

	case address >= ProhibitedStart && address <= ProhibitedEnd:
		return 0xFF

	case address == DMARegister:
		return 0xFF // write-only

	case address == JoypadRegister:
		return m.joypad.ReadRegister(address)

	case timer.IsTimerRegister(address):
		return m.timer.ReadRegister(address)

	case address == InterruptFlagRegister:
		return m.ic.GetInterruptFlag()

	case ppu.IsPPURegister(address):
		if m.ppu != nil {
			return m.ppu.ReadRegister(address)
		}
		return m.memory[address]

	case isAPURegister(address):
		if m.apu != nil {
			return m.apu.ReadByte(address)
		}
		return m.memory[address]

	case address == InterruptEnableRegister:
		return m.ic.GetInterruptEnable()

	default:
		return m.memory[address]
	}
}

// WriteByte writes a single byte to the address space, with the same
// routing ReadByte uses.
func (m *MMU) WriteByte(address uint16, value uint8) {
	switch {
	case address >= ROMBank0Start && address <= ROMBank1End:
		m.mbc.WriteByte(address, value)

	case address >= VRAMStart && address <= VRAMEnd:
		if m.ppu != nil {
			m.ppu.WriteVRAM(address, value)
		} else {
			m.memory[address] = value
		}

	case address >= ExternalRAMStart && address <= ExternalRAMEnd:
		m.mbc.WriteByte(address, value)

	case address >= WRAMStart && address <= WRAMEnd:
		m.memory[address] = value

	case address >= EchoRAMStart && address <= EchoRAMEnd:
		m.memory[address-EchoRAMStart+WRAMStart] = value

	case address >= OAMStart && address <= OAMEnd:
		if m.ppu != nil {
			m.ppu.WriteOAM(address, value)
		} else {
			m.memory[address] = value
		}

	case address >= ProhibitedStart && address <= ProhibitedEnd:
		// ignored

	case address == DMARegister:
		m.dma.StartTransfer(value)

	case address == JoypadRegister:
		m.joypad.WriteRegister(address, value)

	case timer.IsTimerRegister(address):
		m.timer.WriteRegister(address, value)

	case address == InterruptFlagRegister:
		m.ic.SetInterruptFlag(value)

	case ppu.IsPPURegister(address):
		if m.ppu != nil {
			m.ppu.WriteRegister(address, value)
		} else {
			m.memory[address] = value
		}

	case isAPURegister(address):
		if m.apu != nil {
			m.apu.WriteByte(address, value)
		} else {
			m.memory[address] = value
		}

	case address == InterruptEnableRegister:
		m.ic.SetInterruptEnable(value)

	default:
		m.memory[address] = value
	}
}

// WriteByteForDMA writes directly into OAM, bypassing the PPU's CPU-bus
// mode lockout. It satisfies dma.DMAMemoryInterface so the DMA engine's
// own OAM writes are exempt from the mode gating regular bus writes get.
func (m *MMU) WriteByteForDMA(address uint16, value uint8) {
	if address >= OAMStart && address <= OAMEnd {
		if m.ppu != nil {
			m.ppu.GetVRAM().WriteOAM(address, value)
			return
		}
		m.memory[address] = value
		return
	}
	m.WriteByte(address, value)
}

// ReadWord reads a little-endian 16-bit value.
func (m *MMU) ReadWord(address uint16) uint16 {
	low := m.ReadByte(address)
	high := m.ReadByte(address + 1)
	return uint16(high)<<8 | uint16(low)
}

// WriteWord writes a little-endian 16-bit value.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.WriteByte(address, uint8(value&0xFF))
	m.WriteByte(address+1, uint8(value>>8))
}

// isValidAddress reports whether address is mapped to something other
// than the prohibited region.
func (m *MMU) isValidAddress(address uint16) bool {
	return address < ProhibitedStart || address > ProhibitedEnd
}

// getMemoryRegion names the region address falls in, for diagnostics.
func (m *MMU) getMemoryRegion(address uint16) string {
	switch {
	case address <= ROMBank0End:
		return "ROM Bank 0"
	case address <= ROMBank1End:
		return "ROM Bank 1+"
	case address <= VRAMEnd:
		return "VRAM"
	case address <= ExternalRAMEnd:
		return "External RAM"
	case address <= WRAMEnd:
		return "WRAM"
	case address <= EchoRAMEnd:
		return "Echo RAM"
	case address <= OAMEnd:
		return "OAM"
	case address <= ProhibitedEnd:
		return "Prohibited"
	case address <= IORegistersEnd:
		return "I/O Registers"
	case address <= HRAMEnd:
		return "HRAM"
	default:
		return "Interrupt Enable"
	}
}
