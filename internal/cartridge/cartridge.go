// Package cartridge decodes Game Boy ROM images and serves cartridge
// ROM/RAM reads and bank-switch writes through a Memory Bank Controller.
package cartridge

import (
	"errors"
	"fmt"
	"strings"
)

// Header field positions within the ROM image.
const (
	HeaderTitleStart    = 0x0134
	HeaderTitleEnd      = 0x0143
	HeaderCartridgeType = 0x0147
	HeaderROMSize       = 0x0148
	HeaderRAMSize       = 0x0149
	HeaderChecksum      = 0x014D

	MinROMSize = 32 * 1024
)

// ErrInvalidHeader is returned when the ROM is smaller than MinROMSize.
// A header checksum mismatch does not produce it; it only clears
// Cartridge.HeaderValid.
var ErrInvalidHeader = errors.New("cartridge: invalid header")

// ErrUnsupportedMapper is returned for any mapper beyond MBC1.
var ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")

// CartridgeType is the raw mapper byte at 0x0147.
type CartridgeType uint8

const (
	ROMOnly          CartridgeType = 0x00
	MBC1             CartridgeType = 0x01
	MBC1RAM          CartridgeType = 0x02
	MBC1RAMBattery   CartridgeType = 0x03
	MBC2             CartridgeType = 0x05
	MBC2Battery      CartridgeType = 0x06
	MBC3TimerBattery CartridgeType = 0x0F
	MBC3TimerRAMBatt CartridgeType = 0x10
	MBC3             CartridgeType = 0x11
	MBC3RAM          CartridgeType = 0x12
	MBC3RAMBattery   CartridgeType = 0x13
)

// Cartridge holds the raw ROM image and its parsed header.
type Cartridge struct {
	ROMData []byte

	Title         string
	CartridgeType CartridgeType
	ROMSize       int
	RAMSize       int
	HeaderValid   bool
}

// NewCartridge parses romData's header. It does not reject an invalid
// checksum outright (real hardware boots regardless); callers that need
// strict validation should check HeaderValid.
func NewCartridge(romData []byte) (*Cartridge, error) {
	if len(romData) < MinROMSize {
		return nil, fmt.Errorf("%w: ROM too small: got %d bytes, minimum is %d", ErrInvalidHeader, len(romData), MinROMSize)
	}

	c := &Cartridge{ROMData: romData}
	c.parseHeader()
	return c, nil
}

func (c *Cartridge) parseHeader() {
	titleBytes := c.ROMData[HeaderTitleStart : HeaderTitleEnd+1]
	title := strings.TrimRight(string(titleBytes), "\x00")

	var b strings.Builder
	for _, ch := range title {
		if ch >= 32 && ch <= 126 {
			b.WriteRune(ch)
		}
	}
	c.Title = b.String()

	c.CartridgeType = CartridgeType(c.ROMData[HeaderCartridgeType])
	c.ROMSize = romSizeFromCode(c.ROMData[HeaderROMSize])
	c.RAMSize = ramSizeFromCode(c.ROMData[HeaderRAMSize])
	c.HeaderValid = c.verifyHeaderChecksum()
}

func romSizeFromCode(code uint8) int {
	switch code {
	case 0x00:
		return 32 * 1024
	case 0x01:
		return 64 * 1024
	case 0x02:
		return 128 * 1024
	case 0x03:
		return 256 * 1024
	case 0x04:
		return 512 * 1024
	case 0x05:
		return 1024 * 1024
	case 0x06:
		return 2048 * 1024
	default:
		return 32 * 1024
	}
}

func ramSizeFromCode(code uint8) int {
	switch code {
	case 0x00:
		return 0
	case 0x01:
		return 2 * 1024
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	default:
		return 0
	}
}

func (c *Cartridge) verifyHeaderChecksum() bool {
	var checksum uint8
	for addr := HeaderTitleStart; addr <= 0x014C; addr++ {
		checksum = checksum - c.ROMData[addr] - 1
	}
	return checksum == c.ROMData[HeaderChecksum]
}

// BatteryBacked reports whether cartridge RAM should be persisted between
// sessions.
func (c *Cartridge) BatteryBacked() bool {
	switch c.CartridgeType {
	case MBC1RAMBattery, MBC2Battery, MBC3TimerBattery, MBC3TimerRAMBatt, MBC3RAMBattery:
		return true
	default:
		return false
	}
}

// TypeName returns a human-readable mapper name, for diagnostics only.
func (c *Cartridge) TypeName() string {
	switch c.CartridgeType {
	case ROMOnly:
		return "ROM ONLY"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBattery:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC3:
		return "MBC3"
	default:
		return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(c.CartridgeType))
	}
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("Cartridge{Title: %q, Type: %s, ROM: %dKB, RAM: %dKB, Valid: %t}",
		c.Title, c.TypeName(), c.ROMSize/1024, c.RAMSize/1024, c.HeaderValid)
}
