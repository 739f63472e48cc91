package cartridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Recognized ROM file extensions.
var validROMExtensions = []string{".gb", ".gbc", ".rom"}

// LoadROMFromFile reads filename and parses it into a Cartridge.
func LoadROMFromFile(filename string) (*Cartridge, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}

	if !fileExists(filename) {
		return nil, fmt.Errorf("ROM file not found: %s", filename)
	}

	if !hasValidROMExtension(filename) {
		return nil, fmt.Errorf("invalid ROM file extension: %s (expected .gb, .gbc, or .rom)", filepath.Ext(filename))
	}

	romData, err := readROMFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file %s: %w", filename, err)
	}

	cartridge, err := NewCartridge(romData)
	if err != nil {
		return nil, fmt.Errorf("failed to create cartridge from %s: %w", filename, err)
	}

	return cartridge, nil
}

// LoadROMFromBytes parses ROM data already held in memory. sourceName is
// only used to annotate error messages.
func LoadROMFromBytes(romData []byte, sourceName string) (*Cartridge, error) {
	if len(romData) == 0 {
		return nil, fmt.Errorf("ROM data is empty for %s", sourceName)
	}

	cartridge, err := NewCartridge(romData)
	if err != nil {
		return nil, fmt.Errorf("failed to create cartridge from %s: %w", sourceName, err)
	}

	return cartridge, nil
}

// ValidateROMFile checks a ROM file's size and header checksum without
// fully loading it.
func ValidateROMFile(filename string) (bool, error) {
	if filename == "" {
		return false, fmt.Errorf("filename cannot be empty")
	}

	if !fileExists(filename) {
		return false, fmt.Errorf("file not found: %s", filename)
	}

	if !hasValidROMExtension(filename) {
		return false, fmt.Errorf("invalid file extension: %s", filepath.Ext(filename))
	}

	fileInfo, err := os.Stat(filename)
	if err != nil {
		return false, fmt.Errorf("cannot get file info: %w", err)
	}

	fileSize := fileInfo.Size()
	if fileSize < MinROMSize {
		return false, fmt.Errorf("file too small: %d bytes (minimum %d)", fileSize, MinROMSize)
	}

	if !isValidROMSize(fileSize) {
		return false, fmt.Errorf("invalid ROM size: %d bytes (not a power-of-2 multiple of 32KB)", fileSize)
	}

	headerValid, err := validateROMHeader(filename)
	if err != nil {
		return false, fmt.Errorf("header validation failed: %w", err)
	}

	if !headerValid {
		return false, fmt.Errorf("ROM header checksum is invalid")
	}

	return true, nil
}

// GetROMInfo extracts header information from a ROM file without loading
// the full image.
func GetROMInfo(filename string) (*ROMInfo, error) {
	headerData, err := readROMHeader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM header: %w", err)
	}

	tempCartridge := &Cartridge{ROMData: headerData}
	tempCartridge.parseHeader()

	fileInfo, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot get file info: %w", err)
	}

	info := &ROMInfo{
		Filename:      filename,
		Title:         tempCartridge.Title,
		CartridgeType: tempCartridge.CartridgeType,
		ROMSize:       tempCartridge.ROMSize,
		RAMSize:       tempCartridge.RAMSize,
		HeaderValid:   tempCartridge.HeaderValid,
		FileSize:      fileInfo.Size(),
		TypeName:      tempCartridge.TypeName(),
	}

	return info, nil
}

// ROMInfo summarizes a ROM file's header without requiring the full image
// to be loaded.
type ROMInfo struct {
	Filename      string
	Title         string
	CartridgeType CartridgeType
	TypeName      string
	ROMSize       int
	RAMSize       int
	FileSize      int64
	HeaderValid   bool
}

func (info *ROMInfo) String() string {
	return fmt.Sprintf("ROM{File: %s, Title: %q, Type: %s, ROM: %dKB, RAM: %dKB, Valid: %t}",
		filepath.Base(info.Filename),
		info.Title,
		info.TypeName,
		info.ROMSize/1024,
		info.RAMSize/1024,
		info.HeaderValid,
	)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func hasValidROMExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, validExt := range validROMExtensions {
		if ext == validExt {
			return true
		}
	}
	return false
}

func readROMFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// readROMHeader reads only the leading 32KB of a ROM file, which always
// contains the full header.
func readROMHeader(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	headerSize := MinROMSize
	headerData := make([]byte, headerSize)

	bytesRead, err := file.Read(headerData)
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if bytesRead < headerSize {
		return nil, fmt.Errorf("file too small: read %d bytes, expected at least %d", bytesRead, headerSize)
	}

	return headerData, nil
}

// isValidROMSize reports whether size is one of the cartridge ROM sizes
// the header's size code can describe.
func isValidROMSize(size int64) bool {
	validSizes := []int64{
		32 * 1024,
		64 * 1024,
		128 * 1024,
		256 * 1024,
		512 * 1024,
		1024 * 1024,
		2048 * 1024,
		4096 * 1024,
		8192 * 1024,
	}

	for _, validSize := range validSizes {
		if size == validSize {
			return true
		}
	}

	return false
}

func validateROMHeader(filename string) (bool, error) {
	headerData, err := readROMHeader(filename)
	if err != nil {
		return false, err
	}

	tempCartridge := &Cartridge{ROMData: headerData}
	return tempCartridge.verifyHeaderChecksum(), nil
}

// ScanROMDirectory walks dirPath (and its subdirectories, if recursive)
// collecting ROMInfo for every recognized ROM file. Files that fail to
// parse are skipped rather than failing the whole scan.
func ScanROMDirectory(dirPath string, recursive bool) ([]*ROMInfo, error) {
	var romFiles []*ROMInfo

	dirInfo, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory %s: %w", dirPath, err)
	}

	if !dirInfo.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}

	err = filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			if !recursive && path != dirPath {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasValidROMExtension(path) {
			return nil
		}

		romInfo, err := GetROMInfo(path)
		if err != nil {
			return nil
		}

		romFiles = append(romFiles, romInfo)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error scanning directory: %w", err)
	}

	return romFiles, nil
}
