// This file is part of Megagopher.
//
// Megagopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Megagopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Megagopher.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
)

// Sentinel error patterns returned by this package.
const (
	NotOpened      = "cartridgeloader: rom not opened"
	BufferTooSmall = "cartridgeloader: buffer too small (%d bytes for %d byte image)"
)

// DefaultMaxArchiveSize is the largest image that will be extracted from an
// archive unless the MaxArchiveSize field says otherwise.
const DefaultMaxArchiveSize = 8 * 1024 * 1024

// Rom is a cartridge or disc image. Use NewRom() to specify the image and
// Load() to open it.
//
// An image that fails to load is left unopened. Every operation on an
// unopened image fails with the NotOpened error.
type Rom struct {
	// filename of the image
	Filename string

	// system and format of the image. after a successful Load() these are
	// the detected values unless they were set to something other than
	// SysAuto and FmtAuto beforehand. detected values revert to SysAuto and
	// FmtAuto on Close()
	System System
	Format Format

	// largest image that will be extracted from an archive
	MaxArchiveSize int

	// used during Load() to decide on the EEPROM type. if nil NoDetector is
	// used
	Detector EEPRomDetector

	// name of the archive entry the image was extracted from. empty if the
	// image was not in an archive
	ArchiveEntry string

	// sha1 of the image. valid after a successful Load()
	Hash string

	// the open image. either the file or the data extracted from an archive
	src        io.ReaderAt
	closer     io.Closer
	size       int64
	crc        uint32
	header     MDHeader
	nameJP     string
	nameUS     string
	eepromType EEPRomType

	// whether System and Format were filled in by detection
	autoSystem bool
	autoFormat bool

	// permission for the loader to log. see SetLogPermission()
	perm logger.Permission
}

// NewRom is the preferred method of initialisation for the Rom type. The
// system and format arguments can be SysAuto and FmtAuto.
func NewRom(filename string, system System, format Format) *Rom {
	return &Rom{
		Filename:       filename,
		System:         system,
		Format:         format,
		MaxArchiveSize: DefaultMaxArchiveSize,
		perm:           logger.Allow,
	}
}

// SetLogPermission sets the permission used when logging. A Rom created other
// than with NewRom() logs with logger.Allow.
func (rom *Rom) SetLogPermission(perm logger.Permission) {
	rom.perm = perm
}

func (rom *Rom) logPermission() logger.Permission {
	if rom.perm == nil {
		return logger.Allow
	}
	return rom.perm
}

func (rom *Rom) String() string {
	if !rom.IsOpen() {
		return fmt.Sprintf("%s (not opened)", rom.ShortName())
	}
	return fmt.Sprintf("%s [%s %s] %d bytes", rom.ShortName(), rom.System, rom.Format, rom.size)
}

// ShortName returns a shortened version of the filename.
func (rom *Rom) ShortName() string {
	name := rom.Filename
	if rom.ArchiveEntry != "" {
		name = rom.ArchiveEntry
	}
	name = filepath.Base(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsOpen returns true if Load() has been successful and Close() has not been
// called.
func (rom *Rom) IsOpen() bool {
	return rom.src != nil
}

// Size returns the size of the image in bytes. Zero if the image is not open.
func (rom *Rom) Size() int {
	return int(rom.size)
}

// Header returns the parsed cartridge header.
func (rom *Rom) Header() MDHeader {
	return rom.header
}

// RomNameJP returns the Japanese name from the header with spaces collapsed.
func (rom *Rom) RomNameJP() string {
	return rom.nameJP
}

// RomNameUS returns the overseas name from the header with spaces collapsed.
func (rom *Rom) RomNameUS() string {
	return rom.nameUS
}

// CRC32 returns the IEEE checksum of the image.
func (rom *Rom) CRC32() uint32 {
	return rom.crc
}

// EEPRomType returns the EEPROM type decided on by Load().
func (rom *Rom) EEPRomType() EEPRomType {
	return rom.eepromType
}

// Load opens the image. Archives are recognised and the first entry with an
// image file extension is extracted. Any previously opened image is closed.
//
// On failure the Rom is left unopened.
func (rom *Rom) Load() error {
	rom.Close()

	f, err := os.Open(rom.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	archive, err := detectArchive(f, rom.Filename)
	if err != nil {
		f.Close()
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if archive != archiveNone {
		f.Close()

		data, entry, err := extract(archive, rom.Filename, rom.MaxArchiveSize)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

		rom.src = bytes.NewReader(data)
		rom.size = int64(len(data))
		rom.ArchiveEntry = entry
		logger.Logf(rom.logPermission(), "cartridgeloader", "extracted %s from %s archive", entry, archive)
	} else {
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return curated.Errorf("cartridgeloader: %v", err)
		}

		rom.src = f
		rom.closer = f
		rom.size = fi.Size()
	}

	// read header for detection purposes
	header := make([]byte, min(rom.size, HeaderSize))
	n, err := rom.src.ReadAt(header, 0)
	if err != nil && err != io.EOF {
		rom.Close()
		return curated.Errorf("cartridgeloader: %v", err)
	}
	header = header[:n]

	if rom.Format == FmtAuto {
		rom.Format = DetectFormat(header)
		rom.autoFormat = true
	}
	if rom.System == SysAuto {
		rom.System = DetectSystem(header, rom.Format)
		rom.autoSystem = true
	}
	logger.Logf(rom.logPermission(), "cartridgeloader", "%s: format %s, system %s", rom.ShortName(), rom.Format, rom.System)

	rom.header = parseHeader(header)
	rom.nameJP = SpaceElim(rom.header.RomNameJP[:])
	rom.nameUS = SpaceElim(rom.header.RomNameUS[:])

	detector := rom.Detector
	if detector == nil {
		detector = NoDetector{}
	}
	rom.eepromType = detector.DetectEEPRomType(rom.header.SerialNumber[:], rom.header.Checksum)

	// checksums of the entire image
	sha := sha1.New()
	crc := crc32.NewIEEE()
	_, err = io.Copy(io.MultiWriter(sha, crc), io.NewSectionReader(rom.src, 0, rom.size))
	if err != nil {
		rom.Close()
		return curated.Errorf("cartridgeloader: %v", err)
	}
	rom.Hash = fmt.Sprintf("%x", sha.Sum(nil))
	rom.crc = crc.Sum32()

	return nil
}

// LoadRom copies the entire image into buf. The number of bytes copied is
// returned. The buffer must be at least as large as the image. A nil buffer
// will cause a panic.
func (rom *Rom) LoadRom(buf []byte) (int, error) {
	if !rom.IsOpen() {
		return 0, curated.Errorf(NotOpened)
	}

	if buf == nil {
		panic("cartridgeloader: nil buffer")
	}

	if len(buf) == 0 || int64(len(buf)) < rom.size {
		return 0, curated.Errorf(BufferTooSmall, len(buf), rom.size)
	}

	n, err := rom.src.ReadAt(buf[:rom.size], 0)
	if err != nil && !(err == io.EOF && int64(n) == rom.size) {
		return n, curated.Errorf("cartridgeloader: %v", err)
	}

	return n, nil
}

// Close the image. It is safe to call Close() on an unopened image.
func (rom *Rom) Close() error {
	var err error
	if rom.closer != nil {
		err = rom.closer.Close()
	}
	rom.src = nil
	rom.closer = nil
	rom.size = 0
	rom.crc = 0
	rom.header = MDHeader{}
	rom.nameJP = ""
	rom.nameUS = ""
	rom.eepromType = NoEEPRom
	rom.ArchiveEntry = ""
	rom.Hash = ""
	if rom.autoFormat {
		rom.Format = FmtAuto
		rom.autoFormat = false
	}
	if rom.autoSystem {
		rom.System = SysAuto
		rom.autoSystem = false
	}
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	return nil
}
