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

package savestate

import (
	"archive/zip"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/version"
)

// FormatEntry is the name of the entry describing a ZOMG container.
const FormatEntry = "FORMAT.ini"

// ZOMG container identification. The Creator value written to FORMAT.ini
// comes from the version package.
const (
	FileType      = "Zipped Original Memory from Genesis"
	FormatVersion = "0.1"
)

// the largest block that will be read from a container. the preview image
// and SRAM are the only blocks without a fixed size.
const maxEntrySize = 4 * 1024 * 1024

// ZipStore is a ZOMG container: a zip archive with one entry per block and a
// FORMAT.ini entry identifying the file. Blocks that do not belong to the
// container's system are not supported.
type ZipStore struct {
	Unsupported

	filename string
	mode     Mode

	// the system the container was created for
	System System

	// values from FORMAT.ini
	Format map[string]string

	// saving collects blocks in memory and writes them when the store is
	// closed
	blocks map[BlockKind][]byte

	// loading reads blocks directly from the archive
	reader  *zip.ReadCloser
	entries map[BlockKind]*zip.File
}

// OpenZip opens a ZOMG container for loading or saving. A container opened
// for saving is created for the Mega Drive.
func OpenZip(filename string, mode Mode) (*ZipStore, error) {
	s := &ZipStore{
		filename: filename,
		System:   SysMD,
		Format:   make(map[string]string),
	}

	switch mode {
	case ModeSave:
		s.blocks = make(map[BlockKind][]byte)
	case ModeLoad:
		if err := s.openLoad(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("savestate: cannot open in %s mode", mode)
	}

	s.mode = mode

	return s, nil
}

func (s *ZipStore) openLoad() error {
	r, err := zip.OpenReader(s.filename)
	if err != nil {
		return curated.Errorf(BadFormat, err)
	}

	s.entries = make(map[BlockKind]*zip.File)
	var format *zip.File

	for _, f := range r.File {
		if f.Name == FormatEntry {
			format = f
			continue
		}
		if k, ok := blockFromEntry(f.Name); ok {
			s.entries[k] = f
		}
	}

	if format == nil {
		r.Close()
		return curated.Errorf(BadFormat, fmt.Sprintf("no %s", FormatEntry))
	}

	if err := s.readFormat(format); err != nil {
		r.Close()
		return curated.Errorf(BadFormat, err)
	}

	s.reader = r
	return nil
}

// FORMAT.ini is a list of key=value pairs. section headers and comments are
// ignored.
func (s *ZipStore) readFormat(f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	scan := bufio.NewScanner(rc)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "[") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		s.Format[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := scan.Err(); err != nil {
		return err
	}

	if s.Format["FileType"] != FileType {
		return fmt.Errorf("unrecognised file type %q", s.Format["FileType"])
	}
	if sys, ok := s.Format["System"]; ok {
		s.System = System(sys)
	}

	return nil
}

// Mode implements the Store interface.
func (s *ZipStore) Mode() Mode {
	return s.mode
}

func (s *ZipStore) supports(kind BlockKind) bool {
	sys := kind.System()
	return sys == SysCommon || sys == s.System
}

// Load implements the Store interface.
func (s *ZipStore) Load(kind BlockKind, order ByteOrder, buf []byte) (int, error) {
	if s.mode != ModeLoad {
		return 0, curated.Errorf(WrongMode, ModeLoad)
	}
	if !kind.valid() {
		return 0, curated.Errorf(UnknownBlock, kind)
	}
	if !s.supports(kind) {
		return s.Unsupported.Load(kind, order, buf)
	}

	f, ok := s.entries[kind]
	if !ok {
		return 0, curated.Errorf(MissingBlock, kind)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, curated.Errorf("savestate: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return 0, curated.Errorf("savestate: %v", err)
	}
	if len(data) > maxEntrySize {
		return 0, curated.Errorf(BadBlockSize, kind, len(data), maxEntrySize)
	}

	return decode(kind, order, data, buf)
}

// Save implements the Store interface.
func (s *ZipStore) Save(kind BlockKind, order ByteOrder, buf []byte) (int, error) {
	if s.mode != ModeSave {
		return 0, curated.Errorf(WrongMode, ModeSave)
	}
	if !kind.valid() {
		return 0, curated.Errorf(UnknownBlock, kind)
	}
	if !s.supports(kind) {
		return s.Unsupported.Save(kind, order, buf)
	}

	data, err := encode(kind, order, buf)
	if err != nil {
		return 0, err
	}
	s.blocks[kind] = data
	return len(data), nil
}

// Blocks returns the kinds of block in the container in canonical order.
func (s *ZipStore) Blocks() []BlockKind {
	var kinds []BlockKind
	for k := BlockKind(0); k < NumBlocks; k++ {
		var ok bool
		switch s.mode {
		case ModeLoad:
			_, ok = s.entries[k]
		case ModeSave:
			_, ok = s.blocks[k]
		}
		if ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Close implements the Store interface. A container opened for saving is
// written to disk when it is closed. The file is replaced in a single step so
// a failed write never leaves a partial container.
func (s *ZipStore) Close() error {
	mode := s.mode
	s.mode = ModeClosed

	switch mode {
	case ModeLoad:
		s.entries = nil
		if s.reader != nil {
			err := s.reader.Close()
			s.reader = nil
			if err != nil {
				return curated.Errorf("savestate: %v", err)
			}
		}
		logger.Logf(s.logPermission(), "savestate", "%s read", s.filename)
	case ModeSave:
		err := s.write()
		s.blocks = nil
		if err != nil {
			return curated.Errorf("savestate: %v", err)
		}
		logger.Logf(s.logPermission(), "savestate", "%s written", s.filename)
	}

	return nil
}

func (s *ZipStore) write() error {
	var b bytes.Buffer
	w := zip.NewWriter(&b)

	f, err := w.Create(FormatEntry)
	if err != nil {
		return err
	}
	s.Format["FileType"] = FileType
	s.Format["Version"] = FormatVersion
	s.Format["System"] = string(s.System)
	s.Format["Creator"] = version.Creator()
	for _, k := range []string{"FileType", "Version", "System", "Creator"} {
		if _, err := fmt.Fprintf(f, "%s=%s\r\n", k, s.Format[k]); err != nil {
			return err
		}
	}

	for k := BlockKind(0); k < NumBlocks; k++ {
		data, ok := s.blocks[k]
		if !ok {
			continue
		}
		f, err := w.Create(k.Entry())
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	return replaceFile(s.filename, b.Bytes())
}

// replaceFile writes data to a temporary file in the same directory as
// filename and renames it into place.
func replaceFile(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".zomg-*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), filename)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
