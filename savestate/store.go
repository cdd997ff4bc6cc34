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
	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
)

// Sentinel error patterns returned by stores.
const (
	WrongMode    = "savestate: store is not open for %s"
	BadBlockSize = "savestate: %s block is %d bytes (expected %d)"
	UnknownBlock = "savestate: unknown block (%s)"
	MissingBlock = "savestate: %s block is not present"
	BadFormat    = "savestate: not a ZOMG file (%v)"
)

// Store is the block transfer interface implemented by every savestate
// container.
//
// Load and Save return the number of bytes transferred. The order argument
// is the byte order of multi-byte fields in buf. Transfers are all or
// nothing: if an error is returned then buf and the store are unchanged.
type Store interface {
	Mode() Mode
	Close() error
	Load(kind BlockKind, order ByteOrder, buf []byte) (int, error)
	Save(kind BlockKind, order ByteOrder, buf []byte) (int, error)
}

// Unsupported can be embedded in a Store implementation to provide the
// default transfer of a block the store does not support. The default is a
// successful transfer of zero bytes.
type Unsupported struct {
	perm logger.Permission
}

// SetLogPermission sets the permission used when logging. The zero value
// logs with logger.Allow.
func (u *Unsupported) SetLogPermission(perm logger.Permission) {
	u.perm = perm
}

func (u Unsupported) logPermission() logger.Permission {
	if u.perm == nil {
		return logger.Allow
	}
	return u.perm
}

// Load implements the Store interface.
func (u Unsupported) Load(kind BlockKind, _ ByteOrder, _ []byte) (int, error) {
	logger.Logf(u.logPermission(), "savestate", "load: %s block not supported", kind)
	return 0, nil
}

// Save implements the Store interface.
func (u Unsupported) Save(kind BlockKind, _ ByteOrder, _ []byte) (int, error) {
	logger.Logf(u.logPermission(), "savestate", "save: %s block not supported", kind)
	return 0, nil
}

// checkSize returns an error if n is not a valid size for the block.
// Variable sized blocks accept any size.
func checkSize(kind BlockKind, n int) error {
	if !kind.valid() {
		return curated.Errorf(UnknownBlock, kind)
	}
	if kind.Variable() {
		return nil
	}
	if n != kind.Size() {
		return curated.Errorf(BadBlockSize, kind, n, kind.Size())
	}
	return nil
}

// encode returns a copy of buf converted to big-endian.
func encode(kind BlockKind, order ByteOrder, buf []byte) ([]byte, error) {
	if err := checkSize(kind, len(buf)); err != nil {
		return nil, err
	}
	data := make([]byte, len(buf))
	copy(data, buf)
	blocks[kind].layout.convert(data, order, BigEndian)
	return data, nil
}

// decode copies the big-endian data into buf, converting to the byte order
// of buf. A variable sized block can be loaded into a larger buffer. The
// remainder of the buffer is not touched.
func decode(kind BlockKind, order ByteOrder, data []byte, buf []byte) (int, error) {
	if err := checkSize(kind, len(data)); err != nil {
		return 0, err
	}
	if kind.Variable() {
		if len(buf) < len(data) {
			return 0, curated.Errorf(BadBlockSize, kind, len(buf), len(data))
		}
	} else if len(buf) != len(data) {
		return 0, curated.Errorf(BadBlockSize, kind, len(buf), len(data))
	}

	conv := make([]byte, len(data))
	copy(conv, data)
	blocks[kind].layout.convert(conv, BigEndian, order)
	return copy(buf, conv), nil
}
