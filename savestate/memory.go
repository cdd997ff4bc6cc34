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
)

// MemoryStore keeps blocks in memory. It supports every block kind.
type MemoryStore struct {
	mode   Mode
	blocks map[BlockKind][]byte
}

// NewMemoryStore is the preferred method of initialisation for the
// MemoryStore type. The store is empty and opened for saving.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mode:   ModeSave,
		blocks: make(map[BlockKind][]byte),
	}
}

// Mode implements the Store interface.
func (s *MemoryStore) Mode() Mode {
	return s.mode
}

// Close implements the Store interface. Saved blocks are kept and can be
// reached by reopening the store.
func (s *MemoryStore) Close() error {
	s.mode = ModeClosed
	return nil
}

// Reopen the store in the specified mode. Opening for saving discards any
// existing blocks.
func (s *MemoryStore) Reopen(mode Mode) {
	if mode == ModeSave {
		clear(s.blocks)
	}
	s.mode = mode
}

// Load implements the Store interface.
func (s *MemoryStore) Load(kind BlockKind, order ByteOrder, buf []byte) (int, error) {
	if s.mode != ModeLoad {
		return 0, curated.Errorf(WrongMode, ModeLoad)
	}
	data, ok := s.blocks[kind]
	if !ok {
		return 0, curated.Errorf(MissingBlock, kind)
	}
	return decode(kind, order, data, buf)
}

// Save implements the Store interface.
func (s *MemoryStore) Save(kind BlockKind, order ByteOrder, buf []byte) (int, error) {
	if s.mode != ModeSave {
		return 0, curated.Errorf(WrongMode, ModeSave)
	}
	data, err := encode(kind, order, buf)
	if err != nil {
		return 0, err
	}
	s.blocks[kind] = data
	return len(data), nil
}

// Blocks returns the kinds of block in the store in canonical order.
func (s *MemoryStore) Blocks() []BlockKind {
	var kinds []BlockKind
	for k := BlockKind(0); k < NumBlocks; k++ {
		if _, ok := s.blocks[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
