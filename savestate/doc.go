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

// Package savestate defines the blocks of machine state that make up a
// savestate and the stores that hold them.
//
// Every block has a fixed size, apart from the preview image and SRAM, and
// a canonical big-endian layout. Callers pass buffers in whatever byte order
// is convenient and the store converts to and from the canonical order using
// the block's layout.
//
// Two stores are provided. MemoryStore holds blocks in memory and
// ZipStore reads and writes the ZOMG container format, a zip archive with
// one entry per block:
//
//	FORMAT.ini
//	common/Z80_mem.bin
//	common/Z80_reg.bin
//	MD/M68K_mem.bin
//	MD/M68K_reg.bin
//	...
//
// A store that does not support a block embeds Unsupported. Transfers of an
// unsupported block succeed with zero bytes transferred.
//
// The register blocks have typed codecs, EncodeZ80Reg and DecodeZ80Reg for
// example, which work at fixed offsets and do not depend on the layout of Go
// structs.
package savestate
