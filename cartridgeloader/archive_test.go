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

package cartridgeloader_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/megagopher/megagopher/cartridgeloader"
	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/test"
)

type entry struct {
	name string
	data []byte
}

func makeZip(t *testing.T, entries ...entry) []byte {
	t.Helper()
	var b bytes.Buffer
	w := zip.NewWriter(&b)
	for _, e := range entries {
		f, err := w.Create(e.name)
		test.DemandSuccess(t, err)
		_, err = f.Write(e.data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, w.Close())
	return b.Bytes()
}

func makeGzip(t *testing.T, name string, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	w.Name = name
	_, err := w.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())
	return b.Bytes()
}

func makeTar(t *testing.T, entries ...entry) []byte {
	t.Helper()
	var b bytes.Buffer
	w := tar.NewWriter(&b)
	for _, e := range entries {
		err := w.WriteHeader(&tar.Header{
			Name:     e.name,
			Mode:     0o600,
			Size:     int64(len(e.data)),
			Typeflag: tar.TypeReg,
		})
		test.DemandSuccess(t, err)
		_, err = w.Write(e.data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, w.Close())
	return b.Bytes()
}

func loadArchive(t *testing.T, name string, data []byte) *cartridgeloader.Rom {
	t.Helper()
	rom := cartridgeloader.NewRom(writeFile(t, name, data), cartridgeloader.SysAuto, cartridgeloader.FmtAuto)
	t.Cleanup(func() {
		rom.Close()
	})
	return rom
}

func TestZip(t *testing.T) {
	image := makeImage(0x1000)
	rom := loadArchive(t, "sonic.zip", makeZip(t,
		entry{name: "readme.txt", data: []byte("not an image")},
		entry{name: "roms/Sonic.md", data: image},
	))
	test.DemandSuccess(t, rom.Load())

	test.ExpectEquality(t, rom.ArchiveEntry, "Sonic.md")
	test.ExpectEquality(t, rom.ShortName(), "Sonic")
	test.ExpectEquality(t, rom.Size(), len(image))
	test.ExpectEquality(t, rom.RomNameUS(), "SONIC THE HEDGEHOG")

	buf := make([]byte, len(image))
	_, err := rom.LoadRom(buf)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(buf, image))
}

func TestZipNoImage(t *testing.T) {
	rom := loadArchive(t, "empty.zip", makeZip(t,
		entry{name: "readme.txt", data: []byte("not an image")},
	))
	err := rom.Load()
	test.ExpectSuccess(t, curated.Has(err, cartridgeloader.NoRomFile))
	test.ExpectFailure(t, rom.IsOpen())
}

func TestZipTooLarge(t *testing.T) {
	rom := loadArchive(t, "large.zip", makeZip(t,
		entry{name: "large.bin", data: makeImage(0x1000)},
	))
	rom.MaxArchiveSize = 0x800
	err := rom.Load()
	test.ExpectSuccess(t, curated.Has(err, cartridgeloader.FileTooLarge))

	rom.MaxArchiveSize = 0x1000
	test.ExpectSuccess(t, rom.Load())
}

func TestGzip(t *testing.T) {
	image := makeImage(0x1000)

	// the file extension does not matter when the magic bytes are present
	rom := loadArchive(t, "sonic.md.gz", makeGzip(t, "", image))
	test.DemandSuccess(t, rom.Load())
	test.ExpectEquality(t, rom.ArchiveEntry, "sonic.md")
	test.ExpectEquality(t, rom.Size(), len(image))

	// the original name stored in the gzip header is used when present
	rom = loadArchive(t, "compressed", makeGzip(t, "Sonic.gen", image))
	test.DemandSuccess(t, rom.Load())
	test.ExpectEquality(t, rom.ArchiveEntry, "Sonic.gen")
}

func TestTarGzip(t *testing.T) {
	image := makeImage(0x1000)
	tarball := makeTar(t,
		entry{name: "docs/manual.txt", data: []byte("manual")},
		entry{name: "roms/sonic.bin", data: image},
	)

	rom := loadArchive(t, "sonic.tar.gz", makeGzip(t, "", tarball))
	test.DemandSuccess(t, rom.Load())
	test.ExpectEquality(t, rom.ArchiveEntry, "sonic.bin")
	test.ExpectEquality(t, rom.Size(), len(image))
	test.ExpectEquality(t, rom.RomNameJP(), "SONIC THE HEDGEHOG")
}
