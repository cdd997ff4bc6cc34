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
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/megagopher/megagopher/curated"
	"github.com/nwaples/rardecode/v2"
)

// Sentinel error patterns for archive extraction.
const (
	NoRomFile    = "cartridgeloader: no image file found in archive"
	FileTooLarge = "cartridgeloader: image exceeds maximum size (%d bytes)"
)

// FileExtensions is the list of image file extensions that are recognised
// inside archives.
var FileExtensions = [...]string{".BIN", ".MD", ".GEN", ".SMD", ".32X", ".ISO", ".68K", ".SGD"}

type archiveType int

const (
	archiveNone archiveType = iota
	archiveZip
	archive7z
	archiveGzip
	archiveRar
)

func (a archiveType) String() string {
	switch a {
	case archiveZip:
		return "zip"
	case archive7z:
		return "7z"
	case archiveGzip:
		return "gzip"
	case archiveRar:
		return "rar"
	}
	return "none"
}

var (
	magicZip    = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZipEnd = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z     = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip   = []byte{0x1f, 0x8b}
	magicRar    = []byte("Rar!")
)

// detectArchive looks at the magic bytes at the start of the file and then
// at the file extension.
func detectArchive(r io.ReaderAt, filename string) (archiveType, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return archiveNone, err
	}
	magic = magic[:n]

	switch {
	case bytes.HasPrefix(magic, magicZip) || bytes.HasPrefix(magic, magicZipEnd):
		return archiveZip, nil
	case bytes.HasPrefix(magic, magicRar):
		return archiveRar, nil
	case bytes.HasPrefix(magic, magic7z):
		return archive7z, nil
	case bytes.HasPrefix(magic, magicGzip):
		return archiveGzip, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		return archiveZip, nil
	case ".7z":
		return archive7z, nil
	case ".gz", ".tgz":
		return archiveGzip, nil
	case ".rar":
		return archiveRar, nil
	}

	return archiveNone, nil
}

func isRomFile(name string) bool {
	ext := strings.ToUpper(filepath.Ext(name))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// limitedRead reads all data from the reader. It is an error for there to be
// more than limit bytes.
func limitedRead(r io.Reader, limit int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > limit {
		return nil, curated.Errorf(FileTooLarge, limit)
	}
	return data, nil
}

// extract the first image from the archive. returns the data and the name of
// the archive entry.
func extract(archive archiveType, filename string, limit int) ([]byte, string, error) {
	if limit <= 0 {
		limit = DefaultMaxArchiveSize
	}

	switch archive {
	case archiveZip:
		return extractZip(filename, limit)
	case archive7z:
		return extract7z(filename, limit)
	case archiveGzip:
		return extractGzip(filename, limit)
	case archiveRar:
		return extractRar(filename, limit)
	}

	return nil, "", fmt.Errorf("unsupported archive (%s)", archive)
}

func extractZip(filename string, limit int) ([]byte, string, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, "", fmt.Errorf("zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isRomFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("zip: %w", err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, limit)
		if err != nil {
			return nil, "", fmt.Errorf("zip: %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoRomFile)
}

func extract7z(filename string, limit int) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, "", fmt.Errorf("7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isRomFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("7z: %w", err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, limit)
		if err != nil {
			return nil, "", fmt.Errorf("7z: %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoRomFile)
}

func extractRar(filename string, limit int) ([]byte, string, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, "", fmt.Errorf("rar: %w", err)
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("rar: %w", err)
		}

		if hdr.IsDir || !isRomFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(r, limit)
		if err != nil {
			return nil, "", fmt.Errorf("rar: %s: %w", hdr.Name, err)
		}
		return data, filepath.Base(hdr.Name), nil
	}

	return nil, "", curated.Errorf(NoRomFile)
}

// a gzip file is either a single compressed image or a compressed tar
// archive.
func extractGzip(filename string, limit int) ([]byte, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("gzip: %w", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("gzip: %w", err)
	}
	defer gr.Close()

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return extractTar(gr, limit)
	}

	data, err := limitedRead(gr, limit)
	if err != nil {
		return nil, "", fmt.Errorf("gzip: %w", err)
	}

	name := filepath.Base(filename)
	if gr.Name != "" {
		name = gr.Name
	} else if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}

	return data, name, nil
}

func extractTar(r io.Reader, limit int) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("tar: %w", err)
		}

		if hdr.Typeflag != tar.TypeReg || !isRomFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(tr, limit)
		if err != nil {
			return nil, "", fmt.Errorf("tar: %s: %w", hdr.Name, err)
		}
		return data, filepath.Base(hdr.Name), nil
	}

	return nil, "", curated.Errorf(NoRomFile)
}
