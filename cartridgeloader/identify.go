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
	"fmt"

	"github.com/megagopher/megagopher/curated"
	"github.com/user-none/eblitui/rdb"
)

// Identity is the entry for an image in a game database.
type Identity struct {
	// full database name. for example, "Sonic the Hedgehog (USA, Europe)"
	Name string

	// name without the region and revision information
	DisplayName string

	// "us", "eu", "jp" or the empty string
	Region string

	Serial string
	MD5    string
}

func (id Identity) String() string {
	if id.Region == "" {
		return id.DisplayName
	}
	return fmt.Sprintf("%s (%s)", id.DisplayName, id.Region)
}

// LoadDatabase reads a libretro RDB file.
func LoadDatabase(filename string) (*rdb.RDB, error) {
	db, err := rdb.LoadRDB(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return db, nil
}

// Identify looks up the image in the database by its CRC32. Returns false if
// the image is not in the database.
func (rom *Rom) Identify(db *rdb.RDB) (Identity, bool) {
	if !rom.IsOpen() || db == nil {
		return Identity{}, false
	}

	g := db.FindByCRC32(rom.crc)
	if g == nil {
		return Identity{}, false
	}

	return Identity{
		Name:        g.Name,
		DisplayName: rdb.GetDisplayName(g.Name),
		Region:      rdb.GetRegionFromName(g.Name),
		Serial:      g.Serial,
		MD5:         g.MD5,
	}, true
}
