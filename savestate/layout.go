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

// field is a run of count values, each width bytes wide.
type field struct {
	width int
	count int
}

// layout describes the multi-byte fields of a block in order.
type layout []field

func (l layout) size() int {
	var n int
	for _, f := range l {
		n += f.width * f.count
	}
	return n
}

// convert the data in place from one byte order to another. data must be
// exactly l.size() bytes long.
func (l layout) convert(data []byte, from ByteOrder, to ByteOrder) {
	if from.little() == to.little() {
		return
	}

	var i int
	for _, f := range l {
		if f.width == 1 {
			i += f.count
			continue
		}
		for range f.count {
			v := data[i : i+f.width]
			for a, b := 0, f.width-1; a < b; a, b = a+1, b-1 {
				v[a], v[b] = v[b], v[a]
			}
			i += f.width
		}
	}
}
