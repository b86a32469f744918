// nefdecode decodes Nikon Electronic Format (NEF) raw camera files into a
// linear, demosaic-ready pixel raster plus structured metadata.
// Copyright (C) 2026  R. Voss
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ifd implements the recursive TIFF/EP Image File Directory walker
// (C3): entities plus the worklist-driven parse that discovers child IFDs,
// the EXIF sub-IFD, and the Nikon Makernote side-trip.
package ifd

import "github.com/go-nef/nefdecode/internal/tiffvalue"

// Entry is one decoded IFD tag: its identity, declared type, and value.
// ValueLocation is the file-absolute offset of either the inline 4-byte
// payload or the out-of-line value buffer, preserved verbatim so later
// passes (the linearization curve decoder) can re-read the same bytes.
type Entry struct {
	TagID         uint16
	TagName       string
	TypeCode      uint16
	Count         uint32
	ValueLocation int64
	Value         tiffvalue.TypedValue
}

// IFD is the tag_id -> Entry mapping for one Image File Directory. Tag ids
// are unique within an IFD; insertion order carries no meaning.
type IFD map[uint16]Entry

// Get returns the entry for tagID and whether it was present.
func (d IFD) Get(tagID uint16) (Entry, bool) {
	e, ok := d[tagID]

	return e, ok
}
