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

package byteio

import "errors"

var (
	// ErrTruncated is returned when a read would run past the end of the
	// underlying span.
	ErrTruncated = errors.New("byteio: read past end of span")

	// ErrIO is returned when the backing store fails independently of span
	// bounds (e.g. the underlying os.File returns an I/O error).
	ErrIO = errors.New("byteio: backing store failure")

	// ErrNegativeOffset is returned by SeekAbs/SeekRel when the resulting
	// position would be negative.
	ErrNegativeOffset = errors.New("byteio: negative seek position")
)
