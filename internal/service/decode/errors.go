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

package decode

import "errors"

var (
	// ErrFailedToOpenFile is returned when the backing filesystem fails to
	// open the requested path.
	ErrFailedToOpenFile = errors.New("failed to open specified file")

	// ErrFailedToReadFile is returned when reading the opened file into
	// memory fails before the decode pipeline ever runs.
	ErrFailedToReadFile = errors.New("failed to read specified file")
)
