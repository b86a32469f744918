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

package nef

import "errors"

var (
	// ErrMissingTag is returned when a tag the façade or the decode pipeline
	// requires is absent from the IFD it was looked up in.
	ErrMissingTag = errors.New("nef: required tag missing")

	// ErrTypeMismatch is returned when a tag's declared TIFF type is
	// incompatible with the semantics the façade expects of it.
	ErrTypeMismatch = errors.New("nef: tag type mismatch")

	// ErrNoMakernote is returned when no outer IFD carries a Makernote tag.
	ErrNoMakernote = errors.New("nef: no makernote tag found")

	// ErrBadMagic is returned when the outer TIFF header's byte-order
	// sentinel or magic number does not match what a NEF must carry.
	ErrBadMagic = errors.New("nef: byte order or magic mismatch")
)
