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

// Package nef is the public façade over the decode pipeline (C9): the
// Result a decode produces, plus convenience lookups (image geometry, CFA
// pattern) over the raw IFD and the single Decode entry point that glues
// C1 through C8 into one call.
package nef

import (
	"github.com/go-nef/nefdecode/internal/ifd"
	"github.com/go-nef/nefdecode/internal/raster"
)

// Result is everything a decode call returns to external collaborators.
type Result struct {
	// IFDs holds every outer IFD discovered, in the order their parse
	// completed.
	IFDs []ifd.IFD

	// Makernote is the Nikon-tagged IFD, with its linearization-curve
	// entry's value replaced by the expanded curve.
	Makernote ifd.IFD

	// Raster is the linearized sensor sample grid.
	Raster raster.Raster

	// Geometry is the raw IFD's width/height/bps/offset/strip-layout
	// bundle, read in one pass the way the original reference decoder
	// does.
	Geometry ImageGeometry

	// Cfa is the raw IFD's colour filter array pattern, for downstream
	// demosaicing.
	Cfa CfaInfo
}

// CfaInfo is the colour filter array layout a downstream demosaic step
// needs: the repeat unit's dimensions and its 4-byte pattern.
type CfaInfo struct {
	Pattern    [4]uint8
	RepeatRows uint8
	RepeatCols uint8
}

// ImageGeometry bundles the raw-IFD tags the original reference decoder's
// get_raw_image_info reads together: width, height, bits per sample, strip
// offset/layout, compression, pixel array type, orientation, samples per
// pixel, and planar configuration.
type ImageGeometry struct {
	Width           int
	Height          int
	BitsPerSample   int
	Offset          int64
	Compression     int
	ArrayType       int
	Orientation     int
	SamplesPerPixel int
	RowsPerStrip    int
	BytesPerStrip   int
	PlanarConfig    int
}
