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

import (
	"fmt"

	"github.com/go-nef/nefdecode/internal/ifd"
	"github.com/go-nef/nefdecode/internal/tifftags"
)

// FindRawIFD returns the IFD whose Image Type tag equals 0, the convention
// a NEF uses to mark the full-resolution raw sensor image among its
// sibling IFDs (the others hold preview/thumbnail data).
func FindRawIFD(ifds []ifd.IFD) (ifd.IFD, error) {
	for _, dir := range ifds {
		entry, ok := dir.Get(tifftags.ImageType)
		if !ok {
			continue
		}

		v, ok := entry.Value.AsU32()
		if ok && v == 0 {
			return dir, nil
		}
	}

	return nil, fmt.Errorf("%w: image type 0 (raw)", ErrMissingTag)
}

// FindMakernoteOffset returns the absolute file offset of the Makernote
// entry, searching every outer IFD.
func FindMakernoteOffset(ifds []ifd.IFD) (int64, error) {
	for _, dir := range ifds {
		entry, ok := dir.Get(tifftags.Makernote)
		if !ok {
			continue
		}

		v, ok := entry.Value.AsU32()
		if !ok {
			return 0, fmt.Errorf("%w: makernote tag", ErrTypeMismatch)
		}

		return int64(v), nil
	}

	return 0, ErrNoMakernote
}

// Geometry reads the raw IFD's width/height/bps/offset/compression and
// strip-layout tags in one pass, the way the reference decoder's
// get_raw_image_info does. The CFA tags are read by Cfa.
func Geometry(rawIFD ifd.IFD) (ImageGeometry, error) {
	width, err := requiredU32(rawIFD, tifftags.ImageWidth)
	if err != nil {
		return ImageGeometry{}, err
	}

	height, err := requiredU32(rawIFD, tifftags.ImageHeight)
	if err != nil {
		return ImageGeometry{}, err
	}

	bps, err := requiredU32(rawIFD, tifftags.ImageBPS)
	if err != nil {
		return ImageGeometry{}, err
	}

	offset, err := requiredU32(rawIFD, tifftags.ImageOffset)
	if err != nil {
		return ImageGeometry{}, err
	}

	compression, err := requiredU32(rawIFD, tifftags.ImageCompression)
	if err != nil {
		return ImageGeometry{}, err
	}

	return ImageGeometry{
		Width:           int(width),
		Height:          int(height),
		BitsPerSample:   int(bps),
		Offset:          int64(offset),
		Compression:     int(compression),
		ArrayType:       int(optionalU32(rawIFD, tifftags.ImageArrayType)),
		Orientation:     int(optionalU32(rawIFD, tifftags.ImageOrientation)),
		SamplesPerPixel: int(optionalU32(rawIFD, tifftags.ImageSPP)),
		RowsPerStrip:    int(optionalU32(rawIFD, tifftags.ImageRowsPerStrip)),
		BytesPerStrip:   int(optionalU32(rawIFD, tifftags.ImageBytesPerStrip)),
		PlanarConfig:    int(optionalU32(rawIFD, tifftags.ImagePlanarConfig)),
	}, nil
}

// Cfa reads the raw IFD's CFA repeat-pattern dimensions and pattern bytes.
func Cfa(rawIFD ifd.IFD) (CfaInfo, error) {
	repeat, ok := rawIFD.Get(tifftags.CFARepeatPattern)
	if !ok {
		return CfaInfo{}, fmt.Errorf("%w: CFA repeat pattern dimension", ErrMissingTag)
	}

	dims := repeat.Value.U16s()
	if len(dims) != 2 {
		return CfaInfo{}, fmt.Errorf("%w: CFA repeat pattern dimension", ErrTypeMismatch)
	}

	pattern, ok := rawIFD.Get(tifftags.CFAPattern)
	if !ok {
		return CfaInfo{}, fmt.Errorf("%w: CFA pattern", ErrMissingTag)
	}

	bytes := pattern.Value.U8s()

	var out [4]uint8

	for i := 0; i < len(bytes) && i < len(out); i++ {
		out[i] = bytes[i]
	}

	return CfaInfo{
		Pattern:    out,
		RepeatRows: uint8(dims[0]),
		RepeatCols: uint8(dims[1]),
	}, nil
}

func requiredU32(dir ifd.IFD, tagID uint16) (uint32, error) {
	entry, ok := dir.Get(tagID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingTag, tifftags.Name(tagID))
	}

	v, ok := entry.Value.AsU32()
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTypeMismatch, tifftags.Name(tagID))
	}

	return v, nil
}

func optionalU32(dir ifd.IFD, tagID uint16) uint32 {
	entry, ok := dir.Get(tagID)
	if !ok {
		return 0
	}

	v, _ := entry.Value.AsU32()

	return v
}
