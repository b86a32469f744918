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

// Package tifftags provides best-effort tag-id to tag-name dictionaries for
// the outer TIFF/EXIF namespace and the Nikon Makernote namespace. Looking
// up an unknown id returns "Unknown Tag"; this is not an error (spec §7).
package tifftags

// UnknownTagName is returned by Name/NikonName for an id with no entry.
const UnknownTagName = "Unknown Tag"

// Well-known outer-IFD tag ids referenced directly by the decode pipeline.
const (
	ChildIFDOffsets    = 330
	ExifIFDOffset      = 34665
	Makernote          = 37500
	ImageType          = 0x00FE
	ImageWidth         = 256
	ImageHeight        = 257
	ImageBPS           = 258
	ImageCompression   = 0x0103
	ImageArrayType     = 0x0106
	ImageOffset        = 0x0111
	ImageOrientation   = 0x0112
	ImageSPP           = 0x0115
	ImageRowsPerStrip  = 0x0116
	ImageBytesPerStrip = 0x0117
	ImagePlanarConfig  = 0x011C
	CFARepeatPattern   = 0x828D
	CFAPattern         = 0x828E
	SensingMethod      = 0x9217
)

// exifTags is the outer EXIF/TIFF tag dictionary, ported from the original
// NEF decoder's EXIF_TAGS table.
var exifTags = map[uint16]string{
	1:  "Firmware",
	2:  "ISO",
	3:  "Color Mode",
	4:  "Quality",
	5:  "White Balance",
	6:  "Sharpening",
	7:  "Focus Mode",
	8:  "Flash Setting",
	9:  "Auto Flash Mode",
	11: "White Balance Fine",
	12: "White Balance RB Coefficients",
	14: "Exposure Difference",
	15: "ISO Selection",
	16: "Data Dump",
	17: "Thumbnail Offset",
	18: "Flash Compensation",
	19: "ISO Requested",
	22: "NDF Image Boundary",
	24: "Flash Bracket Compensation",
	25: "AE Bracket Compensation",
	27: "Sensor Size",
	29: "D2X Serial Number",

	128: "Image Adjustment",
	129: "Tone Compensation",
	130: "Lens Adapter",
	131: "Lens Type",
	132: "Lens Range",
	133: "Focus Distance",
	134: "Digital Zoom",
	135: "Flash Type",
	136: "AF Focus Position",
	137: "Bracketing",
	139: "Lens F Stop",
	140: "Curve",
	141: "Color Mode",
	142: "Lighting Type",
	143: "Scene Mode",
	144: "Light Type",
	146: "Hue",
	147: "Flash",
	148: "Saturation",
	149: "Noise Reduction",
	150: "Compression Data",
	152: "Lens Info",
	153: "Bayer Unit Count",
	154: "Sensor Pixel Size",
	160: "Camera Serial Number",
	162: "NDF Length",
	167: "Shutter Count",
	169: "Image Optimization",
	170: "Saturation",
	171: "Vari Program",

	ImageType:          "Image Type",
	ImageWidth:         "Image Width",
	ImageHeight:        "Image Height",
	ImageBPS:           "Image Bits Per Sample",
	ImageCompression:   "Image Compression",
	ImageArrayType:     "Image Pixel Array Type",
	ImageOffset:        "Image Offset",
	ImageOrientation:   "Image Orientation",
	ImageSPP:           "Image Samples Per Pixel",
	ImageRowsPerStrip:  "Image Rows Per Strip",
	ImageBytesPerStrip: "Image Bytes Per Strip",
	ImagePlanarConfig:  "Image Planar Configuration",
	CFARepeatPattern:   "CFA Repeat Pattern Dimension",
	CFAPattern:         "CFA Pattern",
	SensingMethod:      "Sensing Method",

	282: "Image X-Axis Resolution",
	283: "Image Y-Axis Resolution",
	296: "Image Resolution Units",
	305: "Software String",
	306: "Modification Date",

	ChildIFDOffsets: "Child IFD Offsets",

	532: "Black/White Pixel Values",

	3584: "Print IM",
	3585: "Capture Editor Data",
	3598: "Capture Offsets",

	ExifIFDOffset: "EXIF IFD Offset",

	36867: "Original Date",
	37398: "TIFF-EP Standard ID",
	33434: "Exposure Time",
	33437: "f Stop",
	34850: "Exposure Program",
	36868: "Exposure Date",
	37380: "Exposure Compensation",
	37381: "Maximum Aperture",
	37383: "Metering Mode",
	37384: "White Balance Preset",
	37385: "Flash",
	37386: "Focal Length",

	Makernote: "Makernote",

	37510: "User Comments",
	37520: "Sub-Second Time",
	37521: "Sub-Second Time Original",
	37522: "Sub-Second Time Exposure",
	41495: "Sensing Method",
	41728: "File Source",
	41729: "Scene Type",
	41730: "CFA Pattern",
	41985: "Custom Rendered",
	41986: "Exposure Mode",
	41987: "White Balance Auto/Manual",
	41988: "Digital Zoom",
	41989: "Focal Length (35mm Equivalent)",
	41990: "Orientation",
	41991: "Gain Control",
	41992: "Contrast Setting",
	41993: "Saturation Setting",
	41994: "Sharpness Setting",
	41996: "Subject Distance Range",
	513:   "Thumbnail Offset",
	514:   "Thumbnail Data Length",
	531:   "YCbCr Positioning",
}

// Name returns the best-effort name for an outer TIFF/EXIF tag id.
func Name(tagID uint16) string {
	if name, ok := exifTags[tagID]; ok {
		return name
	}

	return UnknownTagName
}
