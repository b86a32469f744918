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

package tifftags

// Well-known Nikon Makernote (type 3) tag ids referenced directly by the
// decode pipeline.
const (
	NikonVersion         = 0x0001
	NikonISO             = 0x0002
	NikonNEFCompression  = 0x0093
	NikonLinearization   = 0x0096
	NikonColorBalance    = 0x0097
	NikonLensData        = 0x0098
	NikonShutterCount    = 0x00A7
)

// nikonTags is the Nikon type-3 Makernote tag dictionary, ported from the
// original NEF decoder's NIKON_TAGS table and expanded with additional
// entries from the richer Nikon tag set used across the corpus.
var nikonTags = map[uint16]string{
	NikonVersion: "Makernote Version",
	NikonISO:     "ISO",
	4:            "Quality",
	5:            "White Balance",
	6:            "Sharpness",
	7:            "Focus Mode",
	8:            "Flash Setting",
	9:            "Flash Type",
	11:           "White Balance Fine Tune",
	12:           "White Balance RB Coefficients",
	13:           "Program Shift",
	14:           "Exposure Difference",
	15:           "ISO Selection",
	16:           "Data Dump",
	17:           "Nikon Preview Offset",
	18:           "Flash Exposure Comp",
	19:           "ISO Setting",
	22:           "Image Boundary",
	23:           "EV Value?",
	24:           "Flash Exposure Bracket Value",
	25:           "Exposure Bracket Value",
	26:           "Image Processing",
	27:           "Crop High Speed",
	28:           "Exposure Tuning",
	29:           "Serial Number (Encryption Key)",
	30:           "Color Space",
	31:           "VR Info",
	34:           "Active D-Lighting",
	35:           "Picture Control Data",
	36:           "World Time",
	37:           "ISO Info",
	43:           "Distortion Info",
	128:          "Image Adjustment",
	129:          "Tone Compensation",
	130:          "Lens Adapter",
	131:          "Lens Type",
	132:          "Lens",
	133:          "Manual Focus Distance",
	134:          "Digital Zoom Factor",
	135:          "Flash Mode",
	136:          "AF Info",
	137:          "Shooting Mode",
	139:          "Lens F/Stops",
	140:          "Contrast Curve",
	141:          "Color Hue",
	143:          "Scene Mode",
	144:          "Light Source",
	145:          "Shot Info Block",
	146:          "Hue Adjustment",
	NikonNEFCompression: "NEF Compression",
	148:                 "Saturation",
	149:                 "Noise Reduction",
	NikonLinearization:  "Linearization Table",
	NikonColorBalance:   "Color Balance",
	NikonLensData:       "Lens Data",
	153:                 "Raw Image Center",
	154:                 "Sensor Pixel Size",
	157:                 "Date Stamp Mode",
	158:                 "Retouch History",
	160:                 "Serial Number",
	162:                 "Image Size",
	163:                 "Unknown A3",
	164:                 "Image Version Number?",
	NikonShutterCount:   "Shutter Count (Encryption Key)",
	168:                 "Flash Info Block",
	169:                 "Image Optimization",
	170:                 "Saturation",
	171:                 "Vari Program",
	176:                 "Multiple Exposure",
	177:                 "High ISO Noise Reduction",
	182:                 "Power Up Time",
	183:                 "AF Info 2",
	184:                 "File Info",
	187:                 "Retouch Info",
}

// NikonName returns the best-effort name for a Nikon Makernote tag id.
func NikonName(tagID uint16) string {
	if name, ok := nikonTags[tagID]; ok {
		return name
	}

	return UnknownTagName
}
