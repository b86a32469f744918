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

package huffman

// rawTree is one Nikon Huffman tree in JPEG DHT form: bits[i] counts the
// codes of length i+1 (i.e. bits[0] is the count of 1-bit codes, bits[15]
// the count of 16-bit codes), and huffval lists the difference categories
// in the order their codes are assigned (shortest codes first; within one
// length, in the table's own order). Together they define the exact per-length code-count structure
// the camera firmware uses; compile() assigns canonical codes from them the
// same way a JPEG DHT segment would.
type rawTree struct {
	bits    [16]int
	huffval []uint8
}

// TreeIndex selects one of the six precomputed Nikon trees. Index 0 and 3
// are the pre-split variants for 12-bit and 14-bit sensors; 1 and 4 are
// their post-split counterparts (see C8's split-row handling); 2 and 5 are
// the lossless variants used when v0 == 0x46.
type TreeIndex uint8

const (
	Tree12Lossy TreeIndex = iota
	Tree12LossyAfterSplit
	Tree12Lossless
	Tree14Lossy
	Tree14LossyAfterSplit
	Tree14Lossless

	numTrees = 6
)

// rawTrees mirrors the Nikon nikon_tree table: six (bits, huffval) pairs,
// one per TreeIndex, transcribed from the reference decoder's precomputed
// trees.
var rawTrees = [numTrees]rawTree{
	Tree12Lossy: {
		bits:    [16]int{0, 1, 4, 1, 1, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0, 0},
		huffval: []uint8{5, 4, 3, 6, 2, 7, 1, 0, 8, 9, 11, 10, 12},
	},
	// The after-split tree covers the same 13-category alphabet as
	// Tree12Lossy with different per-length counts and code order.
	Tree12LossyAfterSplit: {
		bits:    [16]int{0, 1, 5, 1, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0, 0, 0},
		huffval: []uint8{6, 5, 4, 7, 2, 8, 3, 1, 0, 9, 11, 10, 12},
	},
	Tree12Lossless: {
		bits:    [16]int{0, 1, 4, 2, 3, 1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		huffval: []uint8{5, 4, 6, 3, 7, 2, 8, 1, 9, 0, 10, 11, 12},
	},
	Tree14Lossy: {
		bits:    [16]int{0, 1, 4, 3, 1, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0, 0},
		huffval: []uint8{5, 6, 4, 7, 8, 3, 9, 2, 1, 0, 10, 11, 12, 13, 14},
	},
	Tree14LossyAfterSplit: {
		bits:    [16]int{0, 1, 5, 1, 1, 1, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0},
		huffval: []uint8{8, 7, 6, 9, 11, 10, 5, 12, 4, 3, 2, 1, 0, 13, 14},
	},
	Tree14Lossless: {
		bits:    [16]int{0, 1, 4, 2, 2, 3, 1, 2, 0, 0, 0, 0, 0, 0, 0, 0},
		huffval: []uint8{7, 6, 8, 5, 9, 4, 10, 3, 11, 12, 2, 0, 1, 13, 14},
	},
}
