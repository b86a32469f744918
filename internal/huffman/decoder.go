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

// Package huffman compiles the six precomputed Nikon Huffman trees into flat
// decode tables (C7) and resolves one run-length/category symbol at a time
// from a bitstream.Reader (C6).
package huffman

import "github.com/go-nef/nefdecode/internal/bitstream"

// prefixBitsFor reports the peek width used to index a tree's flat table:
// 12 bits for the 12-bit-sensor trees, 16 for the 14-bit-sensor trees.
func prefixBitsFor(tree TreeIndex) int {
	if tree >= Tree14Lossy {
		return 16
	}

	return 12
}

// cell is one flat-table entry: the number of bits the matched code
// occupies, and the difference category it resolves to.
type cell struct {
	codeLen  uint8
	category uint8
}

// Table is a compiled flat decode table for one Nikon Huffman tree, indexed
// by a tree-specific-width prefix peeked from the bitstream.
type Table struct {
	prefixBits int
	cells      []cell
}

var compiled [numTrees]*Table

func init() {
	for i, t := range rawTrees {
		compiled[i] = compile(t, prefixBitsFor(TreeIndex(i)))
	}
}

// compile expands a (bits, huffval) specification into a flat lookup table,
// assigning canonical codes the same way a JPEG DHT segment does: walk
// lengths 1..16 in order, handing out bits[length-1] sequential codes at
// that length before shifting left into the next length.
func compile(t rawTree, prefixBits int) *Table {
	tbl := &Table{prefixBits: prefixBits, cells: make([]cell, 1<<prefixBits)}

	code := 0
	sym := 0

	for length := 1; length <= 16; length++ {
		for n := 0; n < t.bits[length-1]; n++ {
			category := t.huffval[sym]
			sym++

			if length <= prefixBits {
				shift := prefixBits - length
				base := code << uint(shift)

				for fill := 0; fill < 1<<uint(shift); fill++ {
					tbl.cells[base+fill] = cell{codeLen: uint8(length), category: category}
				}
			}
			// Codes longer than prefixBits do not occur in practice (the
			// widest table here is 16 bits); such a code would simply be
			// unreachable through this table by construction.

			code++
		}

		code <<= 1
	}

	return tbl
}

// DecodeOne resolves one (code_length, category) pair from r using tree,
// then returns the signed difference it encodes.
func DecodeOne(r *bitstream.Reader, tree TreeIndex) (int32, error) {
	tbl := compiled[tree]

	prefix, err := r.Peek(tbl.prefixBits)
	if err != nil {
		return 0, err
	}

	c := tbl.cells[prefix]

	if err := r.Consume(int(c.codeLen)); err != nil {
		return 0, err
	}

	if c.category == 0 {
		return 0, nil
	}

	raw, err := r.Peek(int(c.category))
	if err != nil {
		return 0, err
	}

	if err := r.Consume(int(c.category)); err != nil {
		return 0, err
	}

	top := uint32(1) << (c.category - 1)

	var diff int32
	if raw&top == 0 {
		diff = int32(raw) - int32((uint32(1)<<c.category)-1)
	} else {
		diff = int32(raw)
	}

	return diff, nil
}
