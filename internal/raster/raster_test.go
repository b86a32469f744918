package raster

import (
	"context"
	"strings"
	"testing"

	"github.com/go-nef/nefdecode/internal/huffman"
	"github.com/go-nef/nefdecode/internal/lincurve"
)

// packBits turns a string of '0'/'1' characters into bytes, zero-padding
// the final byte, mirroring how a real encoder pads its last byte.
func packBits(bits string) []byte {
	for len(bits)%8 != 0 {
		bits += "0"
	}

	out := make([]byte, len(bits)/8)

	for i := 0; i < len(out); i++ {
		var b byte

		for j := 0; j < 8; j++ {
			b <<= 1

			if bits[i*8+j] == '1' {
				b |= 1
			}
		}

		out[i] = b
	}

	return out
}

// Canonical codes compiled from Tree12Lossy's and Tree12LossyAfterSplit's
// (bits, huffval) tables for the three categories this test exercises.
const (
	lossyCat0 = "110110" // Tree12Lossy, category 0 (difference always 0)
	lossyCat2 = "101"    // Tree12Lossy, category 2 (2 raw bits follow)
	lossyCat1 = "11010"  // Tree12Lossy, category 1 (1 raw bit follows)

	splitCat0 = "111110" // Tree12LossyAfterSplit, category 0
	splitCat2 = "101"    // Tree12LossyAfterSplit, category 2
	splitCat1 = "11110"  // Tree12LossyAfterSplit, category 1
)

func identityCurve(numPoints int, splitRow int32) lincurve.Curve {
	expanded := make([]uint16, numPoints)
	for i := range expanded {
		expanded[i] = uint16(i)
	}

	return lincurve.Curve{
		VertPred:      [2][2]uint16{{0, 0}, {0, 0}},
		NumPoints:     numPoints,
		ExpandedCurve: expanded,
		SplitRow:      splitRow,
	}
}

func TestReconstructPredictorLawAndSplit(t *testing.T) {
	// Row 0 decodes under Tree12Lossy (pre-split):
	//   diff 0: category 0, no extra bits.
	//   diff +3: category 2, raw "11" (top bit set -> +3).
	//   diff +1: category 1, raw "1" (top bit set -> +1).
	row0 := lossyCat0 + lossyCat2 + "11" + lossyCat1 + "1" + lossyCat0

	// Row 1 is the split row: the active tree switches to
	// Tree12LossyAfterSplit before this row's codes are read, so its bits
	// must be drawn from that tree's (distinct) canonical codes.
	row1 := splitCat0 + splitCat1 + "1" + splitCat0 + splitCat2 + "11"
	row2 := strings.Repeat(splitCat0, 4)

	data := packBits(row0 + row1 + row2)

	curve := identityCurve(16, 1) // split at row 1

	r, err := Reconstruct(context.Background(), nil, data, 4, 3, curve, huffman.Tree12Lossy)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	want := [][4]uint16{
		{0, 3, 1, 0},
		{0, 1, 0, 3},
		{0, 3, 0, 0},
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if got := r.At(row, col); got != want[row][col] {
				t.Fatalf("At(%d,%d) = %d, want %d", row, col, got, want[row][col])
			}
		}
	}
}

func TestReconstructTruncatedFailsWhenDataRunsOut(t *testing.T) {
	curve := identityCurve(16, -1)

	// Far too little data for a 4x4 raster.
	_, err := Reconstruct(context.Background(), nil, []byte{0x00}, 4, 4, curve, huffman.Tree12Lossy)
	if err != ErrTruncated {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}
