package preview_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-nef/nefdecode/internal/raster"
	"github.com/go-nef/nefdecode/internal/service/preview"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToGrayScalesToFullRange(t *testing.T) {
	r := raster.Raster{Width: 2, Height: 1, Pixels: []uint16{0, 4095}}

	gray := preview.ToGray(r, 12)

	if gray.GrayAt(0, 0).Y != 0 {
		t.Fatalf("got %d, want 0", gray.GrayAt(0, 0).Y)
	}

	if gray.GrayAt(1, 0).Y != 255 {
		t.Fatalf("got %d, want 255", gray.GrayAt(1, 0).Y)
	}
}

func TestRenderEmptyRasterFails(t *testing.T) {
	svc := preview.NewService(newTestLogger())

	_, err := svc.Render(t.Context(), raster.Raster{}, 12, 80)
	if !errors.Is(err, preview.ErrEmptyRaster) {
		t.Fatalf("got %v, want ErrEmptyRaster", err)
	}
}

func TestRenderProducesNonEmptyString(t *testing.T) {
	svc := preview.NewService(newTestLogger())

	r := raster.Raster{Width: 8, Height: 8, Pixels: make([]uint16, 64)}

	out, err := svc.Render(t.Context(), r, 12, 8)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if out == "" {
		t.Fatalf("expected non-empty ascii output")
	}
}
