//go:generate mockgen -destination=./mocks/service_mock.go -package=preview_test github.com/go-nef/nefdecode/internal/service/preview Service

// Package preview renders a decoded linear raw raster as a downsampled
// ASCII-art preview, purely for the CLI's "-v 1" eyeball check — it
// performs no raw-format decoding of its own.
package preview

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/raster"
	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
)

// Service renders a raster preview for terminal display.
type Service interface {
	// Render downsamples r to maxWidth columns and returns an ASCII-art
	// rendering of it, scaling samples from [0, 2^bitsPerSample) to
	// grayscale along the way.
	Render(ctx context.Context, r raster.Raster, bitsPerSample, maxWidth int) (string, error)
}

type service struct {
	log *slog.Logger
}

// NewService builds a Service that logs its rendering steps to log.
func NewService(log *slog.Logger) Service {
	return &service{log: log}
}

func (s *service) Render(ctx context.Context, r raster.Raster, bitsPerSample, maxWidth int) (string, error) {
	if r.Width == 0 || r.Height == 0 {
		return "", ErrEmptyRaster
	}

	gray := ToGray(r, bitsPerSample)

	targetHeight := uint(0) // preserve aspect ratio
	resized := resize.Resize(uint(maxWidth), targetHeight, gray, resize.Lanczos3)

	s.log.DebugContext(ctx, "raster resized for preview",
		slog.Int("source_width", r.Width),
		slog.Int("source_height", r.Height),
		slog.Int("target_width", maxWidth))

	options := convert.DefaultOptions
	bounds := resized.Bounds()
	options.FixedWidth = bounds.Dx()
	options.FixedHeight = bounds.Dy()

	return convert.NewImageConverter().Image2ASCIIString(resized, &options), nil
}

// ToGray scales r's samples from [0, 2^bitsPerSample) into an 8-bit
// grayscale image, suitable for both the ASCII preview and a JPEG export.
func ToGray(r raster.Raster, bitsPerSample int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))

	maxVal := (1 << uint(bitsPerSample)) - 1
	if maxVal <= 0 {
		maxVal = 1
	}

	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			sample := int(r.At(row, col))

			const maxGray = 255

			v := sample * maxGray / maxVal
			if v > maxGray {
				v = maxGray
			}

			img.SetGray(col, row, color.Gray{Y: uint8(v)})
		}
	}

	return img
}
