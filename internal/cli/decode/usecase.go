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

package decode

import (
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-nef/nefdecode/internal/service/decode"
	"github.com/go-nef/nefdecode/internal/service/preview"
)

// ErrUnsupportedOutputFormat is returned when -o names an extension other
// than .jpg/.jpeg; there is no third-party TIFF encoder in the dependency
// surface this tool draws from, so only a JPEG preview can be written out.
var ErrUnsupportedOutputFormat = errors.New("decode: unsupported output format, only .jpg/.jpeg is supported")

const asciiPreviewCols = 120

type decodeUseCase struct {
	log            *slog.Logger
	decodeService  decode.Service
	previewService preview.Service
}

// NewUseCase builds the decode command's UseCase from its service dependencies.
func NewUseCase(log *slog.Logger, decodeService decode.Service, previewService preview.Service) UseCase {
	return decodeUseCase{
		log:            log,
		decodeService:  decodeService,
		previewService: previewService,
	}
}

func (uc decodeUseCase) DecodeNEF(ctx context.Context, nefFile, outputFile string, showPreview bool) error {
	uc.log.InfoContext(ctx, "decoding NEF file", slog.String("nef_file", nefFile))

	result, err := uc.decodeService.DecodeFile(ctx, nefFile)
	if err != nil {
		return err
	}

	uc.log.InfoContext(ctx, "decoded NEF file",
		slog.Int("width", result.Geometry.Width),
		slog.Int("height", result.Geometry.Height),
		slog.Int("bits_per_sample", result.Geometry.BitsPerSample),
		slog.Int("ifd_count", len(result.IFDs)))

	fmt.Fprintf(os.Stdout, "%dx%d, %d bits/sample, %d IFDs, CFA %v\n",
		result.Geometry.Width, result.Geometry.Height,
		result.Geometry.BitsPerSample, len(result.IFDs), result.Cfa.Pattern)

	if showPreview {
		ascii, err := uc.previewService.Render(ctx, result.Raster, result.Geometry.BitsPerSample, asciiPreviewCols)
		if err != nil {
			uc.log.WarnContext(ctx, "failed to render preview", slog.String("error", err.Error()))
		} else {
			fmt.Fprintln(os.Stdout, ascii)
		}
	}

	if outputFile == "" {
		return nil
	}

	ext := filepath.Ext(outputFile)
	if ext != ".jpg" && ext != ".jpeg" {
		return fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, ext)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", outputFile, err)
	}
	defer f.Close()

	gray := preview.ToGray(result.Raster, result.Geometry.BitsPerSample)

	if err := jpeg.Encode(f, gray, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return fmt.Errorf("failed to encode preview JPEG: %w", err)
	}

	uc.log.InfoContext(ctx, "wrote preview image", slog.String("output_file", outputFile))

	return nil
}
