//go:generate mockgen -destination=./mocks/usecase_mock.go -package=decode_test github.com/go-nef/nefdecode/internal/cli/decode UseCase

// Package decode provides the CLI command for decoding NEF raw files.
package decode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

const (
	verboseTagLevel  = 1
	verboseSeekLevel = 2

	profileFile = "nefdecode.prof"
)

// LevelSeek mirrors byteio.LevelSeek; duplicated here so this package does
// not need to import byteio just to pick a verbosity threshold.
const LevelSeek = slog.Level(-8)

// UseCase defines the business logic behind the decode command.
type UseCase interface {
	// DecodeNEF decodes nefFile, prints a summary, optionally renders an
	// ASCII preview, and optionally writes a JPEG preview to outputFile.
	DecodeNEF(ctx context.Context, nefFile, outputFile string, showPreview bool) error
}

// NewCommand builds the "decode" command implementing spec §6's CLI
// interface: positional NEF path, -o output file, -v verbosity, -p profile.
func NewCommand(logLevel *slog.LevelVar, log *slog.Logger, uc UseCase) *cobra.Command {
	var (
		output  string
		verbose int
		profile bool
	)

	cmd := &cobra.Command{
		Use:   "decode <nef_file>",
		Short: "Decode a Nikon NEF raw file",
		Long: `Decode parses a Nikon Electronic Format (NEF) raw file: the outer TIFF
IFD tree, the embedded Makernote, the linearization curve, and the
Huffman-coded raw Bayer pixel strip, producing a linear sensor raster plus
structured metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			ctx := command.Context()

			switch {
			case verbose >= verboseSeekLevel:
				logLevel.Set(LevelSeek)
			case verbose >= verboseTagLevel:
				logLevel.Set(slog.LevelDebug)
			default:
				logLevel.Set(slog.LevelInfo)
			}

			log.DebugContext(ctx, "decode arguments",
				slog.String("nef_file", args[0]),
				slog.String("output", output),
				slog.Int("verbose", verbose))

			return uc.DecodeNEF(ctx, args[0], output, verbose >= verboseTagLevel)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write a JPEG preview of the decoded raster to FILE")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "enable diagnostic trace (repeat for per-seek detail)")
	cmd.Flags().BoolVarP(&profile, "profile", "p", false, "write a CPU profile to "+profileFile)

	cmd.PreRunE = func(_ *cobra.Command, _ []string) error {
		if !profile {
			return nil
		}

		f, err := os.Create(profileFile)
		if err != nil {
			return fmt.Errorf("failed to create profile file: %w", err)
		}

		return pprof.StartCPUProfile(f)
	}

	cmd.PostRun = func(_ *cobra.Command, _ []string) {
		if profile {
			pprof.StopCPUProfile()
		}
	}

	return cmd
}
