//go:generate mockgen -destination=./mocks/service_mock.go -package=decode_test github.com/go-nef/nefdecode/internal/service/decode Service

// Package decode provides the application-level service that opens a NEF
// file from disk and runs it through the pkg/nef pipeline.
//
// It exists to keep pkg/nef's Decode a pure function of an in-memory byte
// span (file I/O is an ambient concern, not a core one) while still giving
// the CLI a single injectable collaborator to call, mirroring the
// teacher's efd.Service split between parsing and file access.
package decode

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/service/osfs"
	"github.com/go-nef/nefdecode/pkg/nef"
)

// Service decodes a NEF file on disk into a nef.Result.
type Service interface {
	// DecodeFile opens filename, reads it fully into memory, and runs the
	// decode pipeline over it.
	DecodeFile(ctx context.Context, filename string) (nef.Result, error)
}

type service struct {
	log *slog.Logger
	fs  osfs.FileSystem
}

// NewService builds a Service backed by fs, logging pipeline progress to
// log.
func NewService(log *slog.Logger, fs osfs.FileSystem) Service {
	return &service{log: log, fs: fs}
}

func (s *service) DecodeFile(ctx context.Context, filename string) (nef.Result, error) {
	s.log.InfoContext(ctx, "decoding nef file", slog.String("file", filename))

	file, err := s.fs.Open(filename)
	if err != nil {
		return nef.Result{}, fmt.Errorf("%w %q: %w", ErrFailedToOpenFile, filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nef.Result{}, fmt.Errorf("%w %q: %w", ErrFailedToReadFile, filename, err)
	}

	s.log.DebugContext(ctx, "file read into memory", slog.Int("bytes", len(data)))

	result, err := nef.Decode(ctx, s.log, data)
	if err != nil {
		return nef.Result{}, err
	}

	s.log.InfoContext(ctx, "nef file decoded",
		slog.String("file", filename),
		slog.Int("ifds", len(result.IFDs)),
		slog.Int("width", result.Geometry.Width),
		slog.Int("height", result.Geometry.Height))

	return result, nil
}
