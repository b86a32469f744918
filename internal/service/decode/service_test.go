package decode_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/go-nef/nefdecode/internal/service/decode"
	"github.com/go-nef/nefdecode/internal/service/osfs"
	"github.com/go-nef/nefdecode/pkg/nef"
)

var errOpenFailed = errors.New("open failed")

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func (fakeFile) Write(_ []byte) (int, error) { return 0, errors.New("not supported") }

func (f fakeFile) ReadAt(p []byte, off int64) (int, error) { return f.Reader.ReadAt(p, off) }

type fakeFS struct {
	files map[string][]byte
}

func (f fakeFS) Open(name string) (osfs.File, error) {
	data, ok := f.files[name]
	if !ok {
		return nil, errOpenFailed
	}

	return fakeFile{bytes.NewReader(data)}, nil
}

func (f fakeFS) OpenFile(name string, _ int, _ os.FileMode) (osfs.File, error) {
	return f.Open(name)
}

func (fakeFS) Pipe() (*os.File, *os.File, error) { return nil, nil, nil }

func (fakeFS) Stat(string) (os.FileInfo, error) { return nil, nil }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyIFDFile() []byte {
	buf := make([]byte, 8)
	copy(buf, "MM")
	binary.BigEndian.PutUint16(buf[2:], 42)
	binary.BigEndian.PutUint32(buf[4:], 8)
	buf = append(buf, 0, 0, 0, 0, 0, 0)

	return buf
}

func TestDecodeFileOpenFailure(t *testing.T) {
	fs := fakeFS{files: map[string][]byte{}}
	svc := decode.NewService(newTestLogger(), fs)

	_, err := svc.DecodeFile(t.Context(), "missing.nef")
	if !errors.Is(err, decode.ErrFailedToOpenFile) {
		t.Fatalf("got %v, want ErrFailedToOpenFile", err)
	}
}

func TestDecodeFilePropagatesPipelineError(t *testing.T) {
	fs := fakeFS{files: map[string][]byte{"empty.nef": emptyIFDFile()}}
	svc := decode.NewService(newTestLogger(), fs)

	_, err := svc.DecodeFile(t.Context(), "empty.nef")
	if !errors.Is(err, nef.ErrMissingTag) {
		t.Fatalf("got %v, want ErrMissingTag", err)
	}
}
