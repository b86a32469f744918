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

// Package byteio provides a seekable, big-endian byte reader over an
// in-memory NEF file image.
//
// The reader owns the decode-time buffer; parsers built on top of it (IFD
// walker, Makernote parser, linearization curve decoder) hold only borrowed
// positions and never mutate the buffer themselves.
package byteio

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math"
)

// Tracer receives per-seek diagnostic events. A nil Tracer disables tracing.
// This backs the CLI's "-v 2" per-seek trace level.
type Tracer interface {
	TraceSeek(ctx context.Context, op string, pos int64)
}

// LevelSeek is the slog level per-seek trace events log at: one step below
// slog.LevelDebug, so a handler at LevelDebug shows the CLI's "-v 1"
// per-tag events without the "-v 2" per-seek flood, and a handler at
// LevelSeek shows both.
const LevelSeek = slog.Level(-8)

// SlogTracer adapts a *slog.Logger into a Tracer.
type SlogTracer struct {
	Log *slog.Logger
}

// TraceSeek logs a single seek/read-position event at LevelSeek.
func (t SlogTracer) TraceSeek(ctx context.Context, op string, pos int64) {
	if t.Log == nil {
		return
	}

	t.Log.Log(ctx, LevelSeek, "seek", slog.String("op", op), slog.Int64("pos", pos))
}

// Reader is a seekable big-endian byte cursor over a fixed byte span.
type Reader struct {
	buf    []byte
	pos    int64
	tracer Tracer
	ctx    context.Context //nolint:containedctx // attached once at construction, mirrors the byte span's lifetime
}

// New wraps buf (the whole decoded file image) in a Reader positioned at 0.
func New(buf []byte) *Reader {
	return &Reader{buf: buf, ctx: context.Background()}
}

// WithTracer attaches a per-seek diagnostic tracer and the context used for
// its calls. It returns the receiver for chaining.
func (r *Reader) WithTracer(ctx context.Context, tracer Tracer) *Reader {
	r.ctx = ctx
	r.tracer = tracer

	return r
}

// Len reports the total size of the underlying span.
func (r *Reader) Len() int64 { return int64(len(r.buf)) }

// Tell reports the current absolute position.
func (r *Reader) Tell() int64 { return r.pos }

// SeekAbs moves the cursor to an absolute offset.
func (r *Reader) SeekAbs(offset int64) error {
	if offset < 0 {
		return ErrNegativeOffset
	}

	r.pos = offset
	r.trace("seek_abs")

	return nil
}

// SeekRel moves the cursor by delta relative to its current position.
func (r *Reader) SeekRel(delta int64) error {
	next := r.pos + delta
	if next < 0 {
		return ErrNegativeOffset
	}

	r.pos = next
	r.trace("seek_rel")

	return nil
}

func (r *Reader) trace(op string) {
	if r.tracer != nil {
		r.tracer.TraceSeek(r.ctx, op, r.pos)
	}
}

// ReadExact reads exactly n bytes from the current position, advancing the
// cursor, and returns ErrTruncated if that would run past the span.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 || r.pos < 0 || r.pos+int64(n) > int64(len(r.buf)) {
		return nil, ErrTruncated
	}

	b := r.buf[r.pos : r.pos+int64(n)]
	r.pos += int64(n)

	return b, nil
}

// PeekExact behaves like ReadExact but does not advance the cursor.
func (r *Reader) PeekExact(n int) ([]byte, error) {
	if n < 0 || r.pos < 0 || r.pos+int64(n) > int64(len(r.buf)) {
		return nil, ErrTruncated
	}

	return r.buf[r.pos : r.pos+int64(n)], nil
}

// ReadU8 reads one unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadI8 reads one signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()

	return int8(v), err
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// ReadI16 reads a big-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()

	return int16(v), err
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// ReadI32 reads a big-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()

	return int32(v), err
}

// ReadF32 reads a big-endian IEEE-754 single-precision float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadF64 reads a big-endian IEEE-754 double-precision float.
func (r *Reader) ReadF64() (float64, error) {
	b, err := r.ReadExact(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}
