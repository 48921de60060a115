// seehuhn.de/go/pdfwrite - a library for writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfwrite

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"encoding/hex"
)

// A Filter is a byte transform applied to a stream body before it is
// written to the file.  The transformed bytes are stored in the file;
// the filter's name is recorded in the stream dictionary so that
// readers know how to undo the transform.
type Filter interface {
	// Name returns the name of the decode filter, e.g. "FlateDecode".
	Name() Name

	// Encode applies the transform to the stream data.
	Encode(data []byte) ([]byte, error)
}

// FlateFilter compresses stream data using the zlib format.
// This corresponds to the PDF filter FlateDecode.
type FlateFilter struct {
	// Level is the compression level, in the range accepted by
	// [compress/flate].  The zero value selects the default level.
	Level int
}

// Name implements the [Filter] interface.
func (f FlateFilter) Name() Name {
	return "FlateDecode"
}

// Encode implements the [Filter] interface.
func (f FlateFilter) Encode(data []byte) ([]byte, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ASCIIHexFilter encodes stream data as pairs of hexadecimal digits.
// This corresponds to the PDF filter ASCIIHexDecode.
type ASCIIHexFilter struct{}

// Name implements the [Filter] interface.
func (f ASCIIHexFilter) Name() Name {
	return "ASCIIHexDecode"
}

// Encode implements the [Filter] interface.
func (f ASCIIHexFilter) Encode(data []byte) ([]byte, error) {
	return []byte(hex.EncodeToString(data) + ">"), nil
}

// ASCII85Filter encodes stream data using base-85 encoding.
// This corresponds to the PDF filter ASCII85Decode.
type ASCII85Filter struct{}

// Name implements the [Filter] interface.
func (f ASCII85Filter) Name() Name {
	return "ASCII85Decode"
}

// Encode implements the [Filter] interface.
func (f ASCII85Filter) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := ascii85.NewEncoder(buf)
	_, err := enc.Write(data)
	if err != nil {
		return nil, err
	}
	err = enc.Close()
	if err != nil {
		return nil, err
	}
	buf.WriteString("~>")
	return buf.Bytes(), nil
}

// A StreamWriter writes the body of one stream object, created by
// [Chunk.OpenStream].  The body is accumulated in memory; Close
// applies the filters, fills in the Length entry of the stream
// dictionary, and appends the complete object to the chunk.
type StreamWriter struct {
	chunk   *Chunk
	ref     Reference
	dict    Dict
	filters []Filter
	body    bytes.Buffer
	closed  bool
}

// OpenStream starts writing a stream object.  The entries of dict, if
// non-nil, are copied into the stream dictionary; Length and Filter
// are filled in by [StreamWriter.Close].  The given filters are
// applied to the stream data in order.
//
// The returned writer holds exclusive write access to the chunk until
// its Close method is called.
func (c *Chunk) OpenStream(ref Reference, dict Dict, filters ...Filter) *StreamWriter {
	c.ensureUsable("OpenStream")

	num := ref.Number()
	if num == 0 {
		panic(&UsageError{Op: "OpenStream", Reason: "invalid object number 0"})
	}
	if _, exists := c.xref[num]; exists {
		panic(&UsageError{
			Op:     "OpenStream",
			Reason: "object " + ref.String() + " already written",
		})
	}
	c.buf.acquire("OpenStream")
	if num >= c.nextRef {
		c.nextRef = num + 1
	}

	d := Dict{}
	for key, val := range dict {
		d[key] = val
	}
	return &StreamWriter{
		chunk:   c,
		ref:     ref,
		dict:    d,
		filters: filters,
	}
}

// Write appends data to the stream body.  It implements [io.Writer]
// and never returns an error.
func (s *StreamWriter) Write(p []byte) (int, error) {
	if s.closed {
		panic(&UsageError{Op: "Write", Reason: "stream is already closed"})
	}
	return s.body.Write(p)
}

// Close encodes the stream body, writes the complete stream object to
// the chunk, and releases the chunk's buffer for the next writer.
func (s *StreamWriter) Close() error {
	if s.closed {
		panic(&UsageError{Op: "Close", Reason: "stream is already closed"})
	}
	s.closed = true

	data := s.body.Bytes()
	for _, f := range s.filters {
		var err error
		data, err = f.Encode(data)
		if err != nil {
			s.chunk.buf.release()
			if s.chunk.err == nil {
				s.chunk.err = err
			}
			return err
		}
	}

	s.dict["Length"] = Integer(len(data))
	switch len(s.filters) {
	case 0:
		// pass
	case 1:
		s.dict["Filter"] = s.filters[0].Name()
	default:
		// filters are listed in the order a reader has to apply them,
		// i.e. the reverse of the encoding order
		names := make(Array, 0, len(s.filters))
		for i := len(s.filters) - 1; i >= 0; i-- {
			names = append(names, s.filters[i].Name())
		}
		s.dict["Filter"] = names
	}

	c := s.chunk
	c.xref[s.ref.Number()] = &xRefEntry{
		Pos:        int64(c.buf.Len()),
		Generation: s.ref.Generation(),
	}
	c.writeObjectHeader(s.ref)
	err := s.dict.PDF(c.buf)
	if err != nil {
		c.buf.release()
		if c.err == nil {
			c.err = err
		}
		return err
	}
	c.buf.appendString("\nstream\n")
	c.buf.Write(data)
	c.buf.appendString("\nendstream\nendobj\n")
	c.buf.release()

	return nil
}
