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

import "strconv"

// A Buffer is the growing byte slice which holds the body of a PDF
// file while it is being assembled.  Each [Chunk] owns exactly one
// Buffer.
//
// Appending to the buffer is only allowed through one writer at a
// time.  The inUse flag marks the window between opening an
// [ObjectWriter] (or stream writer) and closing it; attempts to open a
// second writer during this window panic with a [*UsageError].
// Interleaving the fields of two indirect objects would corrupt the
// file, so this is treated as a bug in the calling code.
type Buffer struct {
	data   []byte
	relocs []relocation
	inUse  bool
}

// A relocation records the position of an encoded object number within
// the buffer, either in an indirect reference ("n g R") or in an
// object header ("n g obj").  When a chunk is merged into another
// chunk, these are the only places where bytes need to be rewritten.
//
// The sites are recorded at the moment the number is encoded.
// Scanning the finished buffer for reference-shaped byte patterns
// instead would risk rewriting payload bytes, e.g. inside strings or
// stream data, which happen to look like references.
type relocation struct {
	pos   int    // offset of the first digit of the object number
	width int    // number of digits
	num   uint32 // the encoded object number
}

// Write appends p to the buffer.  It implements [io.Writer] and never
// returns an error.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Len returns the number of bytes appended so far.  This is also the
// offset at which the next write will start, so it can be used to
// reserve the file offset of an object before writing its header.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the accumulated bytes.  The slice is owned by the
// buffer and must not be modified.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) appendString(s string) {
	b.data = append(b.data, s...)
}

// writeRefNumber appends the decimal representation of an object
// number and records the relocation site.
func (b *Buffer) writeRefNumber(num uint32) {
	s := strconv.FormatUint(uint64(num), 10)
	b.relocs = append(b.relocs, relocation{
		pos:   len(b.data),
		width: len(s),
		num:   num,
	})
	b.data = append(b.data, s...)
}

// acquire marks the buffer as being written to by a single writer.
func (b *Buffer) acquire(op string) {
	if b.inUse {
		panic(&UsageError{
			Op:     op,
			Reason: "another object writer is still open",
		})
	}
	b.inUse = true
}

// release ends the current writer's exclusive use of the buffer.
func (b *Buffer) release() {
	b.inUse = false
}
