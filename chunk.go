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
	"math"
	"strconv"
)

// A Chunk holds a collection of indirect objects, together with the
// byte offset of each object within the chunk's buffer.  Chunks use
// their own object number space, starting at 1.
//
// A [Writer] embeds a Chunk for the objects of the document itself.
// Standalone chunks, created with [NewChunk], allow subsystems to
// assemble groups of objects without knowing the final document's
// numbering; [Chunk.Merge] later copies such a fragment into the
// document and renumbers all object references.
type Chunk struct {
	buf      *Buffer
	xref     map[uint32]*xRefEntry
	nextRef  uint32
	consumed bool

	// err records the first encoding error.  A chunk with a failed
	// object write has no well-defined partial result, so the error
	// makes the whole chunk (and any document using it) unfinishable.
	err error
}

// NewChunk creates a new, empty chunk.
func NewChunk() *Chunk {
	return &Chunk{
		buf:     &Buffer{},
		xref:    make(map[uint32]*xRefEntry),
		nextRef: 1,
	}
}

// Alloc allocates an object number for an indirect object.
func (c *Chunk) Alloc() Reference {
	c.ensureUsable("Alloc")
	if c.nextRef == math.MaxUint32 {
		panic(errOutOfRefs)
	}
	res := NewReference(c.nextRef, 0)
	c.nextRef++
	return res
}

// PeekRef returns the reference which the next call to [Chunk.Alloc]
// will allocate, without allocating it.  This can be used to write
// references to an object before the object itself is written.
func (c *Chunk) PeekRef() Reference {
	c.ensureUsable("PeekRef")
	return NewReference(c.nextRef, 0)
}

// Open starts writing the indirect object ref.  The object's file
// offset is recorded, the object header is appended to the buffer,
// and the returned [ObjectWriter] is used to write the object's body.
//
// The ObjectWriter holds exclusive write access to the chunk until its
// Close method is called.  Opening a second writer before then, or
// opening the same reference twice, panics with a [*UsageError].
func (c *Chunk) Open(ref Reference) *ObjectWriter {
	c.ensureUsable("Open")

	num := ref.Number()
	if num == 0 {
		panic(&UsageError{Op: "Open", Reason: "invalid object number 0"})
	}
	if _, exists := c.xref[num]; exists {
		panic(&UsageError{
			Op:     "Open",
			Reason: "object " + ref.String() + " already written",
		})
	}
	c.buf.acquire("Open")
	if num >= c.nextRef {
		c.nextRef = num + 1
	}

	c.xref[num] = &xRefEntry{
		Pos:        int64(c.buf.Len()),
		Generation: ref.Generation(),
	}
	c.writeObjectHeader(ref)

	return &ObjectWriter{chunk: c, ref: ref}
}

// Put writes a complete indirect object to the chunk.
func (c *Chunk) Put(ref Reference, obj Object) error {
	w := c.Open(ref)
	w.Value(obj)
	return w.Close()
}

// Bytes returns the encoded objects written to the chunk so far.
// For a [Writer] this includes the file header but not the
// cross-reference information, which is only written by
// [Writer.Finish].
func (c *Chunk) Bytes() []byte {
	return c.buf.Bytes()
}

func (c *Chunk) writeObjectHeader(ref Reference) {
	c.buf.writeRefNumber(ref.Number())
	gen := strconv.FormatUint(uint64(ref.Generation()), 10)
	c.buf.appendString(" " + gen + " obj\n")
}

func (c *Chunk) ensureUsable(op string) {
	if c.consumed {
		panic(&UsageError{
			Op:     op,
			Reason: "chunk has already been merged or finished",
		})
	}
}
