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

// An ObjectWriter writes the body of one indirect object, created by
// [Chunk.Open].  While the writer is open it has exclusive write
// access to the chunk's buffer.
//
// The body is either a dictionary, built one entry at a time with
// [ObjectWriter.Set], or a single value written with
// [ObjectWriter.Value].  Close must be called exactly once; it appends
// the closing "endobj" token and releases the buffer.
//
// Encoding errors are sticky: after the first error, further calls are
// ignored and Close returns the error.
type ObjectWriter struct {
	chunk *Chunk
	ref   Reference

	dictOpen bool
	hasValue bool
	closed   bool
	err      error
}

// Set appends one dictionary entry to the object's body.  Entries are
// written in the order of the Set calls.
func (o *ObjectWriter) Set(key Name, val Object) {
	o.ensureOpen("Set")
	if o.hasValue {
		panic(&UsageError{
			Op:     "Set",
			Reason: "object body is already a non-dictionary value",
		})
	}
	if o.err != nil {
		return
	}

	buf := o.chunk.buf
	if !o.dictOpen {
		buf.appendString("<<")
		o.dictOpen = true
	}
	buf.appendString("\n")
	err := key.PDF(buf)
	if err != nil {
		o.err = err
		return
	}
	buf.appendString(" ")
	o.err = writeObject(buf, val)
}

// Value writes the complete body of the object.  It cannot be
// combined with [ObjectWriter.Set] and cannot be called twice.
func (o *ObjectWriter) Value(obj Object) {
	o.ensureOpen("Value")
	if o.dictOpen {
		panic(&UsageError{
			Op:     "Value",
			Reason: "object body is already a dictionary",
		})
	}
	if o.hasValue {
		panic(&UsageError{
			Op:     "Value",
			Reason: "object body already written",
		})
	}
	o.hasValue = true
	if o.err != nil {
		return
	}

	o.err = writeObject(o.chunk.buf, obj)
}

// Close finishes the object and releases the chunk's buffer for the
// next writer.  If neither [ObjectWriter.Set] nor [ObjectWriter.Value]
// was called, the object body is the null object.
func (o *ObjectWriter) Close() error {
	o.ensureOpen("Close")
	o.closed = true

	buf := o.chunk.buf
	switch {
	case o.dictOpen:
		buf.appendString("\n>>")
	case !o.hasValue:
		buf.appendString("null")
	}
	buf.appendString("\nendobj\n")
	buf.release()

	if o.err != nil && o.chunk.err == nil {
		o.chunk.err = o.err
	}
	return o.err
}

func (o *ObjectWriter) ensureOpen(op string) {
	if o.closed {
		panic(&UsageError{
			Op:     op,
			Reason: "object " + o.ref.String() + " is already closed",
		})
	}
}
