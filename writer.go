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
	"errors"
	"fmt"
)

// A Writer assembles a complete PDF file in memory.  It embeds a
// [Chunk] which holds the file's indirect objects; [Writer.Finish]
// appends the cross-reference information and the trailer and returns
// the finished file.
type Writer struct {
	*Chunk

	// Version is the PDF version of the file.  For version 1.5 and
	// above, the cross-reference information is written as a
	// cross-reference stream instead of a table.
	Version Version

	info Reference
	id   [][]byte
}

// NewWriter creates a Writer for a PDF file with the given version.
// The file header is written immediately.
func NewWriter(v Version) (*Writer, error) {
	verString, err := v.ToString()
	if err != nil {
		return nil, err
	}

	c := NewChunk()
	c.buf.appendString("%PDF-" + verString + "\n%\x80\x80\x80\x80\n")

	return &Writer{
		Chunk:   c,
		Version: v,
	}, nil
}

// SetInfo records the reference of the document information dictionary
// for the trailer.
func (w *Writer) SetInfo(ref Reference) {
	w.ensureUsable("SetInfo")
	w.info = ref
}

// SetID sets the file identifier for the trailer.  The first part is
// the permanent identifier of the document, the second part changes
// with every revision.  Both must be non-empty.
func (w *Writer) SetID(permanent, changing []byte) error {
	w.ensureUsable("SetID")
	if len(permanent) == 0 || len(changing) == 0 {
		return errors.New("invalid file identifier")
	}
	w.id = [][]byte{
		append([]byte(nil), permanent...),
		append([]byte(nil), changing...),
	}
	return nil
}

// CheckVersion returns an error if the file's PDF version is older
// than earliest.  The operation name is used in the error message.
func (w *Writer) CheckVersion(operation string, earliest Version) error {
	if w.Version >= earliest {
		return nil
	}
	return &VersionError{
		Operation: operation,
		Earliest:  earliest,
	}
}

// Finish writes the cross-reference information and the trailer, and
// returns the bytes of the complete PDF file.  The given reference
// must point to the document catalog.
//
// After Finish returns, the Writer is consumed and all further method
// calls panic with a [*UsageError].
func (w *Writer) Finish(root Reference) ([]byte, error) {
	w.ensureUsable("Finish")
	if w.buf.inUse {
		panic(&UsageError{
			Op:     "Finish",
			Reason: "another object writer is still open",
		})
	}

	if w.err != nil {
		return nil, w.err
	}
	if root.Number() == 0 {
		return nil, errors.New("missing document catalog")
	}

	trailer := Dict{
		"Root": root,
	}
	if w.info.Number() != 0 {
		trailer["Info"] = w.info
	}
	if w.id != nil {
		trailer["ID"] = Array{String(w.id[0]), String(w.id[1])}
	}

	var xrefPos int64
	var err error
	if w.Version < V1_5 {
		xrefPos = int64(w.buf.Len())
		trailer["Size"] = Integer(w.nextRef)
		err = w.writeXRefTable(trailer)
	} else {
		xrefPos, err = w.writeXRefStream(trailer)
	}
	if err != nil {
		return nil, err
	}

	_, err = fmt.Fprintf(w.buf, "startxref\n%d\n%%%%EOF\n", xrefPos)
	if err != nil {
		return nil, err
	}

	w.consumed = true
	return w.buf.Bytes(), nil
}
