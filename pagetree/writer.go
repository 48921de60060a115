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

// Package pagetree writes the page tree of a PDF document.
package pagetree

import (
	"seehuhn.de/go/pdfwrite"
)

// A Writer writes a page tree to a PDF file.  Pages are added with
// [Writer.AddPage]; the tree node itself is only written when
// [Writer.Close] is called.
type Writer struct {
	out    *pdfwrite.Chunk
	ref    pdfwrite.Reference
	kids   []pdfwrite.Reference
	closed bool
}

// NewWriter creates a page tree writer which adds its objects to the
// given chunk.  The reference for the root node of the tree is
// allocated immediately, so that it can be used in the document
// catalog before the pages are written.
func NewWriter(out *pdfwrite.Chunk) *Writer {
	return &Writer{
		out: out,
		ref: out.Alloc(),
	}
}

// Ref returns the reference of the root node of the page tree.  This
// is the value for the Pages entry of the document catalog.
func (t *Writer) Ref() pdfwrite.Reference {
	return t.ref
}

// AddPage appends a page to the tree.  The entries of dict are copied
// into the page dictionary; the Type and Parent entries are filled in
// automatically.  The reference of the new page object is returned.
func (t *Writer) AddPage(dict pdfwrite.Dict) (pdfwrite.Reference, error) {
	if t.closed {
		panic(&pdfwrite.UsageError{
			Op:     "AddPage",
			Reason: "page tree is already closed",
		})
	}

	pageDict := pdfwrite.Dict{
		"Type":   pdfwrite.Name("Page"),
		"Parent": t.ref,
	}
	for key, val := range dict {
		if key == "Type" || key == "Parent" {
			continue
		}
		pageDict[key] = val
	}

	ref := t.out.Alloc()
	err := t.out.Put(ref, pageDict)
	if err != nil {
		return 0, err
	}
	t.kids = append(t.kids, ref)
	return ref, nil
}

// Close writes the root node of the page tree and returns its
// reference.
func (t *Writer) Close() (pdfwrite.Reference, error) {
	if t.closed {
		panic(&pdfwrite.UsageError{
			Op:     "Close",
			Reason: "page tree is already closed",
		})
	}
	t.closed = true

	kids := make(pdfwrite.Array, len(t.kids))
	for i, ref := range t.kids {
		kids[i] = ref
	}
	err := t.out.Put(t.ref, pdfwrite.Dict{
		"Type":  pdfwrite.Name("Pages"),
		"Kids":  kids,
		"Count": pdfwrite.Integer(len(t.kids)),
	})
	if err != nil {
		return 0, err
	}
	return t.ref, nil
}
