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

// Package graphics builds PDF content streams.
//
// A [Writer] provides one method per content stream operator.  The
// methods validate operator order: paths must be painted before a new
// graphics object starts, text operators are only allowed between
// [Writer.TextBegin] and [Writer.TextEnd], and "q"/"Q" and "BT"/"ET"
// pairs must nest properly.
//
// Errors are sticky.  Once a method has set the Err field, all further
// method calls are ignored, and [Writer.Close] reports the error.
package graphics

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfwrite/internal/float"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content *bytes.Buffer
	Err     error

	// CTM is the current transformation matrix, tracking the effect of
	// all [Writer.Transform] calls so far.
	CTM matrix.Matrix

	currentObject objectType
	nesting       []pairType
	stack         []matrix.Matrix
}

// NewWriter allocates a new Writer.
func NewWriter() *Writer {
	return &Writer{
		Content:       &bytes.Buffer{},
		CTM:           matrix.Identity,
		currentObject: objPage,
	}
}

// Close checks that the content stream is complete, i.e. that all
// "q"/"Q" and "BT"/"ET" pairs are balanced and no path is left
// unpainted.  It returns the first error encountered while writing.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 {
		kind := "PushGraphicsState"
		if w.nesting[len(w.nesting)-1] == pairTypeBT {
			kind = "TextBegin"
		}
		return fmt.Errorf("content stream ends with unclosed %s", kind)
	}
	if w.currentObject != objPage {
		return fmt.Errorf("content stream ends inside a %s object", w.currentObject)
	}
	return nil
}

// Bytes returns the content stream written so far.
func (w *Writer) Bytes() []byte {
	return w.Content.Bytes()
}

// isValid returns true if the current graphics object is one of the
// given types and w.Err is nil.  Otherwise it sets w.Err and returns
// false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return float.Format(x, 3)
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClippingPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClippingPath:
		return "clipping path"
	default:
		return fmt.Sprintf("objectType(%d)", int(s))
	}
}
