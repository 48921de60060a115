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

package graphics

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfwrite"
	"seehuhn.de/go/pdfwrite/internal/float"
)

// This file implements the "Text object operators", "Text state
// operators" and "Text-positioning operators".  The operators
// implemented here are defined in tables 103, 105 and 106 of
// ISO 32000-2:2020.

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextBegin() {
	if !w.isValid("TextBegin", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextBegin")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  The name must refer to an
// entry in the Font subdictionary of the current resource dictionary.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name pdfwrite.Name, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}

	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", w.coord(size), "Tf")
}

// TextSetMatrix replaces the current text matrix and line matrix.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) TextSetMatrix(m matrix.Matrix) {
	if !w.isValid("TextSetMatrix", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(m[0], 3), float.Format(m[1], 3),
		float.Format(m[2], 3), float.Format(m[3], 3),
		float.Format(m[4], 3), float.Format(m[5], 3), "Tm")
}

// TextFirstLine moves to the start of the next line of text, offset
// from the start of the current line by (dx, dy).
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// TextSetLeading sets the text leading, i.e. the vertical distance
// between the baselines of adjacent lines of text.
//
// This implements the PDF graphics operator "TL".
func (w *Writer) TextSetLeading(leading float64) {
	if !w.isValid("TextSetLeading", objText|objPage) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(leading), "TL")
}

// TextNextLine moves to the start of the next line of text, using the
// current leading.
//
// This implements the PDF graphics operator "T*".
func (w *Writer) TextNextLine() {
	if !w.isValid("TextNextLine", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "T*")
}

// TextShow shows a string, encoded as a PDF text string.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) {
	w.TextShowRaw(pdfwrite.TextString(s))
}

// TextShowRaw shows a string of bytes in the encoding of the current
// font.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s pdfwrite.String) {
	if !w.isValid("TextShowRaw", objText) {
		return
	}

	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}
