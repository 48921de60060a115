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

	"seehuhn.de/go/pdfwrite/internal/float"
)

// This file implements the "Graphics state operators".  The operators
// implemented here are defined in table 56 of ISO 32000-2:2020.

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if !w.isValid("PushGraphicsState", objPage) {
		return
	}

	w.nesting = append(w.nesting, pairTypeQ)
	w.stack = append(w.stack, w.CTM)

	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if !w.isValid("PopGraphicsState", objPage) {
		return
	}

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeQ {
		w.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	n := len(w.stack) - 1
	w.CTM = w.stack[n]
	w.stack = w.stack[:n]

	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// Transform applies a transformation matrix to the coordinate system.
// The new transformation is applied to user coordinates first,
// followed by the existing transformation.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(extraTrfm matrix.Matrix) {
	if !w.isValid("Transform", objPage) {
		return
	}

	w.CTM = extraTrfm.Mul(w.CTM)

	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(extraTrfm[0], 3), float.Format(extraTrfm[1], 3),
		float.Format(extraTrfm[2], 3), float.Format(extraTrfm[3], 3),
		float.Format(extraTrfm[4], 3), float.Format(extraTrfm[5], 3), "cm")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if !w.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %f", width)
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(width), "w")
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (w *Writer) SetLineCap(cap LineCapStyle) {
	if !w.isValid("SetLineCap", objPage|objText) {
		return
	}
	if cap > 2 {
		w.Err = fmt.Errorf("SetLineCap: invalid line cap style %d", cap)
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, int(cap), "J")
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (w *Writer) SetLineJoin(join LineJoinStyle) {
	if !w.isValid("SetLineJoin", objPage|objText) {
		return
	}
	if join > 2 {
		w.Err = fmt.Errorf("SetLineJoin: invalid line join style %d", join)
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, int(join), "j")
}

// SetMiterLimit sets the miter limit.
//
// This implements the PDF graphics operator "M".
func (w *Writer) SetMiterLimit(limit float64) {
	if !w.isValid("SetMiterLimit", objPage|objText) {
		return
	}
	if limit < 1 {
		w.Err = fmt.Errorf("SetMiterLimit: invalid limit %f", limit)
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(limit), "M")
}

// SetLineDash sets the line dash pattern.
//
// This implements the PDF graphics operator "d".
func (w *Writer) SetLineDash(pattern []float64, phase float64) {
	if !w.isValid("SetLineDash", objPage|objText) {
		return
	}

	_, w.Err = fmt.Fprint(w.Content, "[")
	if w.Err != nil {
		return
	}
	sep := ""
	for _, x := range pattern {
		_, w.Err = fmt.Fprint(w.Content, sep, w.coord(x))
		if w.Err != nil {
			return
		}
		sep = " "
	}
	_, w.Err = fmt.Fprintln(w.Content, "]", w.coord(phase), "d")
}

// LineCapStyle is the style of the end of an open path.
type LineCapStyle uint8

// Possible values for LineCapStyle.
// See section 8.4.3.3 of PDF 32000-1:2008.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the join between two path segments.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
// See section 8.4.3.4 of PDF 32000-1:2008.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)
