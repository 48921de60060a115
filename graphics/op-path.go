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

import "fmt"

// This file implements the "Path construction operators" and
// "Path-painting operators".  The operators implemented here are
// defined in tables 58, 59 and 60 of ISO 32000-2:2020.

// MoveTo starts a new subpath at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !w.isValid("CurveTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x1), w.coord(y1), w.coord(x2), w.coord(y2),
		w.coord(x3), w.coord(y3), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed
// subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if !w.isValid("Stroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "S")
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (w *Writer) CloseAndStroke() {
	if !w.isValid("CloseAndStroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "s")
}

// Fill fills the current path, using the nonzero winding number rule.
// Open subpaths are closed implicitly.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if !w.isValid("Fill", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "f")
}

// FillEvenOdd fills the current path, using the even-odd rule.  Open
// subpaths are closed implicitly.
//
// This implements the PDF graphics operator "f*".
func (w *Writer) FillEvenOdd() {
	if !w.isValid("FillEvenOdd", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "f*")
}

// FillAndStroke fills and strokes the current path.  Open subpaths are
// closed implicitly for filling, but not for stroking.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if !w.isValid("FillAndStroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "B")
}

// EndPath ends the path without filling or stroking it.  This is most
// often used after [Writer.ClipNonZero] or [Writer.ClipEvenOdd].
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if !w.isValid("EndPath", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "n")
}

// ClipNonZero sets the current clipping path using the nonzero winding
// number rule.  The clipping takes effect after the path has been
// painted by one of the path-painting operators.
//
// This implements the PDF graphics operator "W".
func (w *Writer) ClipNonZero() {
	if !w.isValid("ClipNonZero", objPath) {
		return
	}
	w.currentObject = objClippingPath

	_, w.Err = fmt.Fprintln(w.Content, "W")
}

// ClipEvenOdd sets the current clipping path using the even-odd rule.
// The clipping takes effect after the path has been painted by one of
// the path-painting operators.
//
// This implements the PDF graphics operator "W*".
func (w *Writer) ClipEvenOdd() {
	if !w.isValid("ClipEvenOdd", objPath) {
		return
	}
	w.currentObject = objClippingPath

	_, w.Err = fmt.Fprintln(w.Content, "W*")
}
