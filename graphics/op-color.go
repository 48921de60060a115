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

// This file implements the "Colour operators" for the device colour
// spaces.  The operators implemented here are defined in table 73 of
// ISO 32000-2:2020.

// SetStrokeGray sets the stroking colour in the DeviceGray colour
// space.
//
// This implements the PDF graphics operator "G".
func (w *Writer) SetStrokeGray(gray float64) {
	if !w.isValid("SetStrokeGray", objPage|objText) {
		return
	}
	if !w.checkComponents("SetStrokeGray", gray) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(gray), "G")
}

// SetFillGray sets the filling colour in the DeviceGray colour space.
//
// This implements the PDF graphics operator "g".
func (w *Writer) SetFillGray(gray float64) {
	if !w.isValid("SetFillGray", objPage|objText) {
		return
	}
	if !w.checkComponents("SetFillGray", gray) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(gray), "g")
}

// SetStrokeRGB sets the stroking colour in the DeviceRGB colour space.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeRGB(r, g, b float64) {
	if !w.isValid("SetStrokeRGB", objPage|objText) {
		return
	}
	if !w.checkComponents("SetStrokeRGB", r, g, b) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(r), w.coord(g), w.coord(b), "RG")
}

// SetFillRGB sets the filling colour in the DeviceRGB colour space.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillRGB(r, g, b float64) {
	if !w.isValid("SetFillRGB", objPage|objText) {
		return
	}
	if !w.checkComponents("SetFillRGB", r, g, b) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(r), w.coord(g), w.coord(b), "rg")
}

// SetStrokeCMYK sets the stroking colour in the DeviceCMYK colour
// space.
//
// This implements the PDF graphics operator "K".
func (w *Writer) SetStrokeCMYK(c, m, y, k float64) {
	if !w.isValid("SetStrokeCMYK", objPage|objText) {
		return
	}
	if !w.checkComponents("SetStrokeCMYK", c, m, y, k) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(c), w.coord(m), w.coord(y), w.coord(k), "K")
}

// SetFillCMYK sets the filling colour in the DeviceCMYK colour space.
//
// This implements the PDF graphics operator "k".
func (w *Writer) SetFillCMYK(c, m, y, k float64) {
	if !w.isValid("SetFillCMYK", objPage|objText) {
		return
	}
	if !w.checkComponents("SetFillCMYK", c, m, y, k) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(c), w.coord(m), w.coord(y), w.coord(k), "k")
}

func (w *Writer) checkComponents(cmd string, vals ...float64) bool {
	for _, x := range vals {
		if x < 0 || x > 1 {
			w.Err = fmt.Errorf("%s: colour component %f outside [0, 1]", cmd, x)
			return false
		}
	}
	return true
}
