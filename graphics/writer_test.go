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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
)

func TestWriterPath(t *testing.T) {
	w := NewWriter()
	w.SetLineWidth(2)
	w.MoveTo(10, 20)
	w.LineTo(110, 20)
	w.LineTo(110, 120)
	w.ClosePath()
	w.Stroke()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"2 w",
		"10 20 m",
		"110 20 l",
		"110 120 l",
		"h",
		"S",
		"",
	}, "\n")
	if d := cmp.Diff(expected, string(w.Bytes())); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}

func TestWriterText(t *testing.T) {
	w := NewWriter()
	w.TextBegin()
	w.TextSetFont("F1", 12)
	w.TextFirstLine(72, 720)
	w.TextShow("Hello, world!")
	w.TextEnd()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"BT",
		"/F1 12 Tf",
		"72 720 Td",
		"(Hello, world!) Tj",
		"ET",
		"",
	}, "\n")
	if d := cmp.Diff(expected, string(w.Bytes())); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}

func TestWriterStateNesting(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	w.Transform(matrix.Scale(2, 2))
	w.SetFillRGB(1, 0, 0)
	w.Rectangle(0, 0, 10, 10)
	w.Fill()
	w.PopGraphicsState()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"q",
		"2 0 0 2 0 0 cm",
		"1 0 0 rg",
		"0 0 10 10 re",
		"f",
		"Q",
		"",
	}, "\n")
	if d := cmp.Diff(expected, string(w.Bytes())); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}

func TestWriterCTM(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	w.Transform(matrix.Translate(10, 20))
	w.PopGraphicsState()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if w.CTM != matrix.Identity {
		t.Errorf("CTM not restored: %v", w.CTM)
	}
}

func TestWriterUnbalancedPop(t *testing.T) {
	w := NewWriter()
	w.PopGraphicsState()
	if w.Err == nil {
		t.Error("expected an error for unbalanced Q")
	}
}

func TestWriterBadNesting(t *testing.T) {
	// "q ... Q" and "BT ... ET" pairs must nest properly
	w := NewWriter()
	w.TextBegin()
	if err := w.Close(); err == nil {
		t.Error("expected an error for an unclosed text object")
	}

	w = NewWriter()
	w.PushGraphicsState()
	if err := w.Close(); err == nil {
		t.Error("expected an error for an unclosed q")
	}
}

func TestWriterUnpaintedPath(t *testing.T) {
	w := NewWriter()
	w.MoveTo(0, 0)
	w.LineTo(1, 1)
	if err := w.Close(); err == nil {
		t.Error("expected an error for an unpainted path")
	}
}

func TestWriterTextOutsideBT(t *testing.T) {
	w := NewWriter()
	w.TextShow("no text object")
	if w.Err == nil {
		t.Error("expected an error for Tj outside BT/ET")
	}
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter()
	w.PopGraphicsState()
	firstErr := w.Err

	w.MoveTo(0, 0)
	w.LineTo(1, 1)
	w.Stroke()

	if w.Err != firstErr {
		t.Error("error was overwritten")
	}
	if w.Content.Len() != 0 {
		t.Errorf("operators written after an error: %q", w.Bytes())
	}
	if err := w.Close(); err != firstErr {
		t.Errorf("Close returned %v, expected %v", err, firstErr)
	}
}

func TestWriterClip(t *testing.T) {
	w := NewWriter()
	w.Rectangle(0, 0, 100, 100)
	w.ClipNonZero()
	w.EndPath()
	w.SetFillGray(0.5)
	w.Rectangle(25, 25, 50, 50)
	w.Fill()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"0 0 100 100 re",
		"W",
		"n",
		".5 g",
		"25 25 50 50 re",
		"f",
		"",
	}, "\n")
	if d := cmp.Diff(expected, string(w.Bytes())); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}
