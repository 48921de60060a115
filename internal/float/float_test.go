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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		out       string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{-1, 3, "-1"},
		{0.5, 3, ".5"},
		{-0.5, 3, "-0.5"},
		{1.25, 3, "1.25"},
		{1.23456, 3, "1.235"},
		{100, 3, "100"},
		{0.1, 1, ".1"},
		{720.00001, 3, "720"},
	}
	for _, test := range cases {
		out := Format(test.x, test.precision)
		if out != test.out {
			t.Errorf("Format(%g, %d): expected %q, got %q",
				test.x, test.precision, test.out, out)
		}
	}
}
