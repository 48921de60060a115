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

package document

import "seehuhn.de/go/pdfwrite"

// Common paper sizes, in PDF units (1/72 inch).
var (
	A4 = &pdfwrite.Rectangle{
		URx: 595.276,
		URy: 841.890,
	}
	A5 = &pdfwrite.Rectangle{
		URx: 419.528,
		URy: 595.276,
	}
	Letter = &pdfwrite.Rectangle{
		URx: 612,
		URy: 792,
	}
)
