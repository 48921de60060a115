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

import (
	"bytes"
	"testing"

	"seehuhn.de/go/pdfwrite"
)

func TestCreateSinglePage(t *testing.T) {
	page, err := CreateSinglePage(A4, pdfwrite.V1_7)
	if err != nil {
		t.Fatal(err)
	}
	page.Info = &pdfwrite.Info{Title: "Unit Test"}

	page.TextBegin()
	page.TextSetFont("F1", 12)
	page.TextFirstLine(72, 770)
	page.TextShow("Hello, world!")
	page.TextEnd()

	body, err := page.Close()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(body, []byte("%PDF-1.7\n")) {
		t.Error("missing file header")
	}
	if !bytes.HasSuffix(body, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}
	for _, snippet := range []string{
		"/Type /Pages",
		"/Type /Page",
		"/MediaBox [0 0 595.28 841.89]",
		"/Type /Catalog",
		"/Title (Unit Test)",
		"/Filter /FlateDecode",
		"startxref",
	} {
		if !bytes.Contains(body, []byte(snippet)) {
			t.Errorf("missing %q in document", snippet)
		}
	}
}

func TestBrokenContentStream(t *testing.T) {
	page, err := CreateSinglePage(A4, pdfwrite.V1_4)
	if err != nil {
		t.Fatal(err)
	}
	page.PushGraphicsState()

	_, err = page.Close()
	if err == nil {
		t.Error("expected an error for an unbalanced content stream")
	}
}
