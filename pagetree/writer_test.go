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

package pagetree

import (
	"bytes"
	"testing"

	"seehuhn.de/go/pdfwrite"
)

func TestWriter(t *testing.T) {
	c := pdfwrite.NewChunk()
	tree := NewWriter(c)

	refs := make([]pdfwrite.Reference, 2)
	for i := range refs {
		ref, err := tree.AddPage(pdfwrite.Dict{
			"MediaBox": &pdfwrite.Rectangle{URx: 100, URy: 100},
		})
		if err != nil {
			t.Fatal(err)
		}
		refs[i] = ref
	}

	root, err := tree.Close()
	if err != nil {
		t.Fatal(err)
	}
	if root != tree.Ref() {
		t.Error("Close did not return the root reference")
	}

	body := c.Bytes()
	for _, snippet := range []string{
		"/Type /Pages",
		"/Count 2",
		"/Kids [2 0 R 3 0 R]",
		"/Type /Page",
		"/Parent 1 0 R",
	} {
		if !bytes.Contains(body, []byte(snippet)) {
			t.Errorf("missing %q in page tree", snippet)
		}
	}
	if refs[0].Number() != 2 || refs[1].Number() != 3 {
		t.Errorf("unexpected page references %v", refs)
	}
}

func TestWriterClosed(t *testing.T) {
	c := pdfwrite.NewChunk()
	tree := NewWriter(c)
	_, err := tree.Close()
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if _, ok := recover().(*pdfwrite.UsageError); !ok {
			t.Error("AddPage after Close did not panic")
		}
	}()
	tree.AddPage(nil)
}
