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

package pdfwrite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunkAlloc(t *testing.T) {
	c := NewChunk()
	for i := 1; i <= 3; i++ {
		peek := c.PeekRef()
		ref := c.Alloc()
		if peek != ref {
			t.Errorf("PeekRef returned %s, Alloc returned %s", peek, ref)
		}
		if ref.Number() != uint32(i) || ref.Generation() != 0 {
			t.Errorf("wrong reference %s", ref)
		}
	}
}

func TestChunkPut(t *testing.T) {
	c := NewChunk()
	ref := c.Alloc()
	err := c.Put(ref, Integer(42))
	if err != nil {
		t.Fatal(err)
	}

	expected := "1 0 obj\n42\nendobj\n"
	if d := cmp.Diff(expected, string(c.Bytes())); d != "" {
		t.Errorf("wrong chunk contents (-want +got):\n%s", d)
	}
}

func TestChunkOffsets(t *testing.T) {
	c := NewChunk()
	refs := []Reference{c.Alloc(), c.Alloc(), c.Alloc()}
	objects := []Object{
		Integer(-1),
		String("some text, including 1 0 R"),
		Dict{"Next": refs[0]},
	}
	for i, ref := range refs {
		err := c.Put(ref, objects[i])
		if err != nil {
			t.Fatal(err)
		}
	}

	body := c.Bytes()
	for i, ref := range refs {
		entry := c.xref[ref.Number()]
		if entry == nil {
			t.Fatalf("missing xref entry for %s", ref)
		}
		header := []byte(Format(Integer(i+1)) + " 0 obj\n")
		if !bytes.HasPrefix(body[entry.Pos:], header) {
			t.Errorf("object %d: offset %d does not point at %q",
				i+1, entry.Pos, header)
		}
	}
}

func TestChunkObjectWriter(t *testing.T) {
	c := NewChunk()
	ref := c.Alloc()
	w := c.Open(ref)
	w.Set("Type", Name("Test"))
	w.Set("Count", Integer(2))
	w.Set("Kids", Array{NewReference(2, 0), NewReference(3, 0)})
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"1 0 obj",
		"<<",
		"/Type /Test",
		"/Count 2",
		"/Kids [2 0 R 3 0 R]",
		">>",
		"endobj",
		"",
	}, "\n")
	if d := cmp.Diff(expected, string(c.Bytes())); d != "" {
		t.Errorf("wrong chunk contents (-want +got):\n%s", d)
	}
}

func TestChunkEmptyObject(t *testing.T) {
	c := NewChunk()
	w := c.Open(c.Alloc())
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
	expected := "1 0 obj\nnull\nendobj\n"
	if d := cmp.Diff(expected, string(c.Bytes())); d != "" {
		t.Errorf("wrong chunk contents (-want +got):\n%s", d)
	}
}

func TestChunkDoubleOpen(t *testing.T) {
	c := NewChunk()
	ref := c.Alloc()
	w := c.Open(ref)

	func() {
		defer func() {
			if _, ok := recover().(*UsageError); !ok {
				t.Error("opening a second writer did not panic")
			}
		}()
		c.Open(c.Alloc())
	}()

	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
}

func TestChunkDuplicateObject(t *testing.T) {
	c := NewChunk()
	ref := c.Alloc()
	err := c.Put(ref, Integer(1))
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if _, ok := recover().(*UsageError); !ok {
			t.Error("writing the same object twice did not panic")
		}
	}()
	c.Put(ref, Integer(2))
}

func TestChunkForwardNumbers(t *testing.T) {
	c := NewChunk()
	err := c.Put(NewReference(5, 0), Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	next := c.Alloc()
	if next.Number() != 6 {
		t.Errorf("expected object number 6, got %d", next.Number())
	}
}

func TestObjectWriterMisuse(t *testing.T) {
	c := NewChunk()
	w := c.Open(c.Alloc())
	w.Set("A", Integer(1))

	func() {
		defer func() {
			if _, ok := recover().(*UsageError); !ok {
				t.Error("mixing Set and Value did not panic")
			}
		}()
		w.Value(Integer(2))
	}()

	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if _, ok := recover().(*UsageError); !ok {
			t.Error("use after Close did not panic")
		}
	}()
	w.Set("B", Integer(2))
}
