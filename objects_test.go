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
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(1.5), "1.5"},
		{Real(-0.25), "-0.25"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String("line1\nline2"), "(line1\\nline2)"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("A#B"), "/A#23B"},
		{Name(""), "/"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{NewReference(12, 0), "12 0 R"},
		{NewReference(3, 7), "3 7 R"},
		{&Rectangle{0, 0, 595.276, 841.89}, "[0 0 595.28 841.89]"},
		{Dict{}, "<<\n>>"},
		{Dict{"B": Integer(2), "A": Integer(1)}, "<<\n/A 1\n/B 2\n>>"},
		{Dict{"A": nil}, "<<\n>>"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("object wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out String
	}{
		{"hello", String("hello")},
		{"two\nlines", String("two\nlines")},
		{"größer", String{0xFE, 0xFF, 0, 'g', 0, 'r', 0, 0xF6, 0, 0xDF, 0, 'e', 0, 'r'}},
		{"ασδφ", String{0xFE, 0xFF, 0x03, 0xB1, 0x03, 0xC3, 0x03, 0xB4, 0x03, 0xC6}},
	}
	for _, test := range cases {
		out := TextString(test.in)
		if string(out) != string(test.out) {
			t.Errorf("%q: expected % x but got % x", test.in, test.out, out)
		}
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	when := time.Date(2026, 8, 29, 11, 30, 15, 0, loc)
	out := Format(Date(when))
	expected := "(D:20260829113015+01'00)"
	if out != expected {
		t.Errorf("expected %q but got %q", expected, out)
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(12345, 42)
	if ref.Number() != 12345 {
		t.Errorf("wrong object number %d", ref.Number())
	}
	if ref.Generation() != 42 {
		t.Errorf("wrong generation number %d", ref.Generation())
	}
}

func TestInvalidReference(t *testing.T) {
	for _, ref := range []Reference{0, Reference(1) << 48} {
		out := Format(ref)
		if out[0] != '<' {
			t.Errorf("expected an error for 0x%x, got %q", uint64(ref), out)
		}
	}
}
