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
	"fmt"
	"math/bits"
)

// An xRefEntry describes where an object can be found in a PDF file.
type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// freeLinks returns, for every unused object number below w.nextRef,
// the next unused number.  The free entries form a linked list,
// starting at object 0 and terminated by a link back to 0.
//
// The reserved number is treated as in use, even if it has no xref
// entry yet.  Pass 0 to reserve nothing; object 0 is always free.
func (w *Writer) freeLinks(reserved uint32) map[uint32]uint32 {
	var free []uint32
	free = append(free, 0)
	for num := uint32(1); num < w.nextRef; num++ {
		if _, used := w.xref[num]; !used && num != reserved {
			free = append(free, num)
		}
	}

	links := make(map[uint32]uint32, len(free))
	for i, num := range free {
		if i+1 < len(free) {
			links[num] = free[i+1]
		} else {
			links[num] = 0
		}
	}
	return links
}

// writeXRefTable appends a classic cross-reference table, followed by
// the trailer dictionary.  This is used for PDF versions before 1.5.
func (w *Writer) writeXRefTable(trailer Dict) error {
	buf := w.buf
	links := w.freeLinks(0)

	buf.appendString("xref\n")
	fmt.Fprintf(buf, "0 %d\n", w.nextRef)
	for num := uint32(0); num < w.nextRef; num++ {
		if entry, used := w.xref[num]; used {
			fmt.Fprintf(buf, "%010d %05d n\r\n", entry.Pos, entry.Generation)
		} else {
			gen := 0
			if num == 0 {
				gen = 65535
			}
			fmt.Fprintf(buf, "%010d %05d f\r\n", links[num], gen)
		}
	}

	buf.appendString("trailer\n")
	err := trailer.PDF(buf)
	if err != nil {
		return err
	}
	buf.appendString("\n")
	return nil
}

// writeXRefStream appends the cross-reference information as a stream
// object, for PDF versions 1.5 and above.  The trailer entries are
// stored in the stream dictionary.  The function returns the file
// offset of the stream object.
func (w *Writer) writeXRefStream(trailer Dict) (int64, error) {
	ref := w.Alloc()
	xrefPos := int64(w.buf.Len())

	// The stream describes itself, too.  Nothing can be appended to
	// the buffer while the stream writer is open, so the position of
	// the stream object is known before the rows are encoded.
	self := &xRefEntry{Pos: xrefPos}
	entry := func(num uint32) *xRefEntry {
		if num == ref.Number() {
			return self
		}
		return w.xref[num]
	}

	// The stream object has no xref entry yet; its entry is only added
	// when the stream writer is closed.  Its number must not end up in
	// the free list.
	links := w.freeLinks(ref.Number())

	var maxField2, maxField3 uint64
	for num := uint32(0); num < w.nextRef; num++ {
		var f2, f3 uint64
		if e := entry(num); e != nil {
			f2 = uint64(e.Pos)
			f3 = uint64(e.Generation)
		} else {
			f2 = uint64(links[num])
			if num == 0 {
				f3 = 65535
			}
		}
		if f2 > maxField2 {
			maxField2 = f2
		}
		if f3 > maxField3 {
			maxField3 = f3
		}
	}
	w2 := (bits.Len64(maxField2) + 7) / 8
	if w2 == 0 {
		w2 = 1
	}
	w3 := (bits.Len64(maxField3) + 7) / 8
	if w3 == 0 {
		w3 = 1
	}

	rows := make([]byte, 0, int(w.nextRef)*(1+w2+w3))
	for num := uint32(0); num < w.nextRef; num++ {
		if e := entry(num); e != nil {
			rows = append(rows, 1)
			rows = appendBigEndian(rows, uint64(e.Pos), w2)
			rows = appendBigEndian(rows, uint64(e.Generation), w3)
		} else {
			var gen uint64
			if num == 0 {
				gen = 65535
			}
			rows = append(rows, 0)
			rows = appendBigEndian(rows, uint64(links[num]), w2)
			rows = appendBigEndian(rows, gen, w3)
		}
	}

	dict := Dict{
		"Type": Name("XRef"),
		"Size": Integer(w.nextRef),
		"W":    Array{Integer(1), Integer(w2), Integer(w3)},
	}
	for key, val := range trailer {
		dict[key] = val
	}

	stream := w.OpenStream(ref, dict, FlateFilter{})
	_, err := stream.Write(rows)
	if err != nil {
		return 0, err
	}
	err = stream.Close()
	if err != nil {
		return 0, err
	}

	return xrefPos, nil
}

func appendBigEndian(dst []byte, val uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(val>>(8*i)))
	}
	return dst
}
