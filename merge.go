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
	"math"
	"sort"
)

// Merge appends all objects of frag to the chunk c, renumbering them
// into c's object number space.  Object numbers are shifted by a
// constant offset, so that fragment object 1 becomes the next free
// number of c.  All indirect references and object headers in the
// fragment are rewritten accordingly; other bytes, including string
// and stream contents, are copied unchanged.
//
// After the call frag is consumed and must not be used again.  The
// returned function translates references in frag's numbering to the
// corresponding references in c's numbering.
func (c *Chunk) Merge(frag *Chunk) func(Reference) Reference {
	c.ensureUsable("Merge")
	if c == frag {
		panic(&UsageError{Op: "Merge", Reason: "cannot merge a chunk into itself"})
	}
	if frag.consumed {
		panic(&UsageError{
			Op:     "Merge",
			Reason: "chunk has already been merged or finished",
		})
	}
	if frag.buf.inUse {
		panic(&UsageError{
			Op:     "Merge",
			Reason: "fragment has an open object writer",
		})
	}
	c.buf.acquire("Merge")
	defer c.buf.release()

	if frag.err != nil && c.err == nil {
		c.err = frag.err
	}

	offset := uint64(c.nextRef) - 1
	if offset+uint64(frag.nextRef) > math.MaxUint32 {
		panic(errOutOfRefs)
	}

	// Copy the fragment's bytes, splicing in the shifted object number
	// at every relocation site.  The new sites are recorded in c's
	// buffer, so that c can in turn be merged into another chunk.
	base := int64(c.buf.Len())
	src := frag.buf.data
	sites := frag.buf.relocs
	deltas := make([]int64, len(sites)+1)
	pos := 0
	for i, site := range sites {
		c.buf.Write(src[pos:site.pos])
		mark := c.buf.Len()
		c.buf.writeRefNumber(uint32(uint64(site.num) + offset))
		deltas[i+1] = deltas[i] + int64(c.buf.Len()-mark-site.width)
		pos = site.pos + site.width
	}
	c.buf.Write(src[pos:])

	// A renumbered object number can be wider than the original, which
	// shifts all following bytes.  An object's new offset is its old
	// offset plus the accumulated widening of all sites before it; the
	// site at the start of the object's own header does not move the
	// header.
	for num, e := range frag.xref {
		k := sort.Search(len(sites), func(i int) bool {
			return int64(sites[i].pos) >= e.Pos
		})
		c.xref[uint32(uint64(num)+offset)] = &xRefEntry{
			Pos:        base + e.Pos + deltas[k],
			Generation: e.Generation,
		}
	}

	c.nextRef = uint32(uint64(frag.nextRef) + offset)
	frag.consumed = true

	return func(r Reference) Reference {
		if r.Number() == 0 {
			return r
		}
		return NewReference(uint32(uint64(r.Number())+offset), r.Generation())
	}
}
