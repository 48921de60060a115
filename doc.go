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

// Package pdfwrite generates PDF files from scratch.
//
// The library is write-only: it assembles a document in memory, one
// indirect object at a time, and returns the finished file as a byte
// slice.  It does not read or update existing files.
//
// A document is created with [NewWriter].  Indirect objects are
// allocated with [Chunk.Alloc] and written either in one go with
// [Chunk.Put], field by field through an [ObjectWriter], or as a stream
// through [Chunk.OpenStream].  Objects can also be assembled in a
// standalone [Chunk] and later be merged into the document with
// [Chunk.Merge], which renumbers all object references automatically.
// Finally, [Writer.Finish] emits the cross-reference information and
// the file trailer.
//
// The objects written to the file are represented by the types
// implementing the [Object] interface: [Array], [Bool], [Dict],
// [Integer], [Name], [Real], [Reference], and [String].
//
// Misuse of the API, for example opening a second [ObjectWriter] while
// one is still open, is reported by panicking with a [*UsageError].
// These conditions always indicate a bug in the calling code and are
// never triggered by data.
package pdfwrite
