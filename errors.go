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

import "errors"

// UsageError indicates that the library API was used incorrectly, for
// example by opening a second [ObjectWriter] while one is still open,
// or by finishing the same [Writer] twice.  UsageError values are not
// returned but passed to panic, since these conditions always indicate
// a bug in the calling code.
type UsageError struct {
	Op     string
	Reason string
}

func (err *UsageError) Error() string {
	return err.Op + ": " + err.Reason
}

// VersionError is returned when a feature requires a newer PDF version
// than the one selected for the output file.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return (err.Operation + " requires PDF version " +
		err.Earliest.String() + " or newer")
}

// errOutOfRefs is used as a panic value when the object number space is
// exhausted.  This can only happen after more than four billion calls
// to [Chunk.Alloc].
var errOutOfRefs = errors.New("object number space exhausted")
