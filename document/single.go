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

// Package document provides a high-level interface for creating
// simple PDF documents.
package document

import (
	"seehuhn.de/go/pdfwrite"
	"seehuhn.de/go/pdfwrite/graphics"
	"seehuhn.de/go/pdfwrite/pagetree"
)

// A Page is a PDF document with a single page.  The embedded
// [graphics.Writer] is used to draw the page contents; Close finishes
// the document.
type Page struct {
	*graphics.Writer

	// PageDict is the page dictionary.  The MediaBox entry is set by
	// [CreateSinglePage]; more entries can be added before Close is
	// called.
	PageDict pdfwrite.Dict

	// Info, if non-nil, is written as the document information
	// dictionary.
	Info *pdfwrite.Info

	// Out is the underlying PDF writer.  It can be used to add
	// additional objects to the document.
	Out *pdfwrite.Writer

	tree *pagetree.Writer
}

// CreateSinglePage starts a new PDF document with a single page of the
// given size.
func CreateSinglePage(pageSize *pdfwrite.Rectangle, v pdfwrite.Version) (*Page, error) {
	out, err := pdfwrite.NewWriter(v)
	if err != nil {
		return nil, err
	}
	tree := pagetree.NewWriter(out.Chunk)

	return &Page{
		Writer: graphics.NewWriter(),
		PageDict: pdfwrite.Dict{
			"MediaBox": pageSize,
		},
		Out:  out,
		tree: tree,
	}, nil
}

// Close writes the page contents and all document structure objects,
// and returns the bytes of the finished PDF file.
func (p *Page) Close() ([]byte, error) {
	err := p.Writer.Close()
	if err != nil {
		return nil, err
	}

	out := p.Out

	contentRef := out.Alloc()
	stream := out.OpenStream(contentRef, nil, pdfwrite.FlateFilter{})
	_, err = stream.Write(p.Writer.Bytes())
	if err != nil {
		return nil, err
	}
	err = stream.Close()
	if err != nil {
		return nil, err
	}

	p.PageDict["Contents"] = contentRef
	_, err = p.tree.AddPage(p.PageDict)
	if err != nil {
		return nil, err
	}
	treeRef, err := p.tree.Close()
	if err != nil {
		return nil, err
	}

	if p.Info != nil {
		infoRef := out.Alloc()
		err = out.Put(infoRef, p.Info.AsDict())
		if err != nil {
			return nil, err
		}
		out.SetInfo(infoRef)
	}

	catalog := &pdfwrite.Catalog{Pages: treeRef}
	rootRef := out.Alloc()
	err = out.Put(rootRef, catalog.AsDict())
	if err != nil {
		return nil, err
	}

	return out.Finish(rootRef)
}
