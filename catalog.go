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
	"time"

	"golang.org/x/text/language"
)

// Catalog represents the document catalog, i.e. the root of a PDF
// document's object graph.  The only required field is Pages.
type Catalog struct {
	Pages             Reference
	PageLayout        Name
	PageMode          Name
	Outlines          Reference
	Lang              language.Tag
	ViewerPreferences Dict
	OpenAction        Object
	Names             Dict
	Metadata          Reference
}

// AsDict returns the PDF dictionary for the catalog.
func (c *Catalog) AsDict() Dict {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": c.Pages,
	}
	if c.PageLayout != "" {
		dict["PageLayout"] = c.PageLayout
	}
	if c.PageMode != "" {
		dict["PageMode"] = c.PageMode
	}
	if c.Outlines.Number() != 0 {
		dict["Outlines"] = c.Outlines
	}
	if !c.Lang.IsRoot() {
		dict["Lang"] = TextString(c.Lang.String())
	}
	if len(c.ViewerPreferences) > 0 {
		dict["ViewerPreferences"] = c.ViewerPreferences
	}
	if c.OpenAction != nil {
		dict["OpenAction"] = c.OpenAction
	}
	if len(c.Names) > 0 {
		dict["Names"] = c.Names
	}
	if c.Metadata.Number() != 0 {
		dict["Metadata"] = c.Metadata
	}
	return dict
}

// Info represents the document information dictionary of a PDF file.
// All fields are optional.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	Creator  string
	Producer string

	CreationDate time.Time
	ModDate      time.Time

	// Custom contains all non-standard entries.
	Custom map[string]string
}

// AsDict returns the PDF dictionary for the document information.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	if info.Title != "" {
		dict["Title"] = TextString(info.Title)
	}
	if info.Author != "" {
		dict["Author"] = TextString(info.Author)
	}
	if info.Subject != "" {
		dict["Subject"] = TextString(info.Subject)
	}
	if info.Keywords != "" {
		dict["Keywords"] = TextString(info.Keywords)
	}
	if info.Creator != "" {
		dict["Creator"] = TextString(info.Creator)
	}
	if info.Producer != "" {
		dict["Producer"] = TextString(info.Producer)
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		dict["ModDate"] = Date(info.ModDate)
	}
	for key, val := range info.Custom {
		dict[Name(key)] = TextString(val)
	}
	return dict
}
