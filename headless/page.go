// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package headless

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/thediveo/spashell"
)

// Page is a document parsed into an in-memory DOM. It implements
// spashell.Document.
type Page struct {
	doc *goquery.Document
}

var _ spashell.Document = (*Page)(nil)

// NewPage parses the HTML document read from r.
func NewPage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc}, nil
}

// ParsePage parses the specified HTML document markup.
func ParsePage(markup string) (*Page, error) {
	return NewPage(strings.NewReader(markup))
}

func (p *Page) byID(id string) *goquery.Selection {
	return p.doc.Find("#" + id).First()
}

// SetText replaces the children of the element with the specified id with a
// single text node.
func (p *Page) SetText(id, text string) bool {
	sel := p.byID(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetText(text)
	return true
}

// SetInnerHTML replaces the children of the element with the specified id
// with the parsed markup.
func (p *Page) SetInnerHTML(id, markup string) bool {
	sel := p.byID(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetHtml(markup)
	return true
}

// Text returns the text content of the element with the specified id, and
// whether there is such an element.
func (p *Page) Text(id string) (string, bool) {
	sel := p.byID(id)
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}

// InnerHTML returns the markup inside the element with the specified id.
func (p *Page) InnerHTML(id string) (string, error) {
	return p.byID(id).Html()
}

// Find returns the elements matching the CSS selector.
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// HTML renders the whole document.
func (p *Page) HTML() (string, error) {
	return p.doc.Html()
}

// Element returns the first element of the selection as an event target, or
// nil if the selection is empty.
func Element(sel *goquery.Selection) spashell.Element {
	if sel.Length() == 0 {
		return nil
	}
	return element{sel: sel.First()}
}

type element struct {
	sel *goquery.Selection
}

func (e element) ID() string {
	id, _ := e.sel.Attr("id")
	return id
}

func (e element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e element) Parent() spashell.Element {
	return Element(e.sel.Parent())
}
