//go:build js && wasm

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

package browser

import (
	"syscall/js"

	"github.com/thediveo/spashell"
)

// elementNode is the DOM nodeType of elements.
const elementNode = 1

// Document implements spashell.Document on top of the browser's document.
type Document struct {
	doc js.Value
}

var _ spashell.Document = (*Document)(nil)

// NewDocument returns the current browser document.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

func (d *Document) byID(id string) (js.Value, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

// SetText sets the textContent of the element with the specified id.
func (d *Document) SetText(id, text string) bool {
	el, ok := d.byID(id)
	if !ok {
		return false
	}
	el.Set("textContent", text)
	return true
}

// SetInnerHTML sets the innerHTML of the element with the specified id.
func (d *Document) SetInnerHTML(id, markup string) bool {
	el, ok := d.byID(id)
	if !ok {
		return false
	}
	el.Set("innerHTML", markup)
	return true
}

// BaseURI returns the document's base URI, to resolve fragments against.
func (d *Document) BaseURI() string {
	return d.doc.Get("baseURI").String()
}

type element struct {
	v js.Value
}

// wrap returns the event target as an element, or nil if it isn't one, such
// as for text nodes or the document itself.
func wrap(v js.Value) spashell.Element {
	if v.IsNull() || v.IsUndefined() || v.Get("nodeType").Int() != elementNode {
		return nil
	}
	return element{v: v}
}

func (e element) ID() string {
	return e.v.Get("id").String()
}

func (e element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e element) Parent() spashell.Element {
	return wrap(e.v.Get("parentElement"))
}
