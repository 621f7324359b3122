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

package spashell

// Identifiers of the DOM elements the shell manages.
const (
	ContentID       = "content"        // content region replaced on navigation.
	NameInputID     = "nombreInput"    // text input feeding the name field.
	NameOutputID    = "nombreOutput"   // display element of the name field.
	IncrementID     = "incrementarBtn" // increments the counter field.
	DecrementID     = "disminuirBtn"   // decrements the counter field.
	CounterOutputID = "contadorOutput" // display element of the counter field.
)

// LinkAttr marks elements whose clicks are internal navigations; the target
// path is taken from the element's href attribute.
const LinkAttr = "data-link"

// Placeholder is shown in the name display element while the name is empty.
const Placeholder = "---"

// Document gives the shell write access to the elements it manages. Both
// methods report whether the element with the specified id exists; absent
// elements are silently skipped.
type Document interface {
	// SetText sets the visible text of the element with the given id.
	SetText(id, text string) bool
	// SetInnerHTML replaces the markup inside the element with the given id.
	SetInnerHTML(id, markup string) bool
}

// Element is the view of an event target element the shell needs in order to
// dispatch delegated events.
type Element interface {
	ID() string
	Attr(name string) (string, bool)
	// Parent returns the enclosing element, or nil at the top of the tree.
	Parent() Element
}

// LinkTarget returns the target path of the internal link the element belongs
// to, that is, the href of the element itself or its nearest ancestor carrying
// the LinkAttr marker.
func LinkTarget(el Element) (string, bool) {
	for ; el != nil; el = el.Parent() {
		if _, ok := el.Attr(LinkAttr); !ok {
			continue
		}
		href, ok := el.Attr("href")
		return href, ok
	}
	return "", false
}
