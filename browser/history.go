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

// History implements spashell.History on top of window.history, changing the
// location without reloading the document. It records logical paths below the
// document's base path, so the shell keeps working when mounted below a proxy
// prefix.
type History struct {
	win  js.Value
	base string
}

var _ spashell.History = (*History)(nil)

// NewHistory returns the current window's session history, taking the base
// path from the document's base URI.
func NewHistory() *History {
	return &History{
		win:  js.Global(),
		base: spashell.BasePath(js.Global().Get("document").Get("baseURI").String()),
	}
}

func (h *History) Push(path string) {
	h.win.Get("history").Call("pushState", nil, "", spashell.JoinBase(h.base, path))
}

func (h *History) Replace(path string) {
	h.win.Get("history").Call("replaceState", nil, "", spashell.JoinBase(h.base, path))
}

// Location returns the logical path of the current location.
func (h *History) Location() string {
	return spashell.StripBase(h.base, h.win.Get("location").Get("pathname").String())
}
