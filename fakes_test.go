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

import (
	"context"
	"errors"
	"fmt"
)

// fakeDoc is a document consisting only of elements identified by id, each
// carrying either text or markup.
type fakeDoc struct {
	elements map[string]string
}

func newFakeDoc(ids ...string) *fakeDoc {
	d := &fakeDoc{elements: map[string]string{}}
	for _, id := range ids {
		d.elements[id] = ""
	}
	return d
}

func (d *fakeDoc) SetText(id, text string) bool {
	if _, ok := d.elements[id]; !ok {
		return false
	}
	d.elements[id] = text
	return true
}

func (d *fakeDoc) SetInnerHTML(id, markup string) bool {
	return d.SetText(id, markup)
}

// fakeElement is an event target with attributes and an optional parent.
type fakeElement struct {
	id     string
	attrs  map[string]string
	parent *fakeElement
}

func (e *fakeElement) ID() string { return e.id }

func (e *fakeElement) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// fakeFetcher serves fragments from a map and records what was fetched.
type fakeFetcher struct {
	fragments map[string]string
	fetched   []string
	err       error
}

var errBroken = errors.New("broken network")

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{fragments: map[string]string{
		"home.html":     "<p>home</p>",
		"contador.html": "<p>counter</p>",
		"info.html":     "<p>info</p>",
	}}
}

func (f *fakeFetcher) Fetch(ctx context.Context, fragment string) (string, error) {
	f.fetched = append(f.fetched, fragment)
	if f.err != nil {
		return "", f.err
	}
	markup, ok := f.fragments[fragment]
	if !ok {
		return "", fmt.Errorf("no fragment %s", fragment)
	}
	return markup, nil
}
