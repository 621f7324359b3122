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
	"context"
	"errors"
	"fmt"

	"github.com/thediveo/spashell"
)

// ErrNoElement is returned when an event target selector matches nothing.
var ErrNoElement = errors.New("no matching element")

// ErrNoHistoryEntry is returned when traversing past either end of the
// session history.
var ErrNoHistoryEntry = errors.New("no history entry")

// Tab runs a shell on a Page, playing the role of a browser tab: it delivers
// user interaction to the shell's delegated handlers and traverses the session
// history.
type Tab struct {
	Page    *Page
	History *spashell.SessionHistory // full location paths, including the base path.
	Shell   *spashell.Shell
}

// Open loads the shell document markup at the specified location and
// populates its content region. The location is the full URL path; the
// document's base element determines the logical path below it. When the initial navigation fails, the tab
// is returned together with the error, so that the failure state can be
// inspected.
func Open(ctx context.Context, shellDoc string, location string,
	routes *spashell.RouteTable, fetcher spashell.Fetcher, opts ...spashell.RouterOption,
) (*Tab, error) {
	page, err := ParsePage(shellDoc)
	if err != nil {
		return nil, fmt.Errorf("cannot parse shell document: %w", err)
	}
	history := spashell.NewSessionHistory(location)
	base := spashell.BasePath(page.Find("base[href]").First().AttrOr("href", "/"))
	t := &Tab{
		Page:    page,
		History: history,
		Shell:   spashell.New(routes, fetcher, page, spashell.NewBasedHistory(history, base), opts...),
	}
	return t, t.Shell.Start(ctx)
}

// Location returns the logical path of the current history entry, that is,
// relative to the document's base path.
func (t *Tab) Location() string {
	return t.Shell.History.Location()
}

// Text returns the text content of the element with the specified id, or ""
// if there's no such element.
func (t *Tab) Text(id string) string {
	text, _ := t.Page.Text(id)
	return text
}

// ContentHTML returns the markup inside the content region.
func (t *Tab) ContentHTML() string {
	markup, _ := t.Page.InnerHTML(spashell.ContentID)
	return markup
}

// Click clicks the first element matching the CSS selector and reports
// whether the shell handled the click.
func (t *Tab) Click(ctx context.Context, selector string) (bool, error) {
	el := Element(t.Page.Find(selector))
	if el == nil {
		return false, fmt.Errorf("%w: %s", ErrNoElement, selector)
	}
	return t.Shell.HandleClick(ctx, el)
}

// Type sets the value of the first input element matching the CSS selector
// and delivers the resulting input event.
func (t *Tab) Type(selector, value string) error {
	sel := t.Page.Find(selector).First()
	if sel.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrNoElement, selector)
	}
	sel.SetAttr("value", value)
	t.Shell.HandleInput(Element(sel), value)
	return nil
}

// Back traverses to the previous history entry.
func (t *Tab) Back(ctx context.Context) error {
	if !t.History.Back() {
		return ErrNoHistoryEntry
	}
	return t.Shell.HandlePopState(ctx, t.Location())
}

// Forward traverses to the next history entry.
func (t *Tab) Forward(ctx context.Context) error {
	if !t.History.Forward() {
		return ErrNoHistoryEntry
	}
	return t.Shell.HandlePopState(ctx, t.Location())
}
