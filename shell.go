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
	"log/slog"
)

// Shell is the application context: it owns the route table, the state store
// and the router, and handles the events delivered by listeners that have been
// attached once to a stable ancestor element, such as the document body.
// Handlers dispatch on the target element's id and attributes, so nothing
// needs to be re-bound when the content region changes.
type Shell struct {
	Routes  *RouteTable
	Store   *Store
	Router  *Router
	History History
	log     *slog.Logger
}

// New returns a new shell for the specified route table, fragment fetcher,
// document and session history. The router options are passed on to the
// shell's router; a rendered hook refreshing the store's display elements is
// always installed first.
func New(routes *RouteTable, fetcher Fetcher, doc Document, history History, opts ...RouterOption) *Shell {
	s := &Shell{
		Routes:  routes,
		Store:   NewStore(doc),
		History: history,
		log:     slog.Default(),
	}
	ropts := append([]RouterOption{WithRenderedHook(func(string) { s.Store.Refresh() })}, opts...)
	s.Router = NewRouter(routes, fetcher, doc, history, ropts...)
	s.log = s.Router.log
	return s
}

// Start populates the content region for the current location.
func (s *Shell) Start(ctx context.Context) error {
	return s.Router.Restore(ctx, s.History.Location())
}

// HandleClick handles a click on the target element. It reports whether the
// click was handled, in which case the default action must be suppressed.
// Clicks on internal links navigate, while clicks on the counter controls
// increment or decrement the counter.
func (s *Shell) HandleClick(ctx context.Context, target Element) (bool, error) {
	if target == nil {
		return false, nil
	}
	if href, ok := LinkTarget(target); ok {
		return true, s.Router.Navigate(ctx, href)
	}
	switch target.ID() {
	case IncrementID:
		s.Store.Increment()
	case DecrementID:
		s.Store.Decrement()
	default:
		return false, nil
	}
	return true, nil
}

// HandleInput handles an input event on the target element carrying the
// specified value, reporting whether the event was handled.
func (s *Shell) HandleInput(target Element, value string) bool {
	if target == nil || target.ID() != NameInputID {
		return false
	}
	s.Store.SetName(value)
	return true
}

// HandlePopState shows the content for the path the history traversed to.
func (s *Shell) HandlePopState(ctx context.Context, path string) error {
	s.log.Debug("history traversal", slog.String("path", path))
	return s.Router.Restore(ctx, path)
}
