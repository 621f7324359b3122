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
	"html"
	"log/slog"
	"sync"
)

// ErrNoContentRegion is returned when the document lacks the content region.
var ErrNoContentRegion = errors.New("no content region")

// NavigationError reports a navigation whose fragment couldn't be retrieved.
type NavigationError struct {
	Path     string // requested logical path.
	Fragment string // fragment the path resolved to.
	Err      error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigating to %s: fragment %s unavailable: %s", e.Path, e.Fragment, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// FailureRenderer returns the markup shown in the content region when the
// fragment for a path couldn't be retrieved.
type FailureRenderer func(path string, err error) string

// DefaultFailureMarkup renders a minimal alert.
func DefaultFailureMarkup(path string, err error) string {
	return `<div class="spashell-error" role="alert">Cannot load ` +
		html.EscapeString(path) + `: ` + html.EscapeString(err.Error()) + `</div>`
}

// Router maps logical paths to fragments, injects the fragments into the
// content region and records navigations in the session history.
// Navigations are serialized.
type Router struct {
	mu         sync.Mutex
	routes     *RouteTable
	fetcher    Fetcher
	doc        Document
	history    History
	log        *slog.Logger
	onRendered func(path string)
	failure    FailureRenderer
}

// RouterOption sets optional properties when creating a Router.
type RouterOption func(*Router)

// WithLogger sets the logger for navigation events.
func WithLogger(log *slog.Logger) RouterOption {
	return func(r *Router) {
		r.log = log
	}
}

// WithRenderedHook sets a function to be called after new fragment markup was
// injected into the content region, but before the history is updated.
func WithRenderedHook(fn func(path string)) RouterOption {
	return func(r *Router) {
		r.onRendered = fn
	}
}

// WithFailureRenderer replaces the default alert shown when fragments cannot
// be retrieved. A nil renderer leaves the content region unchanged instead.
func WithFailureRenderer(fn FailureRenderer) RouterOption {
	return func(r *Router) {
		r.failure = fn
	}
}

// NewRouter returns a new router.
func NewRouter(routes *RouteTable, fetcher Fetcher, doc Document, history History, opts ...RouterOption) *Router {
	r := &Router{
		routes:  routes,
		fetcher: fetcher,
		doc:     doc,
		history: history,
		log:     slog.Default(),
		failure: DefaultFailureMarkup,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type historyUpdate int

const (
	pushEntry historyUpdate = iota
	replaceEntry
)

// Navigate shows the fragment mapped to path, falling back to the default
// route's fragment for unmapped paths, and pushes path onto the history.
//
// If the fragment cannot be retrieved, the content region shows an alert
// instead, the history is left untouched, and a *NavigationError is returned.
func (r *Router) Navigate(ctx context.Context, path string) error {
	return r.navigate(ctx, path, pushEntry)
}

// Restore works like Navigate, but replaces the current history entry instead
// of pushing a new one. It is used on initial load and on history traversal,
// when the location already shows path.
func (r *Router) Restore(ctx context.Context, path string) error {
	return r.navigate(ctx, path, replaceEntry)
}

func (r *Router) navigate(ctx context.Context, path string, update historyUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fragment, found := r.routes.Resolve(path)
	if !found {
		r.log.Debug("unmapped path, using default route",
			slog.String("path", path), slog.String("default", r.routes.DefaultPath()))
	}
	markup, err := r.fetcher.Fetch(ctx, fragment)
	if err != nil {
		r.log.Error("cannot retrieve fragment",
			slog.String("path", path), slog.String("fragment", fragment),
			slog.Int("status", NormalizedStatus(err)), slog.String("err", err.Error()))
		if r.failure != nil {
			r.doc.SetInnerHTML(ContentID, r.failure(path, err))
		}
		return &NavigationError{Path: path, Fragment: fragment, Err: err}
	}
	if !r.doc.SetInnerHTML(ContentID, markup) {
		return fmt.Errorf("navigating to %s: %w", path, ErrNoContentRegion)
	}
	if r.onRendered != nil {
		r.onRendered(path)
	}
	switch update {
	case pushEntry:
		r.history.Push(path)
	case replaceEntry:
		r.history.Replace(path)
	}
	r.log.Debug("navigated", slog.String("path", path), slog.String("fragment", fragment))
	return nil
}
