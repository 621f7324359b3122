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
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/thediveo/spashell"
)

// PrerenderedAttr is set on the content region of prerendered shell documents
// and names the logical path the content was rendered for.
const PrerenderedAttr = "data-prerendered"

// PrerenderRewriter returns an IndexRewriter that renders the fragment
// resolved for the request path from fsys into the content region of the
// shell document, together with the initial state display. If prerendering
// fails, the shell document is passed through unchanged and the client
// populates the content region itself.
func PrerenderRewriter(routes *spashell.RouteTable, fsys fs.FS, log *slog.Logger) spashell.IndexRewriter {
	if log == nil {
		log = slog.Default()
	}
	fetcher := spashell.NewFSFetcher(fsys)
	return func(r *http.Request, index string) string {
		page, err := ParsePage(index)
		if err != nil {
			log.Warn("cannot parse shell document", slog.String("err", err.Error()))
			return index
		}
		shell := spashell.New(routes, fetcher, page, spashell.NewSessionHistory(r.URL.Path),
			spashell.WithLogger(log), spashell.WithFailureRenderer(nil))
		if err := shell.Start(r.Context()); err != nil {
			log.Warn("cannot prerender", slog.String("path", r.URL.Path),
				slog.Int("status", spashell.NormalizedStatus(err)), slog.String("err", err.Error()))
			return index
		}
		page.byID(spashell.ContentID).SetAttr(PrerenderedAttr, r.URL.Path)
		rendered, err := page.HTML()
		if err != nil {
			return index
		}
		return rendered
	}
}
