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
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
)

// ForwardedPrefixHeader, if present, specifies the prefix a path rewriting
// proxy stripped from the original request path.
const ForwardedPrefixHeader = "X-Forwarded-Prefix"

// ForwardedUriHeader, if present, specifies the original URI, or with some
// proxies only the original URI path, of a request as seen by the first proxy.
const ForwardedUriHeader = "X-Forwarded-Uri"

// baseRe matches the base element of the shell document. Relative fragment
// references are resolved against it, so it must reflect where the shell is
// actually served from. The non-greedy "*?" stops at the first empty element
// end.
var baseRe = regexp.MustCompile(`(<base href=").*?("\s*/>)`)

// SPAHandler implements an http.Handler that serves fragments and other static
// assets from an fs.FS whenever a request path names a regular file, and the
// shell document for all other paths not ending in an asset file name
// extension, including all logical paths of the route table. The shell document's base element is adjusted to the base
// path derived from forwarding proxy headers.
type SPAHandler struct {
	fs            fs.FS
	shell         string        // unrooted path of the shell document inside fs.
	assets        http.Handler  // file server on top of fs.
	shellRewriter IndexRewriter // optional post-processing of the shell document.
	assetExts     map[string]struct{}
}

// DefaultAssetExtensions lists the file name extensions of fragments and
// static assets that are answered with 404 instead of the shell document when
// missing.
var DefaultAssetExtensions = []string{
	".html", ".htm", ".js", ".mjs", ".css", ".map", ".wasm", ".json", ".txt", ".xml",
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp",
	".woff", ".woff2", ".ttf", ".otf",
}

// NewSPAHandler returns a new HTTP handler serving static resources from the
// specified fs, and the shell document in place of everything not found. The
// shell document is usually "index.html"; its path gets sanitized.
//
// To serve from a directory on the OS file system, use os.DirFS:
//
//	h := NewSPAHandler(os.DirFS("/opt/data/spashell"), "index.html")
func NewSPAHandler(fsys fs.FS, shell string, opts ...SPAHandlerOption) *SPAHandler {
	h := &SPAHandler{
		fs:     fsys,
		shell:  path.Clean("/" + shell)[1:],
		assets: http.FileServer(http.FS(fsys)),
	}
	WithAssetExtensions(DefaultAssetExtensions...)(h)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SPAHandlerOption sets optional properties when creating an SPAHandler.
type SPAHandlerOption func(*SPAHandler)

// IndexRewriter rewrites the shell document contents after the base element
// has been updated and before delivering it to the requesting client.
type IndexRewriter func(r *http.Request, index string) string

// WithIndexRewriter sets an IndexRewriter for application-specific changes to
// the shell document. Multiple rewriters are applied in the order given.
func WithIndexRewriter(rewriter IndexRewriter) SPAHandlerOption {
	return func(h *SPAHandler) {
		if prev := h.shellRewriter; prev != nil {
			h.shellRewriter = func(r *http.Request, index string) string {
				return rewriter(r, prev(r, index))
			}
			return
		}
		h.shellRewriter = rewriter
	}
}

// WithAssetExtensions replaces the DefaultAssetExtensions. Extensions are
// matched case-insensitively and must include the leading dot.
func WithAssetExtensions(exts ...string) SPAHandlerOption {
	return func(h *SPAHandler) {
		h.assetExts = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			h.assetExts[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// ServeHTTP serves a static asset if the request path names one, and the shell
// document otherwise, so that client-side routes survive reloads and
// bookmarking. Request paths with an asset file name extension that don't
// name an existing asset are answered with 404.
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Rooting the path before cleaning it prevents parent directory traversal
	// outside the fs.
	r.URL.Path = path.Clean("/" + r.URL.Path)
	if h.serveAsset(w, r) {
		return
	}
	// A missing fragment or asset must not be answered with the shell
	// document, but logical paths may well contain dots.
	if _, ok := h.assetExts[strings.ToLower(path.Ext(r.URL.Path))]; ok {
		NormalizedHttpError(w, fs.ErrNotExist)
		return
	}
	h.serveShell(w, r)
}

// serveShell serves the shell document with its base element pointing to the
// base path of the application.
func (h *SPAHandler) serveShell(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			NormalizedHttpError(w, err)
		}
	}()
	// "$" would interfere with the "$1" and "$2" back references; it has no
	// business in SPA base paths anyway.
	base := strings.ReplaceAll(h.basename(r), "$", "")
	f, err := h.fs.Open(h.shell)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return
	}
	contents, err := io.ReadAll(f)
	if err != nil {
		return
	}
	doc := baseRe.ReplaceAllString(string(contents), "${1}"+base+"${2}")
	if h.shellRewriter != nil {
		doc = h.shellRewriter(r, doc)
	}
	http.ServeContent(w, r, "index.html", info.ModTime(), strings.NewReader(doc))
}

// serveAsset serves the regular file named by the already sanitized request
// path and returns true, or returns false without serving anything if there is
// no such file.
func (h *SPAHandler) serveAsset(w http.ResponseWriter, r *http.Request) bool {
	name := r.URL.Path[1:] // fs.FS uses unrooted paths.
	if name == "" {
		return false // the root always is a client-side route.
	}
	// fs.Stat falls back to Open+Stat for fs.FS implementations lacking
	// fs.StatFS.
	info, err := fs.Stat(h.fs, name)
	if err == nil && info.Mode()&os.ModeType == 0 {
		h.assets.ServeHTTP(w, r)
		return true
	}
	if err != nil && !os.IsNotExist(err) {
		NormalizedHttpError(w, err)
		return true
	}
	return false
}

// originalReqPath returns the request path as seen by the first proxy in a
// chain, as far as forwarding headers tell. Without such headers it is the
// already sanitized request path.
func (h *SPAHandler) originalReqPath(r *http.Request) string {
	if prefix := r.Header.Get(ForwardedPrefixHeader); prefix != "" {
		prefix = path.Clean("/" + prefix)
		return path.Join(prefix, r.URL.Path)
	}
	// Some proxies pass only the original path, others the full URI.
	if fwuri := r.Header.Get(ForwardedUriHeader); fwuri != "" {
		if strings.HasPrefix(fwuri, "/") {
			return path.Clean(fwuri)
		}
		if u, err := url.Parse(fwuri); err == nil {
			return path.Clean("/" + u.Path)
		}
	}
	return r.URL.Path
}

// basename returns the base path of the application from the client's
// perspective, always ending in "/". It is "/" if it cannot be derived.
func (h *SPAHandler) basename(r *http.Request) string {
	reqPath := r.URL.Path
	origPath := h.originalReqPath(r)
	// A proxy redirecting /foo to /foo/ and then rewriting to / leaves us with
	// a trailing slash the original path lacks.
	if strings.HasSuffix(reqPath, "/") && !strings.HasSuffix(origPath, "/") {
		origPath += "/"
	}
	var base string
	if strings.HasSuffix(origPath, reqPath) {
		base = origPath[:len(origPath)-len(reqPath)]
	}
	// Without the trailing slash browsers would treat the last element as a
	// file name and drop it when resolving relative references.
	if strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}
