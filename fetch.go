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
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
)

// Fetcher retrieves the textual contents of markup fragments.
type Fetcher interface {
	Fetch(ctx context.Context, fragment string) (string, error)
}

// StatusError reports a fragment request that didn't succeed with a 2xx HTTP
// status code.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPFetcher fetches fragments using HTTP GET requests, resolving fragment
// references relative to a base URL.
type HTTPFetcher struct {
	client *http.Client
	base   *url.URL
}

// NewHTTPFetcher returns a fetcher resolving fragments relative to the
// specified base URL, which usually is the shell document's base URI. If
// client is nil, http.DefaultClient is used.
func NewHTTPFetcher(base string, client *http.Client) (*HTTPFetcher, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid fragment base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, base: u}, nil
}

// Fetch retrieves the specified fragment. Responses with a status code other
// than 2xx fail with a *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, fragment string) (string, error) {
	ref, err := url.Parse(fragment)
	if err != nil {
		return "", fmt.Errorf("invalid fragment reference %q: %w", fragment, err)
	}
	u := f.base.ResolveReference(ref).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: u, StatusCode: resp.StatusCode}
	}
	markup, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", u, err)
	}
	return string(markup), nil
}

// FSFetcher reads fragments from an fs.FS, such as an embedded file system or
// a directory on the OS file system.
type FSFetcher struct {
	fs fs.FS
}

// NewFSFetcher returns a fetcher reading fragments from the specified fs.
// Fragment references are sanitized into unrooted paths, so they cannot escape
// the fs.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fs: fsys}
}

// Fetch returns the contents of the specified fragment file.
func (f *FSFetcher) Fetch(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	markup, err := fs.ReadFile(f.fs, path.Clean("/" + fragment)[1:])
	if err != nil {
		return "", err
	}
	return string(markup), nil
}
