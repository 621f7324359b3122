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
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// RouteTable maps logical paths to markup fragment resources. A route table is
// immutable once created; paths not found in the table resolve to the
// fragment of the designated default path.
type RouteTable struct {
	fragments   map[string]string
	defaultPath string
}

// ErrInvalidRouteTable is wrapped by all route table validation errors.
var ErrInvalidRouteTable = errors.New("invalid route table")

// DefaultRouteTable returns the built-in route table.
func DefaultRouteTable() *RouteTable {
	return &RouteTable{
		fragments: map[string]string{
			"/":         "home.html",
			"/home":     "home.html",
			"/contador": "contador.html",
			"/info":     "info.html",
		},
		defaultPath: "/",
	}
}

// NewRouteTable returns a new route table for the specified path to fragment
// mapping. The defaultPath must be one of the mapped paths. All paths must be
// rooted and all fragments non-empty. The entries map is copied.
func NewRouteTable(entries map[string]string, defaultPath string) (*RouteTable, error) {
	t := &RouteTable{
		fragments:   make(map[string]string, len(entries)),
		defaultPath: defaultPath,
	}
	for p, fragment := range entries {
		if !strings.HasPrefix(p, "/") {
			return nil, fmt.Errorf("%w: path %q is not rooted", ErrInvalidRouteTable, p)
		}
		if strings.TrimSpace(fragment) == "" {
			return nil, fmt.Errorf("%w: path %q has no fragment", ErrInvalidRouteTable, p)
		}
		t.fragments[p] = fragment
	}
	if _, ok := t.fragments[defaultPath]; !ok {
		return nil, fmt.Errorf("%w: default path %q is not mapped", ErrInvalidRouteTable, defaultPath)
	}
	return t, nil
}

// routeFile is the TOML representation of a route table.
type routeFile struct {
	Default string            `toml:"default"`
	Routes  map[string]string `toml:"routes"`
}

// LoadRouteTable reads a route table in TOML format, such as:
//
//	default = "/"
//
//	[routes]
//	"/" = "home.html"
//	"/info" = "info.html"
//
// The default key is optional and defaults to "/".
func LoadRouteTable(r io.Reader) (*RouteTable, error) {
	var rf routeFile
	md, err := toml.NewDecoder(r).Decode(&rf)
	if err != nil {
		return nil, fmt.Errorf("cannot decode route table: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidRouteTable, undecoded[0].String())
	}
	if rf.Default == "" {
		rf.Default = "/"
	}
	return NewRouteTable(rf.Routes, rf.Default)
}

// Resolve returns the fragment mapped to the specified path. If the path isn't
// mapped, the default path's fragment is returned instead and found is false.
func (t *RouteTable) Resolve(path string) (fragment string, found bool) {
	if fragment, ok := t.fragments[path]; ok {
		return fragment, true
	}
	return t.fragments[t.defaultPath], false
}

// DefaultPath returns the path unknown paths fall back to.
func (t *RouteTable) DefaultPath() string { return t.defaultPath }

// Paths returns the mapped paths in lexical order.
func (t *RouteTable) Paths() []string {
	paths := make([]string, 0, len(t.fragments))
	for p := range t.fragments {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
