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
	"net/url"
	"path"
	"strings"
)

// BasePath returns the directory path of a document base URI, always ending in
// "/". Relative or unparsable base URIs yield "/".
func BasePath(baseURI string) string {
	u, err := url.Parse(baseURI)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	dir := path.Clean(u.Path)
	if !strings.HasSuffix(u.Path, "/") {
		dir = path.Dir(dir)
	}
	if dir == "/" {
		return dir
	}
	return dir + "/"
}

// StripBase turns a location path into the logical path below the base path.
// Locations outside the base are returned unchanged.
func StripBase(base, location string) string {
	if base == "" || base == "/" {
		return location
	}
	if location+"/" == base {
		return "/"
	}
	if strings.HasPrefix(location, base) {
		return "/" + location[len(base):]
	}
	return location
}

// JoinBase turns a logical path into the location path below the base path.
func JoinBase(base, logical string) string {
	if base == "" || base == "/" {
		return logical
	}
	return base + strings.TrimPrefix(logical, "/")
}

// BasedHistory maps the logical paths of the shell onto the locations of a
// session history whose application is mounted below a base path.
type BasedHistory struct {
	locations History
	base      string
}

var _ History = (*BasedHistory)(nil)

// NewBasedHistory returns a History recording logical paths as locations below
// the base path, as returned by BasePath.
func NewBasedHistory(locations History, base string) *BasedHistory {
	return &BasedHistory{locations: locations, base: base}
}

func (h *BasedHistory) Push(path string) { h.locations.Push(JoinBase(h.base, path)) }

func (h *BasedHistory) Replace(path string) { h.locations.Replace(JoinBase(h.base, path)) }

// Location returns the logical path of the current location.
func (h *BasedHistory) Location() string { return StripBase(h.base, h.locations.Location()) }

// Base returns the base path.
func (h *BasedHistory) Base() string { return h.base }
