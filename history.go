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

import "sync"

// History records navigations in the session history without reloading the
// document.
type History interface {
	// Push adds a new entry for the path, dropping any forward entries.
	Push(path string)
	// Replace changes the path of the current entry.
	Replace(path string)
	// Location returns the path of the current entry.
	Location() string
}

// SessionHistory is an in-memory History with back and forward traversal.
type SessionHistory struct {
	mu      sync.Mutex
	entries []string
	current int
}

var _ History = (*SessionHistory)(nil)

// NewSessionHistory returns a session history with a single entry for the
// specified initial path.
func NewSessionHistory(initial string) *SessionHistory {
	return &SessionHistory{entries: []string{initial}}
}

// Push adds a new entry after the current one, discarding all entries that
// were ahead of the current entry.
func (h *SessionHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.current+1], path)
	h.current++
}

// Replace changes the path of the current entry.
func (h *SessionHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.current] = path
}

// Location returns the path of the current entry.
func (h *SessionHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.current]
}

// Back moves to the previous entry, returning false if there is none.
func (h *SessionHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == 0 {
		return false
	}
	h.current--
	return true
}

// Forward moves to the next entry, returning false if there is none.
func (h *SessionHistory) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == len(h.entries)-1 {
		return false
	}
	h.current++
	return true
}

// Len returns the number of entries.
func (h *SessionHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
