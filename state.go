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
	"strconv"
	"sync"
)

// Store holds the observable UI state: a name and a counter. Each field is the
// single source of truth for its display element; every write immediately
// projects the new value into the display element, if it currently exists.
type Store struct {
	mu      sync.Mutex
	doc     Document
	name    string
	counter int
}

// NewStore returns a new store with an empty name and a zero counter,
// projecting into the specified document.
func NewStore(doc Document) *Store {
	return &Store{doc: doc}
}

// Name returns the last written name.
func (s *Store) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// SetName stores the name and shows it in the name display element, or the
// Placeholder if the name is empty.
func (s *Store) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.showName()
}

// Counter returns the last written counter value.
func (s *Store) Counter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// SetCounter stores the counter value and shows it in the counter display
// element.
func (s *Store) SetCounter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter = n
	s.showCounter()
}

// Increment adds one to the counter.
func (s *Store) Increment() { s.add(1) }

// Decrement subtracts one from the counter.
func (s *Store) Decrement() { s.add(-1) }

func (s *Store) add(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter += delta
	s.showCounter()
}

// Refresh projects both fields into their display elements again, as needed
// after the content region got new markup.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showName()
	s.showCounter()
}

func (s *Store) showName() {
	text := s.name
	if text == "" {
		text = Placeholder
	}
	s.doc.SetText(NameOutputID, text)
}

func (s *Store) showCounter() {
	s.doc.SetText(CounterOutputID, strconv.Itoa(s.counter))
}
