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

// Navigation is a queued navigation job.
type Navigation func(ctx context.Context) error

// NavigationQueue runs navigations one after another in the order they were
// enqueued, on a single worker goroutine. Event listeners that must not block
// enqueue navigations instead of starting them directly, so that content and
// location follow the order of user interaction.
type NavigationQueue struct {
	jobs chan Navigation
	done chan struct{}
	log  *slog.Logger
}

// NewNavigationQueue starts a queue holding up to size pending navigations.
// The worker stops when ctx is done.
func NewNavigationQueue(ctx context.Context, size int, log *slog.Logger) *NavigationQueue {
	if log == nil {
		log = slog.Default()
	}
	q := &NavigationQueue{
		jobs: make(chan Navigation, size),
		done: make(chan struct{}),
		log:  log,
	}
	go q.run(ctx)
	return q
}

// Enqueue adds a navigation without blocking. It returns false and drops the
// navigation when the queue is full or stopped.
func (q *NavigationQueue) Enqueue(nav Navigation) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.jobs <- nav:
		return true
	default:
		q.log.Warn("navigation queue full, dropping navigation")
		return false
	}
}

// Done is closed after the worker stopped.
func (q *NavigationQueue) Done() <-chan struct{} {
	return q.done
}

func (q *NavigationQueue) run(ctx context.Context) {
	defer close(q.done)
	for {
		select {
		case <-ctx.Done():
			return
		case nav := <-q.jobs:
			if err := nav(ctx); err != nil {
				q.log.Error("navigation failed", slog.String("err", err.Error()))
			}
		}
	}
}
