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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("navigation queue", func() {

	It("runs navigations in enqueue order", func(ctx context.Context) {
		qctx, cancel := context.WithCancel(ctx)
		defer cancel()
		q := NewNavigationQueue(qctx, 16, nil)

		gate := make(chan struct{})
		order := make(chan string, 16)
		Expect(q.Enqueue(func(context.Context) error {
			<-gate
			order <- "/contador"
			return nil
		})).To(BeTrue())
		for _, p := range []string{"/info", "/home", "/"} {
			p := p
			Expect(q.Enqueue(func(context.Context) error {
				order <- p
				return nil
			})).To(BeTrue())
		}
		close(gate)
		for _, expected := range []string{"/contador", "/info", "/home", "/"} {
			Eventually(order).Within(time.Second).Should(Receive(Equal(expected)))
		}
	})

	It("keeps content and location in click order", func(ctx context.Context) {
		qctx, cancel := context.WithCancel(ctx)
		defer cancel()
		doc := newFakeDoc(ContentID)
		history := NewSessionHistory("/")
		router := NewRouter(DefaultRouteTable(), newFakeFetcher(), doc, history)
		q := NewNavigationQueue(qctx, 16, nil)

		finished := make(chan struct{})
		for _, p := range []string{"/contador", "/info", "/home", "/contador", "/info"} {
			p := p
			Expect(q.Enqueue(func(ctx context.Context) error { return router.Navigate(ctx, p) })).To(BeTrue())
		}
		Expect(q.Enqueue(func(context.Context) error { close(finished); return nil })).To(BeTrue())
		Eventually(finished).Within(time.Second).Should(BeClosed())
		Expect(history.Location()).To(Equal("/info"))
		Expect(doc.elements[ContentID]).To(Equal("<p>info</p>"))
		Expect(history.Len()).To(Equal(6))
	})

	It("logs failed navigations and carries on", func(ctx context.Context) {
		qctx, cancel := context.WithCancel(ctx)
		defer cancel()
		var buf bytes.Buffer
		q := NewNavigationQueue(qctx, 4, slog.New(slog.NewJSONHandler(&buf, nil)))
		finished := make(chan struct{})
		Expect(q.Enqueue(func(context.Context) error { return errors.New("no network") })).To(BeTrue())
		Expect(q.Enqueue(func(context.Context) error { close(finished); return nil })).To(BeTrue())
		Eventually(finished).Within(time.Second).Should(BeClosed())
		Expect(buf.String()).To(ContainSubstring("no network"))
	})

	It("drops navigations when full", func(ctx context.Context) {
		qctx, cancel := context.WithCancel(ctx)
		defer cancel()
		gate := make(chan struct{})
		defer close(gate)
		q := NewNavigationQueue(qctx, 1, nil)
		started := make(chan struct{})
		Expect(q.Enqueue(func(context.Context) error { close(started); <-gate; return nil })).To(BeTrue())
		Eventually(started).Within(time.Second).Should(BeClosed())
		Expect(q.Enqueue(func(context.Context) error { return nil })).To(BeTrue())
		Expect(q.Enqueue(func(context.Context) error { return nil })).To(BeFalse())
	})

	It("stops with its context", func(ctx context.Context) {
		qctx, cancel := context.WithCancel(ctx)
		q := NewNavigationQueue(qctx, 1, nil)
		cancel()
		Eventually(q.Done()).Within(time.Second).Should(BeClosed())
		Expect(q.Enqueue(func(context.Context) error { return nil })).To(BeFalse())
	})

})
