//go:build js && wasm

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

package browser

import (
	"context"
	"log/slog"
	"syscall/js"

	"github.com/thediveo/spashell"
)

// navigationBacklog is the number of pending navigations; more clicks while
// the queue is full are dropped.
const navigationBacklog = 32

// Bind attaches the delegated listeners dispatching to the shell, starts the
// shell, and returns a function removing the listeners again.
//
// Listener callbacks must not block the event loop, so the initial load and
// all later navigations are queued to a single worker running them in order.
func Bind(ctx context.Context, shell *spashell.Shell, log *slog.Logger) (release func()) {
	ctx, cancel := context.WithCancel(ctx)
	queue := spashell.NewNavigationQueue(ctx, navigationBacklog, log)
	queue.Enqueue(shell.Start)

	click := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		target := wrap(ev.Get("target"))
		if href, ok := spashell.LinkTarget(target); ok {
			ev.Call("preventDefault")
			queue.Enqueue(func(ctx context.Context) error { return shell.Router.Navigate(ctx, href) })
			return nil
		}
		if handled, _ := shell.HandleClick(ctx, target); handled {
			ev.Call("preventDefault")
		}
		return nil
	})
	input := js.FuncOf(func(this js.Value, args []js.Value) any {
		target := args[0].Get("target")
		shell.HandleInput(wrap(target), target.Get("value").String())
		return nil
	})
	popstate := js.FuncOf(func(this js.Value, args []js.Value) any {
		path := shell.History.Location()
		queue.Enqueue(func(ctx context.Context) error { return shell.HandlePopState(ctx, path) })
		return nil
	})

	body := js.Global().Get("document").Get("body")
	body.Call("addEventListener", "click", click)
	body.Call("addEventListener", "input", input)
	js.Global().Call("addEventListener", "popstate", popstate)

	return func() {
		cancel()
		body.Call("removeEventListener", "click", click)
		body.Call("removeEventListener", "input", input)
		js.Global().Call("removeEventListener", "popstate", popstate)
		click.Release()
		input.Release()
		popstate.Release()
	}
}
