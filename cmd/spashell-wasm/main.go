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

// Command spashell-wasm is the WebAssembly client of the SPA shell.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/thediveo/spashell"
	"github.com/thediveo/spashell/browser"
	"github.com/thediveo/spashell/internal/logging"
)

func main() {
	log, _ := logging.New(os.Stdout, "info")
	ctx := context.Background()

	doc := browser.NewDocument()
	fetcher, err := spashell.NewHTTPFetcher(doc.BaseURI(), nil)
	if err != nil {
		log.Error("cannot set up fragment fetching", slog.String("err", err.Error()))
		return
	}
	shell := spashell.New(spashell.DefaultRouteTable(), fetcher, doc, browser.NewHistory(),
		spashell.WithLogger(log))
	browser.Bind(ctx, shell, log)
	select {}
}
