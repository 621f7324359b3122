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

// Package web embeds the shell document, its fragments and static assets.
//
// The WebAssembly client isn't checked in; build it into static/ before
// building the server:
//
//	go generate ./web
package web

import (
	"embed"
	"io/fs"
)

//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/main.wasm ../cmd/spashell-wasm"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/ || cp \"$(go env GOROOT)/misc/wasm/wasm_exec.js\" static/"

//go:embed *.html static
var files embed.FS

// FS returns the embedded web assets.
func FS() fs.FS { return files }
