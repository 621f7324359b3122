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

/*
Package browser binds a spashell.Shell to the DOM, the session history and the
event loop of the browser it runs in. It is only available when compiling for
GOOS=js GOARCH=wasm.

Bind attaches a single click listener and a single input listener to the
document body, plus a popstate listener to the window. These listeners stay
in place for the lifetime of the page and dispatch on the event target's id
and attributes, so the content region can be replaced at will.
*/
package browser
