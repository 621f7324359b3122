/*
Package spashell implements a minimal client-side single page application
shell: it intercepts in-page navigation clicks, fetches the markup fragment
mapped to a logical path, injects it into the content region, and keeps a name
field and a counter synchronized with their display elements.

The shell core doesn't depend on any particular DOM implementation. A Document
gives it write access to the elements it manages, a Fetcher retrieves
fragments, and a History records navigations. The headless package provides a
goquery-based DOM for running the shell inside ordinary Go programs and tests,
while the browser package binds the shell to a real browser DOM when compiled
for GOOS=js GOARCH=wasm.

The SPAHandler type implements http.Handler to serve the shell document and its
fragments from any fs.FS, falling back to the shell document for client-side
routes so that bookmarking and reloading work.
*/
package spashell
