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

package headless

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("page", func() {

	const markup = `<html><body>
<main id="content"><p>old</p></main>
<a id="link" href="/info" data-link><span id="label">Info</span></a>
</body></html>`

	It("sets text and markup of existing elements only", func() {
		p := Successful(ParsePage(markup))
		Expect(p.SetInnerHTML("content", `<span id="out">?</span>`)).To(BeTrue())
		Expect(p.SetText("out", "<b>42</b>")).To(BeTrue())
		text, ok := p.Text("out")
		Expect(ok).To(BeTrue())
		Expect(text).To(Equal("<b>42</b>"))
		Expect(p.InnerHTML("content")).To(Equal(`<span id="out">&lt;b&gt;42&lt;/b&gt;</span>`))

		Expect(p.SetText("missing", "x")).To(BeFalse())
		Expect(p.SetInnerHTML("missing", "x")).To(BeFalse())
		_, ok = p.Text("missing")
		Expect(ok).To(BeFalse())
	})

	It("exposes event targets with their ancestry", func() {
		p := Successful(ParsePage(markup))
		el := Element(p.Find("#label"))
		Expect(el).NotTo(BeNil())
		Expect(el.ID()).To(Equal("label"))
		_, marked := el.Attr("data-link")
		Expect(marked).To(BeFalse())

		parent := el.Parent()
		Expect(parent.ID()).To(Equal("link"))
		href, ok := parent.Attr("href")
		Expect(ok).To(BeTrue())
		Expect(href).To(Equal("/info"))

		top := parent
		for top.Parent() != nil {
			top = top.Parent()
		}
		Expect(top.ID()).To(BeEmpty())

		Expect(Element(p.Find("#missing"))).To(BeNil())
	})

	It("renders the whole document", func() {
		p := Successful(ParsePage(markup))
		Expect(p.HTML()).To(ContainSubstring(`<main id="content">`))
	})

})
