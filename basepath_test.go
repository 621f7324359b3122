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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("base paths", func() {

	DescribeTable("derives the base path from base URIs",
		func(baseURI string, expected string) {
			Expect(BasePath(baseURI)).To(Equal(expected))
		},
		Entry("root", "http://foo.bar:12345/", "/"),
		Entry("no path", "http://foo.bar:12345", "/"),
		Entry("prefix", "http://foo.bar:12345/spa/", "/spa/"),
		Entry("nested prefix", "http://foo.bar/a/spa/", "/a/spa/"),
		Entry("document name", "http://foo.bar/spa/index.html", "/spa/"),
		Entry("document at root", "http://foo.bar/index.html", "/"),
		Entry("path only", "/spa/", "/spa/"),
		Entry("relative", "spa/", "/"),
		Entry("unparsable", "http://[::1", "/"),
	)

	DescribeTable("strips the base path",
		func(base, location string, expected string) {
			Expect(StripBase(base, location)).To(Equal(expected))
		},
		Entry("root base", "/", "/contador", "/contador"),
		Entry("prefixed route", "/spa/", "/spa/contador", "/contador"),
		Entry("prefix with slash", "/spa/", "/spa/", "/"),
		Entry("prefix without slash", "/spa/", "/spa", "/"),
		Entry("outside base", "/spa/", "/other/info", "/other/info"),
		Entry("similar prefix", "/spa/", "/spam", "/spam"),
	)

	DescribeTable("joins the base path",
		func(base, logical string, expected string) {
			Expect(JoinBase(base, logical)).To(Equal(expected))
			Expect(StripBase(base, JoinBase(base, logical))).To(Equal(logical))
		},
		Entry("root base", "/", "/info", "/info"),
		Entry("prefixed route", "/spa/", "/info", "/spa/info"),
		Entry("prefixed root", "/spa/", "/", "/spa/"),
	)

	It("records logical paths below the base", func() {
		locations := NewSessionHistory("/spa/contador")
		h := NewBasedHistory(locations, "/spa/")
		Expect(h.Base()).To(Equal("/spa/"))
		Expect(h.Location()).To(Equal("/contador"))
		h.Push("/info")
		Expect(locations.Location()).To(Equal("/spa/info"))
		Expect(h.Location()).To(Equal("/info"))
		h.Replace("/")
		Expect(locations.Location()).To(Equal("/spa/"))
		Expect(h.Location()).To(Equal("/"))
	})

})
