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

package serve

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

func parse(args ...string) Config {
	GinkgoHelper()
	return Successful(ParseConfig(flag.NewFlagSet("spashell", flag.ContinueOnError), args))
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var _ = Describe("server command", func() {

	It("has defaults", func() {
		cfg := parse()
		Expect(cfg.HTTPAddr).To(Equal("localhost:8080"))
		Expect(cfg.AssetsDir).To(BeEmpty())
		Expect(cfg.Index).To(Equal("index.html"))
		Expect(cfg.RoutesFile).To(BeEmpty())
		Expect(cfg.Prerender).To(BeTrue())
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.ShutdownTimeout).To(Equal(5 * time.Second))
	})

	It("takes defaults from the environment", func() {
		setenv("SPASHELL_HTTP_ADDR", "127.0.0.1:9000")
		setenv("SPASHELL_PRERENDER", "false")
		setenv("SPASHELL_SHUTDOWN_TIMEOUT", "1s")
		cfg := parse()
		Expect(cfg.HTTPAddr).To(Equal("127.0.0.1:9000"))
		Expect(cfg.Prerender).To(BeFalse())
		Expect(cfg.ShutdownTimeout).To(Equal(time.Second))
	})

	It("lets flags override the environment", func() {
		setenv("SPASHELL_HTTP_ADDR", "127.0.0.1:9000")
		cfg := parse("-http-addr", "127.0.0.1:9001", "-prerender=false", "-assets-dir", "../../../test")
		Expect(cfg.HTTPAddr).To(Equal("127.0.0.1:9001"))
		Expect(cfg.Prerender).To(BeFalse())
		Expect(cfg.AssetsDir).To(Equal("../../../test"))
	})

	It("rejects malformed environment values", func() {
		setenv("SPASHELL_PRERENDER", "maybe")
		Expect(ParseConfig(flag.NewFlagSet("spashell", flag.ContinueOnError), nil)).Error().To(HaveOccurred())
	})

	It("rejects unknown flags", func() {
		fs := flag.NewFlagSet("spashell", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		Expect(ParseConfig(fs, []string{"-bonkers"})).Error().To(HaveOccurred())
	})

	It("loads route tables", func() {
		Expect(parse().Routes()).NotTo(BeNil())
		routes := Successful(parse("-routes", "../../../test/routes.toml").Routes())
		Expect(routes.DefaultPath()).To(Equal("/info"))
		Expect(parse("-routes", "/nonexisting.toml").Routes()).Error().To(HaveOccurred())
	})

	It("serves embedded assets", func() {
		cfg := parse()
		_, err := cfg.Assets().Open("contador.html")
		Expect(err).NotTo(HaveOccurred())
	})

	It("fails on broken route tables when prerendering", func() {
		Expect(NewHandler(parse("-routes", "../../../test/index.html"), discard)).Error().To(HaveOccurred())
	})

	It("serves prerendered shell documents until cancelled", func(ctx context.Context) {
		lis := Successful(net.Listen("tcp", "127.0.0.1:0"))
		addr := lis.Addr().String()
		Expect(lis.Close()).To(Succeed())

		cfg := parse("-http-addr", addr, "-assets-dir", "../../../test")
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			done <- Run(runCtx, cfg, discard)
		}()

		var resp *http.Response
		Eventually(func() error {
			var err error
			resp, err = http.Get("http://" + addr + "/contador")
			return err
		}).Within(5 * time.Second).ProbeEvery(50 * time.Millisecond).Should(Succeed())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		doc := Successful(goquery.NewDocumentFromReader(resp.Body))
		Expect(doc.Find("#content #contadorOutput").Text()).To(Equal("0"))

		cancel()
		Eventually(done).Within(5 * time.Second).Should(Receive(BeNil()))
	})

	It("fails when it cannot listen", func() {
		cfg := parse("-http-addr", "256.0.0.1:0")
		Expect(Run(context.Background(), cfg, discard)).NotTo(Succeed())
	})

})
