// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command webwin opens a native webview window and bridges it to standard
// streams: host commands are read from stdin as JSON lines, window events
// are written to stdout as JSON lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.hybscloud.com/webwin"
	"code.hybscloud.com/webwin/headless"
	"code.hybscloud.com/webwin/internal/config"
	"code.hybscloud.com/webwin/internal/logger"
	"code.hybscloud.com/webwin/webview"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at link time with -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of webwin",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "webwin version %s\n", Version)
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a window and bridge it to stdin and stdout",
	Long: `Open a window and bridge it to stdin and stdout.

Commands are read from stdin, one JSON object per line:
  {"op":"replace_html","html":"<p>hi</p>"}
  {"op":"title","title":"New title"}
  {"op":"eval","js":"document.body.style.background='red'"}
  {"op":"alert","enabled":true}
  {"op":"size"}
  {"op":"close"}

Events are written to stdout, one JSON object per line, until the window
has closed.`,
	SilenceUsage: true,
	RunE:         runOpen,
}

var rootCmd = &cobra.Command{
	Use:   "webwin",
	Short: "Native webview windows driven over standard streams",
}

func init() {
	rootCmd.AddCommand(versionCmd, openCmd)
	f := openCmd.Flags()
	f.StringP("conf", "c", "", "path to configuration file")
	f.String("title", "", "window title")
	f.String("html", "", "path to a file holding the initial document body")
	f.Float64("width", 0, "window width in logical pixels")
	f.Float64("height", 0, "window height in logical pixels")
	f.String("platform", "", "native platform (headless or webview)")
	f.String("join", "", "join policy (wait or detached)")
	f.String("metrics-addr", "", "listen address of the Prometheus exporter")
	f.Duration("poll", 16*time.Millisecond, "event poll interval")
}

func runOpen(cmd *cobra.Command, _ []string) error {
	conf, _ := cmd.Flags().GetString("conf")
	cfg, err := config.Load(conf)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	wcfg, err := cfg.WindowConfig()
	if err != nil {
		return err
	}

	lg, err := logger.New(&cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	p, err := platform(cfg.Platform)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m := webwin.NewMetrics(reg, cfg.Metrics.Namespace)
	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics, reg, lg)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	w, err := webwin.Create(wcfg,
		webwin.WithPlatform(p),
		webwin.WithLogger(lg),
		webwin.WithMetrics(m))
	if err != nil {
		return err
	}
	lg.Info("window opened",
		zap.Uint32("window", w.Serial()),
		zap.String("platform", p.Name()),
		zap.Stringer("join", wcfg.JoinPolicy))

	poll, _ := cmd.Flags().GetDuration("poll")
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	h := newHost(w, cmd.InOrStdin(), cmd.OutOrStdout(), lg)
	return h.run(ctx, poll)
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("title") {
		cfg.Window.Title, _ = f.GetString("title")
	}
	if f.Changed("html") {
		path, _ := f.GetString("html")
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cfg.Window.HTML = string(body)
	}
	if f.Changed("width") {
		cfg.Window.Size.Width, _ = f.GetFloat64("width")
	}
	if f.Changed("height") {
		cfg.Window.Size.Height, _ = f.GetFloat64("height")
	}
	if f.Changed("platform") {
		cfg.Platform, _ = f.GetString("platform")
	}
	if f.Changed("join") {
		cfg.Join, _ = f.GetString("join")
	}
	if f.Changed("metrics-addr") {
		cfg.Metrics.Addr, _ = f.GetString("metrics-addr")
	}
	return nil
}

func platform(name string) (webwin.Platform, error) {
	switch name {
	case config.PlatformHeadless:
		return headless.New(), nil
	case config.PlatformWebview:
		return webview.New(), nil
	}
	return nil, fmt.Errorf("%w: unknown platform %q", webwin.ErrUnsupported, name)
}

func serveMetrics(cfg config.MetricsConfig, reg *prometheus.Registry, lg *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("metrics exporter stopped", zap.String("addr", cfg.Addr), zap.Error(err))
		}
	}()
	lg.Info("metrics exporter listening", zap.String("addr", cfg.Addr), zap.String("path", cfg.Path))
	return srv
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := 0
	webwin.Main(func() {
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			code = 1
		}
	})
	stop()
	os.Exit(code)
}
