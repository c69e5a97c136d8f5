//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"stellate/internal/app"
	"stellate/internal/logging"
	"stellate/internal/metrics"
	"stellate/internal/params"
	"stellate/internal/scene"
	"stellate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("bad flag", "error", err)
		os.Exit(2)
	}
	log := logging.New(level)

	initial := params.DefaultConfig()
	if cfg.Preset != "" {
		initial, err = params.LoadFile(cfg.Preset, initial)
		if err != nil {
			log.Error("load preset", "path", cfg.Preset, "error", err)
			os.Exit(1)
		}
	}

	overlay := ui.NewOverlay()
	opts := []scene.Option{scene.WithLogger(log), scene.WithNotifier(overlay)}

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector := metrics.New(reg)
		opts = append(opts, scene.WithListener(collector), scene.WithRecorder(collector))
		srv = &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler(reg)}
		go func() {
			log.Info("serving metrics", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", "error", err)
			}
		}()
	}

	sc := scene.New(initial, opts...)
	game := app.New(sc, overlay, cfg)

	ebiten.SetWindowTitle("stellate")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)

	runErr := ebiten.RunGame(game)

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("metrics shutdown", "error", err)
		}
		cancel()
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Error("viewer stopped", "error", runErr)
		os.Exit(1)
	}
}
