// Command dmdctl plays a drawing script on a dot-matrix display controller.
//
// Usage:
//
//	dmdctl -script sign.yaml [-config dmdctl.yaml] [-dry-run]
//
// Scripts are YAML or TOML lists of steps:
//
//	repeat: -1
//	steps:
//	  - op: configure
//	    width: 1
//	    height: 1
//	  - op: fill
//	    colour: off
//	  - op: text
//	    text: OPEN
//	    pad: true
//	    delay: 2s
//
// With -dry-run no bus is opened and every frame is printed instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/dmd"
)

var (
	configPath = flag.String("config", "", "Config file (YAML/TOML/JSON)")
	scriptPath = flag.String("script", "", "Drawing script (.yaml, .yml or .toml)")
	dryRun     = flag.Bool("dry-run", false, "Print frames instead of writing them")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dmdctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *scriptPath == "" {
		return errors.New("-script is required")
	}
	cfg, err := Load(*configPath)
	if err != nil {
		return err
	}
	if *dryRun {
		cfg.DryRun = true
	}

	log, err := InitLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	sc, err := LoadScript(*scriptPath)
	if err != nil {
		return err
	}
	profile, err := dmd.ProfileByName(cfg.Profile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var bus i2c.Bus
	var rec *i2ctest.Record
	if cfg.DryRun {
		rec = &i2ctest.Record{}
		bus = rec
		if sc.Repeat != 0 {
			log.Warn("dry run plays the script once", zap.Int("repeat", sc.Repeat))
			sc.Repeat = 0
		}
	} else {
		b, err := openBus(cfg.Bus)
		if err != nil {
			return err
		}
		defer b.Close()
		bus = b
	}

	link, err := dmd.NewLink(bus, profile, &dmd.Opts{Addr: cfg.Addr, MaxColour: dmd.Color(cfg.MaxColour)})
	if err != nil {
		return err
	}

	var metrics *Metrics
	if cfg.Metrics.Addr != "" {
		reg := NewRegistry()
		metrics = NewMetrics(reg)
		srv := serveMetrics(cfg.Metrics, reg, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	log.Info("playing script",
		zap.String("script", *scriptPath),
		zap.Stringer("link", link),
		zap.Int("steps", len(sc.Steps)),
		zap.Int("repeat", sc.Repeat))

	err = NewRunner(link, cfg.Pacing, log, metrics).Run(ctx, sc)
	if rec != nil {
		for _, op := range rec.Ops {
			fmt.Printf("0x%02X %v\n", op.Addr, dmd.Frame(op.W))
		}
	}
	if errors.Is(err, context.Canceled) {
		log.Info("stopped")
		return nil
	}
	return err
}

func openBus(cfg BusConfig) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph.io: %w", err)
	}
	b, err := i2creg.Open(cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("open I2C bus: %w", err)
	}
	if cfg.SpeedHz > 0 {
		if err := b.SetSpeed(physic.Frequency(cfg.SpeedHz) * physic.Hertz); err != nil {
			b.Close()
			return nil, fmt.Errorf("set I2C speed: %w", err)
		}
	}
	return b, nil
}

func serveMetrics(cfg MetricsConfig, reg *prometheus.Registry, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, MetricsHandler(reg))
	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", cfg.Addr), zap.String("path", cfg.Path))
	return srv
}
