// Command tracestep-server runs the HTTP API: submit graphs, run shortest
// path algorithms, and replay the recorded traces step by step.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/tracestep/tracestep/pkg/api"
	"github.com/tracestep/tracestep/pkg/config"
	"github.com/tracestep/tracestep/pkg/logging"
	"github.com/tracestep/tracestep/pkg/metrics"
	"github.com/tracestep/tracestep/pkg/server"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	port := flag.Int("port", 0, "HTTP server port (overrides config, default 8080 or PORT)")
	watch := flag.Bool("watch", false, "Reload config when the file changes")
	flag.Parse()

	logger := logging.Default()

	cfg, loader, err := loadConfig(*configPath, logger)
	if err != nil {
		logger.Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	} else if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			cfg.Port = p
		}
	}
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	apiServer := api.NewServer(api.Options{
		MaxStoredRuns: cfg.MaxStoredRuns,
		Metrics:       metrics.DefaultRegistry(),
		Logger:        logger,
		Version:       version,
	})

	gs := server.NewGracefulServer(
		fmt.Sprintf(":%d", cfg.Port), apiServer.Handler(), logger)

	if loader != nil {
		// SIGHUP and fsnotify both funnel through the loader, so the
		// retention cap follows the file either way.
		loader.OnChange(func(next *config.Server) {
			apiServer.Store().SetCap(next.MaxStoredRuns)
			logger.SetLevel(logging.ParseLevel(next.LogLevel))
		})
		gs.SetReloadFunc(loader.Reload)

		if *watch {
			stop, err := loader.Watch()
			if err != nil {
				logger.Error("failed to watch config", logging.Error(err))
				os.Exit(1)
			}
			defer stop()
		}
	}

	logger.Info("tracestep server starting",
		logging.String("version", version),
		logging.Int("port", cfg.Port),
		logging.Int("max_stored_runs", cfg.MaxStoredRuns),
	)
	if err := gs.Start(); err != nil {
		logger.Error("server failed", logging.Error(err))
		os.Exit(1)
	}
	gs.Shutdown(cfg.ShutdownTimeout())
}

func loadConfig(path string, logger logging.Logger) (*config.Server, *config.Loader, error) {
	if path == "" {
		return config.DefaultServer(), nil, nil
	}
	loader, err := config.NewLoader(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return loader.Config(), loader, nil
}
