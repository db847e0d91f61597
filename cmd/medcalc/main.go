// Command medcalc computes body mass index, basal metabolic rate and body
// surface area from the command line, a terminal UI or an MCP client.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/medcalc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/medcalc/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/medcalc/internal/adapters/driven/metrics"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/cli"
	"github.com/custodia-labs/medcalc/internal/core/ports/driven"
	"github.com/custodia-labs/medcalc/internal/core/services"
	"github.com/custodia-labs/medcalc/internal/logger"
)

// envConfigDir overrides the config directory when --config-dir is not given.
const envConfigDir = "MEDCALC_CONFIG_DIR"

func main() {
	// A .env file in the working directory may set MEDCALC_CONFIG_DIR.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: reading .env: %v\n", err)
	}

	cli.SetServicesFactory(newServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// newServices wires the core services to their adapters.
// The flag wins over the environment; both fall back to ~/.medcalc.
func newServices(configDir string) (*cli.Services, error) {
	if configDir == "" {
		configDir = os.Getenv(envConfigDir)
	}

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; settings will not be saved\n", err)
		store = memory.NewConfigStore()
	} else {
		logger.Debug("config file %s", fileStore.Path())
		store = fileStore
	}

	recorder := metrics.NewRecorder()

	return &cli.Services{
		Calculator: services.NewCalculatorService(recorder),
		Settings:   services.NewSettingsService(store),
		Config:     store,
		Metrics:    recorder,
	}, nil
}
