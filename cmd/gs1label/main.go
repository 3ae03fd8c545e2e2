// Command gs1label computes, validates and assembles GS1 identifiers for
// logistics labels.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/gs1kit/pkg/config"
	"github.com/dmitrymomot/gs1kit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger(logger.WithAttr(slog.String("service", "gs1label")))

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}
