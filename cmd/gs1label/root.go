package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gs1kit/pkg/config"
)

// app carries what every subcommand needs.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:   "gs1label",
		Short: "GS1 identifiers and element strings for logistics labels",
		Long: `Computes check digits, validates GTIN/SSCC/lot values, generates SSCCs,
formats GS1 dates and measures, and assembles Application Identifier
element strings for GS1-128 and for QR codes carrying GS1 element data.

Defaults come from the environment (GS1_COMPANY_PREFIX, GS1_EXTENSION_DIGIT,
GS1_SEPARATOR, GS1_QR_SIZE, LOG_LEVEL, LOG_FORMAT) or a .env file.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		a.checkDigitCmd(),
		a.validateCmd(),
		a.ssccCmd(),
		a.dateCmd(),
		a.weightCmd(),
		a.assembleCmd(),
		a.parseCmd(),
		a.qrCmd(),
		a.labelCmd(),
	)
	return root
}
