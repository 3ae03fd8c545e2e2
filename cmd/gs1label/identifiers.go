package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

var errInvalidValue = errors.New("invalid value")

func (a *app) checkDigitCmd() *cobra.Command {
	var appendDigit bool

	cmd := &cobra.Command{
		Use:   "check-digit <digits>",
		Short: "Compute the GS1 Mod-10 check digit",
		Long: `Computes the check digit for a string of data digits.

Example:
  gs1label check-digit 0001234567890          # 5
  gs1label check-digit --append 10614141123456789`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appendDigit {
				full, err := gs1.AppendCheckDigit(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), full)
				return err
			}
			cd, err := gs1.CheckDigit(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cd)
			return err
		},
	}
	cmd.Flags().BoolVar(&appendDigit, "append", false, "print the digits followed by their check digit")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	validators := map[string]func(string) bool{
		"gtin":   gs1.ValidGTIN,
		"sscc":   gs1.ValidSSCC,
		"lot":    gs1.ValidLotNumber,
		"prefix": gs1.ValidCompanyPrefix,
	}

	return &cobra.Command{
		Use:       "validate <gtin|sscc|lot|prefix> <value>",
		Short:     "Validate a GS1 identifier",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"gtin", "sscc", "lot", "prefix"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, value := args[0], args[1]
			valid, ok := validators[kind]
			if !ok {
				return fmt.Errorf("unknown identifier kind %q", kind)
			}
			if !valid(value) {
				a.log.Debug("validation failed", slog.String("kind", kind), slog.String("value", value))
				return fmt.Errorf("%w: %s %q", errInvalidValue, kind, value)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
}

func (a *app) ssccCmd() *cobra.Command {
	var (
		prefix    string
		extension int
		count     int
	)

	cmd := &cobra.Command{
		Use:   "sscc",
		Short: "Generate Serial Shipping Container Codes",
		Long: `Generates checksum-valid 18-digit SSCCs. Without flags the company prefix
and extension digit come from GS1_COMPANY_PREFIX and GS1_EXTENSION_DIGIT,
and are drawn at random when those are unset.

Example:
  gs1label sscc --prefix 0614141 --extension 1 --count 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.SSCCOptions()
			if prefix != "" {
				opts = append(opts, gs1.WithCompanyPrefix(prefix))
			}
			if cmd.Flags().Changed("extension") {
				opts = append(opts, gs1.WithExtensionDigit(extension))
			}

			for range max(count, 1) {
				sscc, err := gs1.GenerateSSCC(opts...)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), sscc); err != nil {
					return err
				}
			}
			a.log.Debug("generated sscc", slog.Int("count", max(count, 1)))
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "GS1 company prefix")
	cmd.Flags().IntVar(&extension, "extension", 0, "extension digit (0-9)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of codes to generate")
	return cmd
}
