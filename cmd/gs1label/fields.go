package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <date>",
		Short: "Format a date as GS1 YYMMDD",
		Long: `Formats a date such as 2024-03-05, 2024-03-05T10:00:00Z or 05.03.2024
as the six-digit YYMMDD used by date AIs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := gs1.FormatDateString(args[0])
			if d == "" {
				return fmt.Errorf("%w: unparseable date %q", errInvalidValue, args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
}

func (a *app) weightCmd() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "weight <value>",
		Short: "Format a measure as a six-digit GS1 field",
		Long: `Scales the value by 10^decimals, rounds it and pads it to six digits.
The matching net weight AI (310n) is printed before the field.

Example:
  gs1label weight 12.5 --decimals 3   # (3103)012500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ai, err := gs1.MeasureAI(gs1.AINetWeightKgBase, decimals)
			if err != nil {
				return err
			}
			field, err := gs1.FormatWeightString(args[0], decimals)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "(%s)%s\n", ai, field)
			return err
		},
	}
	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "implied decimal places (0-6)")
	return cmd
}
