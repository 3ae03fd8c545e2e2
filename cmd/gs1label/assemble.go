package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gs1kit/pkg/config"
	"github.com/dmitrymomot/gs1kit/pkg/gs1"
	"github.com/dmitrymomot/gs1kit/pkg/label"
	"github.com/dmitrymomot/gs1kit/pkg/qrcode"
)

// readElements collects elements from ai=value arguments followed by an optional
// YAML or JSON file holding a list of {ai, value} objects.
func readElements(args []string, file string) ([]gs1.Element, error) {
	var elements []gs1.Element
	for _, arg := range args {
		ai, value, ok := strings.Cut(arg, "=")
		if !ok || ai == "" {
			return nil, fmt.Errorf("%w: expected ai=value, got %q", errInvalidValue, arg)
		}
		elements = append(elements, gs1.Element{AI: ai, Value: value})
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read elements: %w", err)
		}
		var fromFile []gs1.Element
		if err := decode(file, data, &fromFile); err != nil {
			return nil, fmt.Errorf("parse elements %s: %w", file, err)
		}
		elements = append(elements, fromFile...)
	}

	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: no elements given", errInvalidValue)
	}
	return elements, nil
}

// decode unmarshals data as JSON when name has a .json extension and as YAML otherwise.
func decode(name string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func (a *app) separator(name string) (string, error) {
	switch name {
	case "":
		return a.cfg.SeparatorValue(), nil
	case config.SeparatorGS:
		return gs1.GroupSeparator, nil
	case config.SeparatorText:
		return gs1.TextSeparator, nil
	default:
		return "", fmt.Errorf("%w: separator must be %q or %q", errInvalidValue, config.SeparatorGS, config.SeparatorText)
	}
}

func (a *app) assembleCmd() *cobra.Command {
	var (
		file      string
		separator string
		bare      bool
	)

	cmd := &cobra.Command{
		Use:   "assemble [ai=value ...]",
		Short: "Assemble a GS1-128 element string",
		Long: `Assembles Application Identifier/value pairs into one element string,
inserting a group separator after variable-length AIs except at the end.
Keys may be numeric AIs or names such as gtin, lot, expiry, serial.

Example:
  gs1label assemble 01=00012345678905 lot=LOT42 11=240305 --separator text
  gs1label assemble --file elements.yaml --bare`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := readElements(args, file)
			if err != nil {
				return err
			}
			sep, err := a.separator(separator)
			if err != nil {
				return err
			}

			opts := []gs1.AssembleOption{gs1.WithSeparator(sep), gs1.WithLogger(a.log)}
			if bare {
				opts = append(opts, gs1.WithoutParentheses())
			}
			s, _ := gs1.Assemble(elements, opts...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with a list of {ai, value}")
	cmd.Flags().StringVar(&separator, "separator", "", "gs or text (default from GS1_SEPARATOR)")
	cmd.Flags().BoolVar(&bare, "bare", false, "omit parentheses around AIs")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "parse <element-string>",
		Short: "Split an element string into AI/value pairs (YAML output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := a.separator(separator)
			if err != nil {
				return err
			}
			elements, err := gs1.Parse(args[0], gs1.WithSeparator(sep))
			if err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(elements)
		},
	}
	cmd.Flags().StringVar(&separator, "separator", "", "gs or text (default from GS1_SEPARATOR)")
	return cmd
}

func (a *app) qrCmd() *cobra.Command {
	var (
		file    string
		out     string
		size    int
		dataURI bool
	)

	cmd := &cobra.Command{
		Use:   "qr [ai=value ...]",
		Short: "Render elements as a QR code",
		Long: `Assembles the elements into barcode data and writes a PNG QR code,
or prints it as a data URI with --data-uri.

Example:
  gs1label qr 00=106141411234567897 lot=LOT42 --out label.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := readElements(args, file)
			if err != nil {
				return err
			}
			if size <= 0 {
				size = a.cfg.QRSize
			}

			if dataURI {
				data, _ := gs1.Assemble(elements, gs1.WithoutParentheses(), gs1.WithLogger(a.log))
				uri, err := qrcode.GenerateBase64Image(data, size)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), uri)
				return err
			}

			if out == "" {
				return fmt.Errorf("%w: --out or --data-uri is required", errInvalidValue)
			}
			png, warnings, err := qrcode.GenerateElements(elements, size)
			for _, w := range warnings {
				a.log.Warn("skipping element", slog.String("key", w.Key), slog.String("reason", w.Error()))
			}
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.Info("qr code written", slog.String("path", out), slog.Int("size", size), slog.Int("warnings", len(warnings)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with a list of {ai, value}")
	cmd.Flags().StringVarP(&out, "out", "o", "", "PNG output path")
	cmd.Flags().IntVar(&size, "size", 0, "image size in pixels (default from GS1_QR_SIZE)")
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "print a data URI instead of writing a file")
	return cmd
}

func (a *app) labelCmd() *cobra.Command {
	var (
		file      string
		lang      string
		qrOut     string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "label --file request.yaml",
		Short: "Build a logistics label from a request file",
		Long: `Validates a label request (YAML or JSON), generates the SSCC when
generate_sscc is set, and prints the element string followed by the
human-readable lines.

Request fields: sscc, generate_sscc, gtin, content, count, lot,
production_date, best_before, expiry, net_weight_kg, weight_decimals, extra.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			var req label.Request
			if err := decode(file, data, &req); err != nil {
				return fmt.Errorf("parse request %s: %w", file, err)
			}
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("%w: language %q", errInvalidValue, lang)
			}
			sep, err := a.separator(separator)
			if err != nil {
				return err
			}

			l, err := label.Build(req,
				label.WithLanguage(tag),
				label.WithSeparator(sep),
				label.WithSSCCOptions(a.cfg.SSCCOptions()...),
				label.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(w, l.ElementString); err != nil {
				return err
			}
			for _, line := range l.HumanReadable {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}

			if qrOut != "" {
				png, err := qrcode.Generate(l.BarcodeData, a.cfg.QRSize)
				if err != nil {
					return err
				}
				if err := os.WriteFile(qrOut, png, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", qrOut, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "label request file")
	cmd.Flags().StringVar(&lang, "lang", "en", "language for human-readable numbers")
	cmd.Flags().StringVar(&qrOut, "qr", "", "also write a QR code PNG to this path")
	cmd.Flags().StringVar(&separator, "separator", "text", "gs or text")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
