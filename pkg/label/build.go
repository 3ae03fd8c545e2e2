package label

import (
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

// Label is the data a renderer needs to print one logistics label.
type Label struct {
	SSCC     string
	Elements []gs1.Element
	// ElementString is the parenthesised form printed under the barcode.
	ElementString string
	// BarcodeData is the bare form with ASCII GS separators handed to symbol encoders.
	BarcodeData   string
	HumanReadable []string
	Warnings      []*gs1.UnknownIdentifierWarning
}

// Option configures Build.
type Option func(*options)

type options struct {
	lang      language.Tag
	separator string
	sscc      []gs1.SSCCOption
	logger    *slog.Logger
}

// WithLanguage localizes numbers in the human-readable lines.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// WithSeparator sets the separator used in ElementString.
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// WithSSCCOptions passes options to gs1.GenerateSSCC when the request asks for a new SSCC.
func WithSSCCOptions(opts ...gs1.SSCCOption) Option {
	return func(o *options) { o.sscc = append(o.sscc, opts...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build validates req and turns it into element strings and human-readable lines.
// Validation failures are returned as validator.ValidationErrors.
func Build(req Request, opts ...Option) (*Label, error) {
	o := &options{lang: language.English, separator: gs1.TextSeparator}
	for _, opt := range opts {
		opt(o)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	sscc := req.SSCC
	if sscc == "" {
		var err error
		if sscc, err = gs1.GenerateSSCC(o.sscc...); err != nil {
			return nil, fmt.Errorf("generate sscc: %w", err)
		}
	}

	fields, err := fieldsFor(req, sscc, message.NewPrinter(o.lang))
	if err != nil {
		return nil, err
	}
	elements := make([]gs1.Element, 0, len(fields))
	for _, f := range fields {
		elements = append(elements, f.Element)
	}

	var assembleOpts []gs1.AssembleOption
	if o.logger != nil {
		assembleOpts = append(assembleOpts, gs1.WithLogger(o.logger))
	}
	elementString, warnings := gs1.Assemble(elements, append(assembleOpts, gs1.WithSeparator(o.separator))...)
	barcodeData, _ := gs1.Assemble(elements, gs1.WithSeparator(gs1.GroupSeparator), gs1.WithoutParentheses())

	kept := make([]gs1.Element, 0, len(fields))
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		ai, ok := gs1.ResolveAI(f.AI)
		if !ok || f.Value == "" {
			continue
		}
		kept = append(kept, gs1.Element{AI: ai, Value: f.Value})
		display := f.display
		if display == "" {
			display = f.Value
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", gs1.Title(ai), ai, display))
	}

	l := &Label{
		SSCC:          sscc,
		Elements:      kept,
		ElementString: elementString,
		BarcodeData:   barcodeData,
		HumanReadable: lines,
		Warnings:      warnings,
	}

	if o.logger != nil {
		o.logger.Debug("label built",
			slog.String("sscc", sscc),
			slog.Int("elements", len(kept)),
			slog.Int("warnings", len(warnings)),
		)
	}
	return l, nil
}

// field is an element plus the text printed for it when that differs from the raw value.
type field struct {
	gs1.Element
	display string
}

// fieldsFor orders fixed-length data first so fewer separators are needed.
func fieldsFor(req Request, sscc string, p *message.Printer) ([]field, error) {
	fields := []field{{Element: gs1.Element{AI: gs1.AISSCC, Value: sscc}}}

	if req.GTIN != "" {
		gtin, err := gs1.NormalizeGTIN(req.GTIN)
		if err != nil {
			return nil, fmt.Errorf("gtin: %w", err)
		}
		fields = append(fields, field{Element: gs1.Element{AI: gs1.AIGTIN, Value: gtin}})
	}
	if req.Content != "" {
		content, err := gs1.NormalizeGTIN(req.Content)
		if err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
		fields = append(fields, field{Element: gs1.Element{AI: gs1.AIContent, Value: content}})
	}

	if req.hasWeight() {
		ai, err := gs1.MeasureAI(gs1.AINetWeightKgBase, req.WeightDecimals)
		if err != nil {
			return nil, fmt.Errorf("net weight: %w", err)
		}
		weight, err := gs1.FormatWeight(req.NetWeightKg, req.WeightDecimals)
		if err != nil {
			return nil, fmt.Errorf("net weight: %w", err)
		}
		fields = append(fields, field{
			Element: gs1.Element{AI: ai, Value: weight},
			display: p.Sprint(number.Decimal(req.NetWeightKg, number.Scale(req.WeightDecimals))),
		})
	}

	fields = append(fields,
		field{Element: gs1.Element{AI: gs1.AIProductionDate, Value: gs1.FormatDate(req.ProductionDate)}},
		field{Element: gs1.Element{AI: gs1.AIBestBefore, Value: gs1.FormatDate(req.BestBefore)}},
		field{Element: gs1.Element{AI: gs1.AIExpiry, Value: gs1.FormatDate(req.Expiry)}},
	)
	if req.Count > 0 {
		fields = append(fields, field{
			Element: gs1.Element{AI: gs1.AICount, Value: strconv.Itoa(req.Count)},
			display: p.Sprint(number.Decimal(req.Count)),
		})
	}
	fields = append(fields, field{Element: gs1.Element{AI: gs1.AIBatchLot, Value: req.Lot}})

	for _, e := range req.Extra {
		fields = append(fields, field{Element: e})
	}
	return fields, nil
}
