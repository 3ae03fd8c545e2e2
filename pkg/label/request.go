package label

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
	"github.com/dmitrymomot/gs1kit/pkg/validator"
)

// maxCount is the largest value AI (37) can carry (eight digits).
const maxCount = 99999999

// Request holds the raw values collected for one logistics label.
// Zero values mean "not printed".
type Request struct {
	// SSCC identifies the logistic unit. Leave empty and set GenerateSSCC to draw a new one.
	SSCC         string `json:"sscc" yaml:"sscc"`
	GenerateSSCC bool   `json:"generate_sscc" yaml:"generate_sscc"`

	// GTIN of the unit itself (AI 01) or of the trade items it contains (AI 02).
	// GTIN-8, -12 and -13 are padded to 14 digits.
	GTIN    string `json:"gtin" yaml:"gtin"`
	Content string `json:"content" yaml:"content"`
	Count   int    `json:"count" yaml:"count"`

	Lot            string    `json:"lot" yaml:"lot"`
	ProductionDate time.Time `json:"production_date" yaml:"production_date"`
	BestBefore     time.Time `json:"best_before" yaml:"best_before"`
	Expiry         time.Time `json:"expiry" yaml:"expiry"`

	NetWeightKg    float64 `json:"net_weight_kg" yaml:"net_weight_kg"`
	WeightDecimals int     `json:"weight_decimals" yaml:"weight_decimals"`

	// Extra elements are appended after the standard fields, e.g. {AI: "400", Value: "PO123"}.
	Extra []gs1.Element `json:"extra" yaml:"extra"`
}

// requestFile is the decoded form of a Request. Dates are kept as text so
// that JSON and quoted YAML accept the same layouts as gs1.ParseDate.
type requestFile struct {
	SSCC           string        `json:"sscc" yaml:"sscc"`
	GenerateSSCC   bool          `json:"generate_sscc" yaml:"generate_sscc"`
	GTIN           string        `json:"gtin" yaml:"gtin"`
	Content        string        `json:"content" yaml:"content"`
	Count          int           `json:"count" yaml:"count"`
	Lot            string        `json:"lot" yaml:"lot"`
	ProductionDate string        `json:"production_date" yaml:"production_date"`
	BestBefore     string        `json:"best_before" yaml:"best_before"`
	Expiry         string        `json:"expiry" yaml:"expiry"`
	NetWeightKg    float64       `json:"net_weight_kg" yaml:"net_weight_kg"`
	WeightDecimals int           `json:"weight_decimals" yaml:"weight_decimals"`
	Extra          []gs1.Element `json:"extra" yaml:"extra"`
}

// UnmarshalJSON decodes a request, accepting dates such as "2025-12-31".
func (r *Request) UnmarshalJSON(data []byte) error {
	var f requestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	return r.fromFile(f)
}

// UnmarshalYAML decodes a request, accepting quoted and unquoted dates.
func (r *Request) UnmarshalYAML(node *yaml.Node) error {
	var f requestFile
	if err := node.Decode(&f); err != nil {
		return err
	}
	return r.fromFile(f)
}

func (r *Request) fromFile(f requestFile) error {
	dates := []struct {
		field string
		text  string
		dst   *time.Time
	}{
		{"production_date", f.ProductionDate, &r.ProductionDate},
		{"best_before", f.BestBefore, &r.BestBefore},
		{"expiry", f.Expiry, &r.Expiry},
	}

	*r = Request{
		SSCC:           f.SSCC,
		GenerateSSCC:   f.GenerateSSCC,
		GTIN:           f.GTIN,
		Content:        f.Content,
		Count:          f.Count,
		Lot:            f.Lot,
		NetWeightKg:    f.NetWeightKg,
		WeightDecimals: f.WeightDecimals,
		Extra:          f.Extra,
	}
	for _, d := range dates {
		t, err := gs1.ParseDate(d.text)
		if err != nil {
			return fmt.Errorf("%s: %w", d.field, err)
		}
		*d.dst = t
	}
	return nil
}

// hasWeight reports whether a net weight is given. NaN counts as missing.
func (r Request) hasWeight() bool {
	return r.NetWeightKg != 0 && !math.IsNaN(r.NetWeightKg)
}

// Validate reports every problem with the request as validator.ValidationErrors.
func (r Request) Validate() error {
	rules := []validator.Rule{
		validator.Required("sscc", r.SSCC).When(!r.GenerateSSCC),
		validator.ValidSSCC("sscc", r.SSCC).When(r.SSCC != ""),
		validator.ValidGTIN("gtin", r.GTIN).When(r.GTIN != ""),
		validator.ValidGTIN("content", r.Content).When(r.Content != ""),
		exclusive("content", r.GTIN != "" && r.Content != ""),
		countRule(r),
		validator.ValidLotNumber("lot", r.Lot).When(r.Lot != ""),
		decimalsRule(r.WeightDecimals),
		validator.ValidMeasure("net_weight_kg", r.NetWeightKg, r.WeightDecimals).When(r.hasWeight()),
		validator.DateNotBefore("best_before", r.BestBefore, r.ProductionDate),
		validator.DateNotBefore("expiry", r.Expiry, r.ProductionDate),
	}
	return validator.Apply(append(rules, extraRules(r.Extra)...)...)
}

// extraRules checks the values of extra elements whose AI has a known format.
// Unknown keys are left to the assembler, which drops them with a warning.
func extraRules(extra []gs1.Element) []validator.Rule {
	var rules []validator.Rule
	for i, e := range extra {
		if e.Value == "" {
			continue
		}
		ai, ok := gs1.ResolveAI(e.AI)
		if !ok {
			continue
		}
		field := fmt.Sprintf("extra.%d", i)
		switch ai {
		case gs1.AIProductionDate, gs1.AIDueDate, gs1.AIPackagingDate, gs1.AIBestBefore, gs1.AIExpiry:
			rules = append(rules, validator.ValidGS1Date(field, e.Value))
		case gs1.AIBatchLot:
			rules = append(rules, validator.ValidLotNumber(field, e.Value))
		case gs1.AISSCC:
			rules = append(rules, validator.ValidSSCC(field, e.Value))
		}
	}
	return rules
}

func exclusive(field string, conflict bool) validator.Rule {
	return validator.Rule{
		Check: func() bool { return !conflict },
		Error: validator.ValidationError{
			Field:          field,
			Message:        "GTIN of the unit and GTIN of contained items cannot both be set",
			TranslationKey: "validation.gtin_content_exclusive",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// countRule requires AI (37) to accompany AI (02) and to fit eight digits.
func countRule(r Request) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			if r.Count == 0 {
				return true
			}
			return r.Content != "" && r.Count > 0 && r.Count <= maxCount
		},
		Error: validator.ValidationError{
			Field:          "count",
			Message:        "count must be 1-99999999 and requires the GTIN of contained items",
			TranslationKey: "validation.count",
			TranslationValues: map[string]any{
				"field": "count",
				"max":   maxCount,
			},
		},
	}
}

func decimalsRule(decimals int) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return decimals >= 0 && decimals <= gs1.MaxDecimalPlaces
		},
		Error: validator.ValidationError{
			Field:          "weight_decimals",
			Message:        "must be between 0 and 6",
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": "weight_decimals",
				"min":   0,
				"max":   gs1.MaxDecimalPlaces,
			},
		},
	}
}
