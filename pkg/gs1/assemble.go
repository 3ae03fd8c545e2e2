package gs1

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// GroupSeparator is ASCII GS, the separator barcode encoders expect.
	GroupSeparator = "\x1d"
	// TextSeparator is the printable stand-in for GroupSeparator.
	TextSeparator = "<GS>"
)

// Element is one application identifier and its data. AI may be a numeric code
// or a known alias such as "gtin" or "lot". An empty Value means the field is
// absent and the element is skipped.
type Element struct {
	AI    string `json:"ai" yaml:"ai"`
	Value string `json:"value" yaml:"value"`
}

// AssembleOption configures Assemble and Parse.
type AssembleOption func(*assembleConfig)

type assembleConfig struct {
	separator string
	bare      bool
	logger    *slog.Logger
}

// WithSeparator sets the group separator. Empty separators are ignored.
func WithSeparator(sep string) AssembleOption {
	return func(c *assembleConfig) {
		if sep != "" {
			c.separator = sep
		}
	}
}

// WithoutParentheses renders AIs without the surrounding parentheses, which is
// the data form barcode encoders take. Parse ignores it.
func WithoutParentheses() AssembleOption {
	return func(c *assembleConfig) {
		c.bare = true
	}
}

// WithLogger logs every dropped element at warn level.
func WithLogger(l *slog.Logger) AssembleOption {
	return func(c *assembleConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func newAssembleConfig(opts []AssembleOption) *assembleConfig {
	cfg := &assembleConfig{separator: GroupSeparator}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Assemble renders elements as a GS1-128 element string "(ai)value(ai)value...".
// A separator follows every variable-length element except the last one kept.
// Elements with unknown non-numeric keys are dropped and reported as warnings.
func Assemble(elements []Element, opts ...AssembleOption) (string, []*UnknownIdentifierWarning) {
	cfg := newAssembleConfig(opts)

	var warnings []*UnknownIdentifierWarning
	kept := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e.Value == "" {
			continue
		}
		ai, ok := ResolveAI(e.AI)
		if !ok {
			w := &UnknownIdentifierWarning{Key: e.AI, Value: e.Value}
			warnings = append(warnings, w)
			if cfg.logger != nil {
				cfg.logger.Warn("skipping element", slog.String("key", e.AI), slog.String("reason", w.Error()))
			}
			continue
		}
		kept = append(kept, Element{AI: ai, Value: e.Value})
	}

	var b strings.Builder
	for i, e := range kept {
		if cfg.bare {
			b.WriteString(e.AI)
		} else {
			b.WriteString("(" + e.AI + ")")
		}
		b.WriteString(e.Value)
		if i < len(kept)-1 && IsSeparated(e.AI) {
			b.WriteString(cfg.separator)
		}
	}

	return b.String(), warnings
}

// Parse splits an element string produced by Assemble back into elements.
// Separators are accepted anywhere between elements.
//
// A value ends where the next "(" followed by two to four digits and ")"
// begins, so values may contain other parentheses, e.g. "(21)AB(C)". A value
// that itself contains such a token, like "(21)X(10)Y", cannot be told apart
// from two elements and is split.
func Parse(s string, opts ...AssembleOption) ([]Element, error) {
	cfg := newAssembleConfig(opts)
	s = strings.ReplaceAll(s, cfg.separator, "")
	if s == "" {
		return nil, nil
	}

	var elements []Element
	for s != "" {
		if s[0] != '(' {
			return nil, fmt.Errorf("%w: expected '(' at %q", ErrMalformedElementString, s)
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: unclosed application identifier in %q", ErrMalformedElementString, s)
		}
		ai := s[1:end]
		if len(ai) < 2 || len(ai) > 4 || !isDigits(ai) {
			return nil, fmt.Errorf("%w: bad application identifier %q", ErrMalformedElementString, ai)
		}

		s = s[end+1:]
		next := nextAI(s)
		if next == 0 {
			return nil, fmt.Errorf("%w: empty value for (%s)", ErrMalformedElementString, ai)
		}
		elements = append(elements, Element{AI: ai, Value: s[:next]})
		s = s[next:]
	}

	return elements, nil
}

// nextAI returns the index of the next "(nn)" to "(nnnn)" token in s, or len(s).
func nextAI(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '(' {
			continue
		}
		end := strings.IndexByte(s[i:], ')')
		if end < 0 {
			break
		}
		if ai := s[i+1 : i+end]; len(ai) >= 2 && len(ai) <= 4 && isDigits(ai) {
			return i
		}
	}
	return len(s)
}
