package brewing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/feybrew/cauldron/internal/domain"
)

// VarKind is the closed set of template variable forms. Parsed once during
// extraction so fill never re-interprets raw strings.
type VarKind int

const (
	// VarPotency is an {n}, {n*K} or {n+K} placeholder.
	VarPotency VarKind = iota
	// VarFreeText is a named {variable} choice with open input.
	VarFreeText
	// VarEnumChoice is a named {variable:opt1|opt2|...} choice with a closed
	// option set.
	VarEnumChoice
)

// TemplateVar is one variable declared by an effect-description template.
type TemplateVar struct {
	Name    string   `json:"name"`
	Kind    VarKind  `json:"kind"`
	Options []string `json:"options,omitempty"`
}

var (
	spanPattern    = regexp.MustCompile(`\{([^{}]+)\}`)
	potencyPattern = regexp.MustCompile(`^n(?:([*+])(\d+))?$`)
)

// ExtractChoices scans a template for {...} spans and returns the choices it
// declares, in order of appearance. Potency forms ({n}, {n*K}, {n+K}) are
// placeholders, not choices, and are excluded. A span with a ':' declares an
// enumerated option set split on '|'; without one it is free text.
func ExtractChoices(template string) []TemplateVar {
	var vars []TemplateVar
	for _, match := range spanPattern.FindAllStringSubmatch(template, -1) {
		body := match[1]
		if potencyPattern.MatchString(body) {
			continue
		}

		name, optsRaw, enumerated := strings.Cut(body, ":")
		if !enumerated {
			vars = append(vars, TemplateVar{Name: name, Kind: VarFreeText})
			continue
		}
		vars = append(vars, TemplateVar{
			Name:    name,
			Kind:    VarEnumChoice,
			Options: strings.Split(optsRaw, "|"),
		})
	}
	return vars
}

// DeclaredChoices collects the choices of every effect's template in effect
// order, deduplicated by variable name. The first declaration wins when
// multiple recipes declare the same name.
func DeclaredChoices(effects []domain.PairedEffect) []TemplateVar {
	var vars []TemplateVar
	seen := make(map[string]bool)

	for _, effect := range effects {
		for _, v := range ExtractChoices(effect.Recipe.Template) {
			if seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			vars = append(vars, v)
		}
	}
	return vars
}

// UnresolvedChoices returns the declared choice names missing from choices.
// The commit path rejects an attempt while any remain.
func UnresolvedChoices(effects []domain.PairedEffect, choices map[string]string) []string {
	var missing []string
	for _, v := range DeclaredChoices(effects) {
		if _, ok := choices[v.Name]; !ok {
			missing = append(missing, v.Name)
		}
	}
	return missing
}

// FillTemplate substitutes every variable span in template. Potency forms
// compute from potency; named spans substitute the resolved choice by
// variable name. A span with no resolved choice is left untouched, which
// only happens on a caller bug since commit requires all choices resolved.
func FillTemplate(template string, potency int, choices map[string]string) string {
	return spanPattern.ReplaceAllStringFunc(template, func(span string) string {
		body := span[1 : len(span)-1]

		if m := potencyPattern.FindStringSubmatch(body); m != nil {
			if m[1] == "" {
				return strconv.Itoa(potency)
			}
			k, err := strconv.Atoi(m[2])
			if err != nil {
				// K overflows int; leave the malformed span visible rather
				// than folding it to zero
				return span
			}
			if m[1] == "*" {
				return strconv.Itoa(potency * k)
			}
			return strconv.Itoa(potency + k)
		}

		name, _, _ := strings.Cut(body, ":")
		if value, ok := choices[name]; ok {
			return value
		}
		return span
	})
}

// BuildDescription fills every effect's template and joins the results with
// a single space, in effect order. An effect with no template falls back to
// its recipe name, marked with potency when greater than one.
func BuildDescription(effects []domain.PairedEffect, choices map[string]string) string {
	parts := make([]string, 0, len(effects))
	for _, effect := range effects {
		if effect.Recipe.Template == "" {
			name := effect.Recipe.Name
			if effect.Potency > 1 {
				name = fmt.Sprintf(PotencyMarkerFormat, name, effect.Potency)
			}
			parts = append(parts, name)
			continue
		}
		parts = append(parts, FillTemplate(effect.Recipe.Template, effect.Potency, choices))
	}
	return strings.Join(parts, " ")
}

// ExpandEffectNames repeats each effect name per unit of potency, preserving
// effect order. This is the flat list the filled description derives from
// and the shape the artifact ledger stores.
func ExpandEffectNames(effects []domain.PairedEffect) []string {
	var names []string
	for _, effect := range effects {
		for i := 0; i < effect.Potency; i++ {
			names = append(names, effect.Recipe.Name)
		}
	}
	return names
}
