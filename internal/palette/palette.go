// Package palette derives small sets of related colors from a base color.
//
// Generation is a pure function of the base color and the chosen policy: the
// base is converted to HSL once, every rule is applied to that HSL value, and
// each result is encoded back to hex independently.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
)

// ErrUnknownPolicy is returned when a policy name does not match a known policy.
var ErrUnknownPolicy = errors.New("unknown palette policy")

// Entry is one color of a palette together with its semantic role.
type Entry struct {
	Hex  string `json:"hex" yaml:"hex"`
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}

// Palette is an ordered list of entries. The first entry is always the base color.
type Palette []Entry

// Hexes returns the hex codes in palette order.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, entry := range p {
		out[i] = entry.Hex
	}
	return out
}

// Find returns the first entry whose role matches, ignoring case.
func (p Palette) Find(role string) (Entry, bool) {
	for _, entry := range p {
		if strings.EqualFold(entry.Role, role) {
			return entry, true
		}
	}
	return Entry{}, false
}

// Base returns the base entry.
func (p Palette) Base() Entry {
	if len(p) == 0 {
		return Entry{}
	}
	return p[0]
}

// Generate builds the harmonious palette for base: the base color followed by
// its complementary, two analogous and one triadic neighbour. Saturation and
// lightness are kept from the base.
//
// Malformed input is not rejected: the base entry echoes the canonicalized
// input and every derived entry decodes from black.
func Generate(base string) Palette {
	return build(harmoniousRules, base)
}

// GenerateWith builds the palette for base using the named policy.
func GenerateWith(policy Policy, base string) (Palette, error) {
	rules, ok := policyRules[policy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
	}
	return build(rules, base), nil
}

func build(rules []Rule, base string) Palette {
	hsl := colorspace.HexToHSL(base)

	out := make(Palette, 0, len(rules)+1)
	out = append(out, Entry{Hex: colorspace.Canonical(base), Name: "Base Color", Role: "Base"})
	for _, rule := range rules {
		out = append(out, Entry{
			Hex:  colorspace.HSLToHex(rule.apply(hsl)),
			Name: rule.Name,
			Role: rule.Role,
		})
	}
	return out
}
