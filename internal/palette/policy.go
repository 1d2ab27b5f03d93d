package palette

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
)

// Policy names a fixed table of generation rules.
type Policy string

const (
	// Harmonious rotates the hue of the base color. It is the default policy.
	Harmonious Policy = "harmonious"
	// Shades keeps hue and saturation and sweeps lightness across fixed levels.
	Shades Policy = "shades"
)

// Rule derives one palette entry from the base HSL value.
// Lightness and Saturation, when set, replace the base value as absolute percentages.
type Rule struct {
	Name       string
	Role       string
	HueDelta   float64
	Saturation *float64
	Lightness  *float64
}

func (r Rule) apply(base colorspace.HSL) colorspace.HSL {
	out := colorspace.HSL{
		H: colorspace.NormalizeHue(base.H + r.HueDelta),
		S: base.S,
		L: base.L,
	}
	if r.Saturation != nil {
		out.S = *r.Saturation
	}
	if r.Lightness != nil {
		out.L = *r.Lightness
	}
	return out
}

func percent(v float64) *float64 {
	return &v
}

var harmoniousRules = []Rule{
	{Name: "Complementary", Role: "Complementary", HueDelta: 180},
	{Name: "Analogous 1", Role: "Analogous 1", HueDelta: 30},
	{Name: "Analogous 2", Role: "Analogous 2", HueDelta: -30},
	{Name: "Triadic", Role: "Triadic", HueDelta: 120},
}

// The 50% midpoint of the ramp is left out so the base keeps the first slot
// and the palette stays at five entries.
var shadeRules = []Rule{
	{Name: "Very Light", Role: "Very Light", Lightness: percent(90)},
	{Name: "Light", Role: "Light", Lightness: percent(70)},
	{Name: "Dark", Role: "Dark", Lightness: percent(30)},
	{Name: "Very Dark", Role: "Very Dark", Lightness: percent(10)},
}

var policyRules = map[Policy][]Rule{
	Harmonious: harmoniousRules,
	Shades:     shadeRules,
}

// Policies lists the known policies, default first.
func Policies() []Policy {
	return []Policy{Harmonious, Shades}
}

// ParsePolicy resolves a policy name. An empty name selects Harmonious.
func ParsePolicy(name string) (Policy, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return Harmonious, nil
	}
	policy := Policy(trimmed)
	if _, ok := policyRules[policy]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return policy, nil
}

// Next returns the policy after p in Policies order, wrapping around.
func (p Policy) Next() Policy {
	all := Policies()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return Harmonious
}

// DisplayName returns the title-cased policy name.
func (p Policy) DisplayName() string {
	return cases.Title(language.English).String(string(p))
}

// Rules returns a deep copy of the rule table behind p. Writes through the
// returned overrides never reach the package tables.
func (p Policy) Rules() []Rule {
	rules := policyRules[p]
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		if r.Saturation != nil {
			out[i].Saturation = percent(*r.Saturation)
		}
		if r.Lightness != nil {
			out[i].Lightness = percent(*r.Lightness)
		}
	}
	return out
}
