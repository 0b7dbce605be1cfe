// Package narrative maps evaluation aggregates to canned consultant prose.
// Wording lives here and nowhere else; the discovery core supplies the
// numbers and never decides text.
package narrative

import (
	"fmt"
	"strconv"

	"pathwise/internal/discovery"
)

// Budget bands in lakhs.
const (
	tightBudgetLakhs    = 20
	balancedBudgetLakhs = 35
)

// Generator produces the deterministic consultant note. It doubles as the
// fallback whenever the AI advisor is disabled or unavailable.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Note selects the empathy message for the evaluation. The no-eligible case
// gets its own text: there is no top-ranked option to talk about.
func (g *Generator) Note(budget, gpa float64, meta discovery.Meta) string {
	if meta.TotalOptions == 0 {
		return fmt.Sprintf(
			"With a GPA of %s, none of our destinations clear their admission bar right now. A bridging semester or a retake can reopen every one of these doors.",
			formatNumber(gpa),
		)
	}

	switch {
	case budget < tightBudgetLakhs:
		return fmt.Sprintf(
			"We know %sL is tight. The USA is risky, but these safe bets let you study debt-free.",
			formatNumber(budget),
		)
	case budget <= balancedBudgetLakhs:
		return "You have good options. You can choose between safety (Germany) or speed (Ireland)."
	default:
		return "Strong budget! You can afford the moonshot (USA), but check the visa risk first."
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
