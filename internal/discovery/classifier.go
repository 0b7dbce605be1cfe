package discovery

import (
	"fmt"
	"math"

	"pathwise/internal/catalog"
)

// Financial-health bands on the budget gap, in lakhs.
const manageableGapLakhs = 10

// salaryHorizonYears is the fixed comparison horizon for the ROI percentage:
// two years of post-graduate salary against the total cost.
const salaryHorizonYears = 2

// Classifier drives the eligibility gate and scoring engine across the whole
// catalog, attaches derived financial fields, and buckets results by the
// country's fixed archetype.
type Classifier struct {
	engine *Engine
}

// NewClassifier builds a classifier around the given scoring engine.
func NewClassifier(engine *Engine) *Classifier {
	return &Classifier{engine: engine}
}

// Classify evaluates every eligible country and returns the three archetype
// buckets, unranked. Countries failing the GPA gate are absent entirely.
func (c *Classifier) Classify(p Profile, cat *catalog.Catalog) Strategies {
	p = p.withDefaults()

	var out Strategies
	for _, country := range cat.All() {
		if !Eligible(p, country) {
			continue
		}

		result := c.engine.Score(p, country)
		enrich(&result, p, country)

		switch country.Archetype {
		case catalog.ArchetypeSafeBet:
			out.SafeBets = append(out.SafeBets, result)
		case catalog.ArchetypeFastTrack:
			out.FastTrack = append(out.FastTrack, result)
		case catalog.ArchetypeMoonshot:
			out.Moonshots = append(out.Moonshots, result)
		}
	}
	return out
}

// enrich fills the classifier-derived fields on a scored result.
func enrich(r *ScoreResult, p Profile, c catalog.Country) {
	gap := r.FinancialGap
	switch {
	case gap <= 0:
		// A covered budget does not remove lottery-style immigration risk,
		// so moonshots read "Budget OK" rather than "Fully Covered".
		if c.Archetype == catalog.ArchetypeMoonshot {
			r.FinancialStatus = "Budget OK"
		} else {
			r.FinancialStatus = "Fully Covered"
		}
		r.FinancialHealth = "excellent"
	case gap <= manageableGapLakhs:
		r.FinancialStatus = fmt.Sprintf("Need %sL more", lakhs(gap))
		r.FinancialHealth = "manageable"
	default:
		r.FinancialStatus = fmt.Sprintf("Need %sL more", lakhs(gap))
		r.FinancialHealth = "stretch"
	}

	r.ROIPercentage = roundToOneDecimal((c.AvgSalary*salaryHorizonYears - c.TotalCost) / c.TotalCost * 100)

	// Unknown intake terms yield an empty deadline list, never an error.
	deadlines := c.ActionDeadlines[p.TargetIntake]
	r.Deadlines = make([]catalog.Deadline, len(deadlines))
	copy(r.Deadlines, deadlines)
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
