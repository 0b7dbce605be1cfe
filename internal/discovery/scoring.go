package discovery

import (
	"fmt"
	"strconv"
	"strings"

	"pathwise/internal/catalog"
)

// Scoring constants. Categories are independent and additive; rules inside a
// category are mutually exclusive. The raw total can leave [0,100] at the
// tails, the final score never does.
const (
	baseScore = 100

	partialBudgetPenalty  = 25
	budgetMismatchPenalty = 50
	loanPenalty           = 5
	criticalGPAPenalty    = 40
	lowGPAPenalty         = 15
	highGPABonus          = 5
	mastersBonus          = 5
	highROIBonus          = 10
	visaRiskPenalty       = 30
	visaPolicyBonus       = 10
	freeTuitionBonus      = 20
	techShortageBonus     = 15
	businessHubBonus      = 5
	policyAlertPenalty    = 10
	policyWinBonus        = 10
)

// GPA thresholds.
const (
	criticalGPA = 6.0
	lowGPA      = 7.0
	highGPA     = 8.5
)

// roiRatioThreshold gates the High ROI bonus.
const roiRatioThreshold = 3.0

var techKeywords = []string{"cs", "computer", "data", "cyber", "it", "tech", "ai", "software"}

var businessKeywords = []string{"mba", "business", "management", "finance", "marketing", "startup", "entrepreneurship"}

// businessHubs is the fixed set of countries the business-major bonus applies to.
var businessHubs = map[string]bool{
	"USA":     true,
	"UK":      true,
	"Germany": true,
}

// Engine turns a (profile, country) pair into a ScoreResult. It is a pure
// function over its inputs; no branch errors on malformed-but-type-valid
// input, unknown enum values simply skip their adjustment.
type Engine struct {
	structuredPolicy bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStructuredPolicySignal switches the policy-trend rule from the legacy
// free-text substring scan to the typed policy_alerts severities. The legacy
// scan is the compatibility default; see the catalog's TrendAlert field.
func WithStructuredPolicySignal(enabled bool) EngineOption {
	return func(e *Engine) { e.structuredPolicy = enabled }
}

// NewEngine builds a scoring engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score applies the rule table in fixed category order: financial viability,
// funding source, academic standing, degree level, priority goal, field
// demand, policy trend. Each rule that fires appends one reasoning entry;
// informational zero-point notes count as fired rules.
func (e *Engine) Score(p Profile, c catalog.Country) ScoreResult {
	p = p.withDefaults()

	score := baseScore
	var reasoning []string
	log := func(format string, args ...any) {
		reasoning = append(reasoning, fmt.Sprintf(format, args...))
	}

	// Financial viability: mutually exclusive on budget vs cost.
	switch {
	case p.BudgetMaxLakhs >= c.TotalCost:
		log("Budget fits (cost %sL vs budget %sL)", lakhs(c.TotalCost), lakhs(p.BudgetMaxLakhs))
	case p.BudgetMaxLakhs >= c.Costs.Tuition:
		score -= partialBudgetPenalty
		log("Partial budget. Living costs need financing. (-%d pts)", partialBudgetPenalty)
	default:
		score -= budgetMismatchPenalty
		log("Budget mismatch. Short by %sL. (-%d pts)", lakhs(c.TotalCost-p.BudgetMaxLakhs), budgetMismatchPenalty)
	}

	// Funding source.
	if p.FundingSource == FundingEducationLoan {
		score -= loanPenalty
		log("Loan dependency increases financial pressure. (-%d pts)", loanPenalty)
	}

	// Academic standing: mutually exclusive on GPA.
	switch {
	case p.GPA < criticalGPA:
		score -= criticalGPAPenalty
		log("Critical GPA (%s). Admission highly unlikely. (-%d pts)", lakhs(p.GPA), criticalGPAPenalty)
	case p.GPA < lowGPA:
		score -= lowGPAPenalty
		log("Low GPA (%s). Limited university options. (-%d pts)", lakhs(p.GPA), lowGPAPenalty)
	case p.GPA >= highGPA:
		score += highGPABonus
		log("High GPA. Scholarship eligibility increased. (+%d pts)", highGPABonus)
	}

	// Degree level, independent of the GPA band.
	if p.CurrentDegree == DegreeMasters {
		score += mastersBonus
		log("Masters applicants often yield higher ROI. (+%d pts)", mastersBonus)
	}

	// Priority goal: unrecognized values fall through with no adjustment.
	switch p.PriorityGoal {
	case PriorityHighROI:
		denom := c.TotalCost
		if denom < 1 {
			denom = 1
		}
		if ratio := c.AvgSalary / denom; ratio > roiRatioThreshold {
			score += highROIBonus
			log("Excellent ROI (%.1fx). (+%d pts)", ratio, highROIBonus)
		}
	case PriorityImmigration:
		if c.VisaRisk == catalog.VisaRiskHigh {
			score -= visaRiskPenalty
			log("High visa risk. (-%d pts)", visaRiskPenalty)
		} else {
			score += visaPolicyBonus
			log("Good visa policy. (+%d pts)", visaPolicyBonus)
		}
	case PriorityLowCost:
		if c.Costs.Tuition == 0 {
			score += freeTuitionBonus
			log("Free tuition. (+%d pts)", freeTuitionBonus)
		}
	}

	// Field-of-study demand match.
	major := strings.ToLower(p.MajorInterest)
	isTech := containsAny(major, techKeywords)
	isBusiness := containsAny(major, businessKeywords)
	switch {
	case isTech && c.TechShortage:
		score += techShortageBonus
		log("Skill shortage list match (tech). (+%d pts)", techShortageBonus)
	case isBusiness && businessHubs[c.Name]:
		score += businessHubBonus
		log("Business hub with strong industry. (+%d pts)", businessHubBonus)
	case !isTech && !isBusiness:
		log("Major %q not on critical shortage lists.", p.MajorInterest)
	}

	// Policy trend.
	switch e.policySignal(c) {
	case policyDown:
		score -= policyAlertPenalty
		log("Policy alert: %s (-%d pts)", e.policyText(c, policyDown), policyAlertPenalty)
	case policyUp:
		score += policyWinBonus
		log("Policy win: %s (+%d pts)", e.policyText(c, policyUp), policyWinBonus)
	}

	return ScoreResult{
		Country:         c.Name,
		Flag:            c.Flag,
		Tagline:         c.Tagline,
		Archetype:       c.Archetype,
		MatchScore:      clampScore(score),
		TotalCost:       c.TotalCost,
		FinancialGap:    max(0, c.TotalCost-p.BudgetMaxLakhs),
		PRTimeline:      c.PRTimeline,
		PRRiskColor:     c.PRRiskColor,
		PRSuccessRate:   c.PRSuccessRate,
		TimelineSteps:   c.TimelineSteps,
		PRBranches:      c.PRBranches,
		PolicyAlerts:    c.PolicyAlerts,
		BreakEvenMonths: c.BreakEvenMonths,
		InsiderInsight:  c.InsiderInsight,
		ROIVerdict:      c.ROIVerdict,
		Reasoning:       reasoning,
	}
}

type policyDirection int

const (
	policyNone policyDirection = iota
	policyDown
	policyUp
)

// policySignal decides the policy-trend adjustment. The legacy path scans the
// free-text trend line for fixed substrings; the structured path reads the
// typed alert severities, negative winning over positive.
func (e *Engine) policySignal(c catalog.Country) policyDirection {
	if e.structuredPolicy {
		for _, a := range c.PolicyAlerts {
			if a.Type == catalog.AlertNegative {
				return policyDown
			}
		}
		for _, a := range c.PolicyAlerts {
			if a.Type == catalog.AlertPositive {
				return policyUp
			}
		}
		return policyNone
	}

	if strings.Contains(c.TrendAlert, "Cap") || strings.Contains(c.TrendAlert, "Restrictions") {
		return policyDown
	}
	if strings.Contains(c.TrendAlert, "Chancenkarte") {
		return policyUp
	}
	return policyNone
}

// policyText picks the message body for a fired policy rule.
func (e *Engine) policyText(c catalog.Country, dir policyDirection) string {
	if !e.structuredPolicy {
		return c.TrendAlert
	}
	want := catalog.AlertNegative
	if dir == policyUp {
		want = catalog.AlertPositive
	}
	for _, a := range c.PolicyAlerts {
		if a.Type == want {
			return a.Text
		}
	}
	return c.TrendAlert
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// lakhs formats a lakh amount (or a GPA) without trailing zeros, so reasoning
// text is deterministic: 13.5 -> "13.5", 60 -> "60".
func lakhs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
