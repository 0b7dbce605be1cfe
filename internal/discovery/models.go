package discovery

import "pathwise/internal/catalog"

// Well-known profile values. Anything outside these is a silent no-op for the
// scoring engine, never an error.
const (
	PriorityHighROI     = "High ROI"
	PriorityImmigration = "Immigration"
	PriorityLowCost     = "Low Cost"

	FundingSelf          = "Self"
	FundingEducationLoan = "Education Loan"

	DegreeMasters = "Masters"

	// DefaultIntake selects the deadline list when the profile names none.
	DefaultIntake = "Fall 2026"
)

// Profile is one applicant's submission. It is immutable after construction;
// the transport layer validates types and ranges, the core only normalizes
// defaults.
type Profile struct {
	CurrentDegree  string
	GPA            float64
	MajorInterest  string
	BudgetMaxLakhs float64
	PriorityGoal   string
	FundingSource  string
	TargetIntake   string
}

// withDefaults fills the documented fallbacks for optional fields.
func (p Profile) withDefaults() Profile {
	if p.FundingSource == "" {
		p.FundingSource = FundingSelf
	}
	if p.TargetIntake == "" {
		p.TargetIntake = DefaultIntake
	}
	return p
}

// ScoreResult is the per-(profile, country) evaluation outcome plus the
// display fields the frontend renders. It is computed per request and never
// persisted.
type ScoreResult struct {
	Country   string            `json:"country"`
	Flag      string            `json:"flag"`
	Tagline   string            `json:"tagline"`
	Archetype catalog.Archetype `json:"archetype"`

	MatchScore   int     `json:"match_score"`
	TotalCost    float64 `json:"total_cost"`
	FinancialGap float64 `json:"financial_gap"`

	// Derived by the classifier.
	FinancialStatus string             `json:"financial_status"`
	FinancialHealth string             `json:"financial_health"`
	ROIPercentage   float64            `json:"roi_percentage"`
	Deadlines       []catalog.Deadline `json:"deadlines"`

	PRTimeline    string                `json:"pr_timeline"`
	PRRiskColor   catalog.RiskColor     `json:"pr_risk_color"`
	PRSuccessRate float64               `json:"pr_success_rate"`
	TimelineSteps []string              `json:"timeline_steps"`
	PRBranches    []catalog.PRBranch    `json:"pr_branches"`
	PolicyAlerts  []catalog.PolicyAlert `json:"policy_alerts"`

	BreakEvenMonths int    `json:"break_even_months"`
	InsiderInsight  string `json:"insider_insight"`
	ROIVerdict      string `json:"roi_verdict"`

	// Reasoning holds one entry per rule that fired, in rule-application
	// order. Order is part of the contract; never reorder or deduplicate.
	Reasoning []string `json:"reasoning"`
}

// Strategies buckets scored countries by their fixed archetype.
type Strategies struct {
	SafeBets  []ScoreResult `json:"safe_bets"`
	FastTrack []ScoreResult `json:"fast_track"`
	Moonshots []ScoreResult `json:"moonshots"`
}

// Meta is the aggregate view over the three buckets, consumed by the
// narrative generator.
type Meta struct {
	TotalOptions  int `json:"total_options"`
	SafeCount     int `json:"safe_count"`
	FastCount     int `json:"fast_count"`
	MoonshotCount int `json:"moonshot_count"`
}

// Meta aggregates bucket counts. It is pure bookkeeping over the slices.
func (s Strategies) Meta() Meta {
	return Meta{
		TotalOptions:  len(s.SafeBets) + len(s.FastTrack) + len(s.Moonshots),
		SafeCount:     len(s.SafeBets),
		FastCount:     len(s.FastTrack),
		MoonshotCount: len(s.Moonshots),
	}
}
