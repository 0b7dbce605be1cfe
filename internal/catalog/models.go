package catalog

// Archetype is the fixed risk/speed classification of a destination country.
// It is a property of the country itself and never depends on the applicant.
type Archetype string

const (
	ArchetypeSafeBet   Archetype = "safe_bets"
	ArchetypeFastTrack Archetype = "fast_track"
	ArchetypeMoonshot  Archetype = "moonshots"
)

// VisaRisk grades how uncertain the post-study immigration path is.
type VisaRisk string

const (
	VisaRiskLow    VisaRisk = "Low"
	VisaRiskMedium VisaRisk = "Medium"
	VisaRiskHigh   VisaRisk = "High"
)

// RiskColor is the display colour for PR risk indicators.
type RiskColor string

const (
	RiskColorGreen  RiskColor = "green"
	RiskColorYellow RiskColor = "yellow"
	RiskColorRed    RiskColor = "red"
)

// AlertType classifies a policy alert for display and, behind the structured
// policy option, for scoring.
type AlertType string

const (
	AlertPositive AlertType = "positive"
	AlertNegative AlertType = "negative"
	AlertNeutral  AlertType = "neutral"
)

// Costs is the per-country cost breakdown in lakhs.
type Costs struct {
	Tuition   float64 `json:"tuition"`
	Living    float64 `json:"living"`
	VisaFees  float64 `json:"visa_fees"`
	Insurance float64 `json:"insurance"`
}

// Sum returns the total of the cost breakdown.
func (c Costs) Sum() float64 {
	return c.Tuition + c.Living + c.VisaFees + c.Insurance
}

// PRBranch is a named immigration pathway with its own timeline and
// historical success rate.
type PRBranch struct {
	Path     string    `json:"path"`
	Timeline string    `json:"timeline"`
	Success  string    `json:"success"`
	Color    RiskColor `json:"color"`
}

// PolicyAlert is a structured policy signal for a country.
type PolicyAlert struct {
	Type AlertType `json:"type"`
	Text string    `json:"text"`
}

// Deadline is one actionable task for a given intake term.
type Deadline struct {
	Task string `json:"task"`
	Date string `json:"date"`
}

// Country is one static catalog entry. Records are shared read-only by all
// requests; nothing mutates a Country after Load.
type Country struct {
	Name      string    `json:"name"`
	Flag      string    `json:"flag"`
	Archetype Archetype `json:"archetype"`
	Tagline   string    `json:"tagline"`

	Costs Costs `json:"costs"`
	// TotalCost is declared, not derived; Load rejects a catalog where it
	// disagrees with the breakdown sum.
	TotalCost float64 `json:"total_cost"`

	MinGPA          float64 `json:"min_gpa"`
	AvgSalary       float64 `json:"avg_salary_post_grad"`
	BreakEvenMonths int     `json:"break_even_months"`

	VisaRisk      VisaRisk  `json:"visa_risk"`
	PRTimeline    string    `json:"pr_timeline"`
	PRRiskColor   RiskColor `json:"pr_risk_color"`
	PRSuccessRate float64   `json:"pr_success_rate"`

	TimelineSteps   []string              `json:"timeline_steps"`
	PRBranches      []PRBranch            `json:"pr_branches"`
	PolicyAlerts    []PolicyAlert         `json:"policy_alerts"`
	ActionDeadlines map[string][]Deadline `json:"action_deadlines"`

	InsiderInsight string `json:"insider_insight"`
	ROIVerdict     string `json:"roi_verdict"`

	// TrendAlert is the free-text policy trend line the scoring engine scans
	// for fixed substrings. PolicyAlerts carries the structured equivalent.
	TrendAlert string `json:"trend_alert"`

	TechShortage bool `json:"tech_shortage"`
}
