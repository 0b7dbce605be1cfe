package handler

import "pathwise/internal/catalog"

// CountrySummary is the list view of a destination: enough for a comparison
// table without the full record payload.
type CountrySummary struct {
	Name       string            `json:"name"`
	Flag       string            `json:"flag"`
	Archetype  catalog.Archetype `json:"archetype"`
	Tagline    string            `json:"tagline"`
	Costs      catalog.Costs     `json:"costs"`
	TotalCost  float64           `json:"total_cost"`
	MinGPA     float64           `json:"min_gpa"`
	VisaRisk   catalog.VisaRisk  `json:"visa_risk"`
	PRTimeline string            `json:"pr_timeline"`
}

// SummaryFromCountry projects a full record into its list view.
func SummaryFromCountry(c catalog.Country) CountrySummary {
	return CountrySummary{
		Name:       c.Name,
		Flag:       c.Flag,
		Archetype:  c.Archetype,
		Tagline:    c.Tagline,
		Costs:      c.Costs,
		TotalCost:  c.TotalCost,
		MinGPA:     c.MinGPA,
		VisaRisk:   c.VisaRisk,
		PRTimeline: c.PRTimeline,
	}
}

// ListResponse is the HTTP response for GET /api/countries.
type ListResponse struct {
	Status    string           `json:"status"`
	Countries []CountrySummary `json:"countries"`
}

// GetResponse is the HTTP response for GET /api/countries/{name}.
type GetResponse struct {
	Status  string          `json:"status"`
	Country catalog.Country `json:"country"`
}