package handler

import "pathwise/internal/discovery"

// RecommendResponse is the HTTP response for POST /api/recommend.
type RecommendResponse struct {
	Status         string               `json:"status"`
	Strategies     discovery.Strategies `json:"strategies"`
	Meta           discovery.Meta       `json:"meta"`
	ConsultantNote string               `json:"consultant_note"`
}

// FromResult converts a discovery result to an HTTP response.
func FromResult(result *discovery.Result) *RecommendResponse {
	return &RecommendResponse{
		Status:         "success",
		Strategies:     result.Strategies,
		Meta:           result.Meta,
		ConsultantNote: result.ConsultantNote,
	}
}
