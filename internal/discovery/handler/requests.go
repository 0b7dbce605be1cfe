package handler

import (
	"strings"

	"pathwise/internal/discovery"
	dErrors "pathwise/pkg/domain-errors"
)

// RecommendRequest is the HTTP request body for POST /api/recommend. Field
// names follow the public API; the core uses its own profile type.
type RecommendRequest struct {
	Degree        string  `json:"degree"`
	GPA           float64 `json:"gpa"`
	Major         string  `json:"major"`
	Budget        float64 `json:"budget"`
	Priority      string  `json:"priority"`
	FundingSource string  `json:"funding_source"`
	TargetIntake  string  `json:"target_intake"`
}

// Validate checks types and ranges only. Unrecognized priority or funding
// values are deliberately let through: the core treats them as no-ops.
func (r *RecommendRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Degree = strings.TrimSpace(r.Degree)
	if r.Degree == "" {
		return dErrors.New(dErrors.CodeValidation, "degree is required")
	}

	r.Major = strings.TrimSpace(r.Major)
	if r.Major == "" {
		return dErrors.New(dErrors.CodeValidation, "major is required")
	}

	if r.GPA < 0 || r.GPA > 10 {
		return dErrors.New(dErrors.CodeValidation, "gpa must be between 0 and 10")
	}
	if r.Budget < 0 {
		return dErrors.New(dErrors.CodeValidation, "budget must not be negative")
	}

	r.Priority = strings.TrimSpace(r.Priority)
	r.FundingSource = strings.TrimSpace(r.FundingSource)
	r.TargetIntake = strings.TrimSpace(r.TargetIntake)
	return nil
}

// Profile converts the validated request into the core's profile type.
func (r *RecommendRequest) Profile() discovery.Profile {
	return discovery.Profile{
		CurrentDegree:  r.Degree,
		GPA:            r.GPA,
		MajorInterest:  r.Major,
		BudgetMaxLakhs: r.Budget,
		PriorityGoal:   r.Priority,
		FundingSource:  r.FundingSource,
		TargetIntake:   r.TargetIntake,
	}
}
