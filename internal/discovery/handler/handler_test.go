package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/internal/discovery"
)

type fakeService struct {
	result  *discovery.Result
	err     error
	profile discovery.Profile
	calls   int
}

func (f *fakeService) Discover(ctx context.Context, p discovery.Profile) (*discovery.Result, error) {
	f.calls++
	f.profile = p
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func defaultResult() *discovery.Result {
	return &discovery.Result{
		Strategies: discovery.Strategies{
			SafeBets: []discovery.ScoreResult{{Country: "Germany", MatchScore: 92}},
		},
		Meta:           discovery.Meta{TotalOptions: 1, SafeCount: 1},
		ConsultantNote: "note",
	}
}

func postRecommend(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleRecommend(rec, req)
	return rec
}

func TestHandleRecommendSuccess(t *testing.T) {
	svc := &fakeService{result: defaultResult()}
	h := New(svc, testLogger())

	rec := postRecommend(t, h, `{
		"degree": "Masters",
		"gpa": 8.2,
		"major": "Computer Science",
		"budget": 40,
		"priority": "High ROI"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "note", resp.ConsultantNote)
	assert.Equal(t, 1, resp.Meta.TotalOptions)
	require.Len(t, resp.Strategies.SafeBets, 1)
	assert.Equal(t, "Germany", resp.Strategies.SafeBets[0].Country)

	assert.Equal(t, discovery.Profile{
		CurrentDegree:  "Masters",
		GPA:            8.2,
		MajorInterest:  "Computer Science",
		BudgetMaxLakhs: 40,
		PriorityGoal:   "High ROI",
	}, svc.profile)
}

func TestHandleRecommendOptionalFields(t *testing.T) {
	svc := &fakeService{result: defaultResult()}
	h := New(svc, testLogger())

	rec := postRecommend(t, h, `{
		"degree": "Bachelors",
		"gpa": 7,
		"major": "MBA",
		"budget": 30,
		"funding_source": "Education Loan",
		"target_intake": "Spring 2027"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Education Loan", svc.profile.FundingSource)
	assert.Equal(t, "Spring 2027", svc.profile.TargetIntake)
}

func TestHandleRecommendValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing degree", `{"gpa": 7, "major": "cs", "budget": 10}`},
		{"missing major", `{"degree": "Masters", "gpa": 7, "budget": 10}`},
		{"gpa above scale", `{"degree": "Masters", "gpa": 11, "major": "cs", "budget": 10}`},
		{"gpa negative", `{"degree": "Masters", "gpa": -1, "major": "cs", "budget": 10}`},
		{"budget negative", `{"degree": "Masters", "gpa": 7, "major": "cs", "budget": -5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{result: defaultResult()}
			h := New(svc, testLogger())

			rec := postRecommend(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation_error")
			assert.Zero(t, svc.calls)
		})
	}
}

func TestHandleRecommendMalformedJSON(t *testing.T) {
	svc := &fakeService{result: defaultResult()}
	h := New(svc, testLogger())

	rec := postRecommend(t, h, `{"degree": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_request")
	assert.Zero(t, svc.calls)
}

func TestHandleRecommendServiceError(t *testing.T) {
	svc := &fakeService{err: context.Canceled}
	h := New(svc, testLogger())

	rec := postRecommend(t, h, `{"degree": "Masters", "gpa": 7, "major": "cs", "budget": 10}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	// Internal errors never leak a description.
	assert.NotContains(t, rec.Body.String(), "context canceled")
}
