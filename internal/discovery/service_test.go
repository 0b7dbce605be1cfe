package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/internal/catalog"
	"pathwise/pkg/platform/audit"
	"pathwise/pkg/requestcontext"
)

type fakeNarrator struct {
	note string
}

func (f *fakeNarrator) Note(budget, gpa float64, meta Meta) string {
	return f.note
}

type fakeAdvisor struct {
	note  string
	err   error
	delay time.Duration
	calls int
}

func (f *fakeAdvisor) Note(ctx context.Context, p Profile, top ScoreResult, country catalog.Country) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.note, nil
}

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewService(cat, NewClassifier(NewEngine()), &fakeNarrator{note: "narrative note"}, slog.New(slog.DiscardHandler), opts...)
}

func strongProfile() Profile {
	return Profile{
		CurrentDegree:  DegreeMasters,
		GPA:            8.2,
		MajorInterest:  "Computer Science",
		BudgetMaxLakhs: 40,
		PriorityGoal:   PriorityHighROI,
	}
}

func TestDiscoverUsesNarrativeNoteWithoutAdvisor(t *testing.T) {
	service := newTestService(t)

	result, err := service.Discover(context.Background(), strongProfile())

	require.NoError(t, err)
	assert.Equal(t, "narrative note", result.ConsultantNote)
	assert.Positive(t, result.Meta.TotalOptions)
}

func TestDiscoverIsDeterministic(t *testing.T) {
	service := newTestService(t)
	p := strongProfile()

	first, err := service.Discover(context.Background(), p)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for range 5 {
		next, err := service.Discover(context.Background(), p)
		require.NoError(t, err)
		nextJSON, err := json.Marshal(next)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(nextJSON))
	}
}

func TestDiscoverBucketsAreRanked(t *testing.T) {
	service := newTestService(t)

	result, err := service.Discover(context.Background(), strongProfile())
	require.NoError(t, err)

	for _, bucket := range [][]ScoreResult{result.Strategies.SafeBets, result.Strategies.FastTrack, result.Strategies.Moonshots} {
		for i := 1; i < len(bucket); i++ {
			assert.GreaterOrEqual(t, bucket[i-1].MatchScore, bucket[i].MatchScore)
		}
	}
}

func TestDiscoverAdvisorNoteReplacesNarrative(t *testing.T) {
	adv := &fakeAdvisor{note: "tailored advice"}
	service := newTestService(t, WithAdvisor(adv, time.Second))

	result, err := service.Discover(context.Background(), strongProfile())

	require.NoError(t, err)
	assert.Equal(t, "tailored advice", result.ConsultantNote)
	assert.Equal(t, 1, adv.calls)
}

func TestDiscoverFallsBackWhenAdvisorFails(t *testing.T) {
	adv := &fakeAdvisor{err: errors.New("upstream 500")}
	service := newTestService(t, WithAdvisor(adv, time.Second))

	result, err := service.Discover(context.Background(), strongProfile())

	require.NoError(t, err)
	assert.Equal(t, "narrative note", result.ConsultantNote)
}

func TestDiscoverFallsBackWhenAdvisorTimesOut(t *testing.T) {
	adv := &fakeAdvisor{note: "too late", delay: 200 * time.Millisecond}
	service := newTestService(t, WithAdvisor(adv, 20*time.Millisecond))

	result, err := service.Discover(context.Background(), strongProfile())

	require.NoError(t, err)
	assert.Equal(t, "narrative note", result.ConsultantNote)
}

func TestDiscoverSkipsAdvisorWhenNothingEligible(t *testing.T) {
	adv := &fakeAdvisor{note: "unused"}
	service := newTestService(t, WithAdvisor(adv, time.Second))

	result, err := service.Discover(context.Background(), Profile{
		GPA:            5.0,
		MajorInterest:  "cs",
		BudgetMaxLakhs: 40,
	})

	require.NoError(t, err)
	assert.Zero(t, result.Meta.TotalOptions)
	assert.Zero(t, adv.calls)
	assert.Equal(t, "narrative note", result.ConsultantNote)
}

func TestDiscoverEmitsAuditEvent(t *testing.T) {
	publisher := audit.NewPublisher(4, slog.New(slog.DiscardHandler))
	service := newTestService(t, WithAuditor(publisher))

	ctx := requestcontext.WithRequestID(context.Background(), "req-123")
	result, err := service.Discover(ctx, strongProfile())
	require.NoError(t, err)

	select {
	case event := <-publisher.Inbox():
		assert.Equal(t, audit.ActionRecommendationServed, event.Action)
		assert.Equal(t, "req-123", event.RequestID)
		assert.NotEqual(t, "none", event.Subject)
		assert.Equal(t, result.Meta.TotalOptions, event.TotalOptions)
	case <-time.After(time.Second):
		t.Fatal("no audit event published")
	}
}

func TestDiscoverAuditSubjectNoneWhenEmpty(t *testing.T) {
	publisher := audit.NewPublisher(4, slog.New(slog.DiscardHandler))
	service := newTestService(t, WithAuditor(publisher))

	_, err := service.Discover(context.Background(), Profile{GPA: 5.0, MajorInterest: "cs"})
	require.NoError(t, err)

	select {
	case event := <-publisher.Inbox():
		assert.Equal(t, "none", event.Subject)
		assert.Empty(t, event.Decision)
	case <-time.After(time.Second):
		t.Fatal("no audit event published")
	}
}

func TestDiscoverHonorsCancelledContext(t *testing.T) {
	service := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Discover(ctx, strongProfile())
	assert.ErrorIs(t, err, context.Canceled)
}
