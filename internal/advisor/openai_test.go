package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/internal/catalog"
	"pathwise/internal/discovery"
)

func testProfile() discovery.Profile {
	return discovery.Profile{
		CurrentDegree:  "Masters",
		GPA:            8.2,
		MajorInterest:  "Computer Science",
		BudgetMaxLakhs: 40,
	}
}

func testTop() discovery.ScoreResult {
	return discovery.ScoreResult{
		Country:    "Germany",
		MatchScore: 92,
		Reasoning:  []string{"Budget fits (cost 13.5L vs budget 40L)", "High GPA. Scholarship eligibility increased. (+5 pts)"},
	}
}

func testCountry() catalog.Country {
	return catalog.Country{
		Name:       "Germany",
		TrendAlert: "New 'Chancenkarte' (Opportunity Card) makes job seeking easier.",
	}
}

func chatReply(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(body)
}

func TestNoteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply("  Focus on Germany; free tuition offsets the slower visa path.  ")))
	}))
	defer server.Close()

	client, err := New(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	note, err := client.Note(context.Background(), testProfile(), testTop(), testCountry())

	require.NoError(t, err)
	assert.Equal(t, "Focus on Germany; free tuition offsets the slower visa path.", note)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, defaultModel, gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	user := messages[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "Senior Study Abroad Consultant")
	assert.Contains(t, user, "Germany (Match Score: 92/100)")
	assert.Contains(t, user, "Chancenkarte")
	assert.Contains(t, user, "Budget fits")
}

func TestNoteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Note(context.Background(), testProfile(), testTop(), testCountry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestNoteMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": `))
	}))
	defer server.Close()

	client, err := New(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Note(context.Background(), testProfile(), testTop(), testCountry())
	assert.Error(t, err)
}

func TestNoteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := New(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Note(context.Background(), testProfile(), testTop(), testCountry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no completion choices")
}

func TestNoteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("   ")))
	}))
	defer server.Close()

	client, err := New(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Note(context.Background(), testProfile(), testTop(), testCountry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty advisor note")
}

func TestNoteContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(chatReply("late")))
	}))
	defer server.Close()

	client, err := New(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Note(ctx, testProfile(), testTop(), testCountry())
	assert.Error(t, err)
}

func TestNewRequiresEndpointAndKey(t *testing.T) {
	_, err := New(Config{APIKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{Endpoint: "http://localhost"})
	assert.Error(t, err)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Endpoint: "http://localhost"}.Enabled())
	assert.True(t, Config{Endpoint: "http://localhost", APIKey: "k"}.Enabled())
}
