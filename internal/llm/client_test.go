package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ALACARTE_LLM_ENABLED", "true")
	t.Setenv("ALACARTE_LLM_MODEL", "gpt-4o")
	t.Setenv("ALACARTE_LLM_TIMEOUT_MS", "5000")
	t.Setenv("ALACARTE_LLM_MAX_RETRIES", "0")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Zero(t, cfg.MaxRetries)
}

func TestResponder_DisabledReturnsSentinel(t *testing.T) {
	r := NewOpenAIResponder(DefaultConfig(), nil)
	_, err := r.Respond(context.Background(), "system", "user")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, r.Enabled())
}

func TestResponder_ChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Visit Hope Market."}}]}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.BaseURL = server.URL
	cfg.APIKey = "test-key"

	r := NewOpenAIResponder(cfg, nil)
	text, err := r.Respond(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Visit Hope Market.", text)
}

func TestResponder_RetriesThenExhausts(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.BaseURL = server.URL
	cfg.APIKey = "test-key"
	cfg.MaxRetries = 1

	r := NewOpenAIResponder(cfg, nil)
	_, err := r.Respond(context.Background(), "system", "user")
	require.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 2, calls)
}

func sampleMatchResponse() *contract.MatchResponse {
	next := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	window := domain.TimeWindow{Start: domain.NewTimeOfDay(9, 0), End: domain.NewTimeOfDay(11, 59)}
	return &contract.MatchResponse{
		Date:   time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
		Period: domain.PeriodMorning,
		Matches: []contract.AgencyMatch{
			{
				Agency: domain.Agency{Name: "Hope Market", DistanceMiles: 1.2, Address: "100 Main St", Phone: "202-555-0142"},
				Result: domain.ResolutionResult{State: domain.StateOpenToday, EffectiveWindow: &window},
			},
			{
				Agency: domain.Agency{Name: "Corner Pantry", DistanceMiles: 3.4, ByAppointmentOnly: true},
				Result: domain.ResolutionResult{State: domain.StateClosedWithNext, NextOpenDate: &next},
			},
		},
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	req := contract.NewFindRequest("Washington, DC",
		time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), domain.PeriodMorning)
	req.DietaryNotes = []string{"halal"}
	req.Language = "Spanish"

	system, user := BuildRecommendationPrompt(req, sampleMatchResponse())
	assert.Contains(t, system, "food-assistance navigator")
	assert.Contains(t, user, "Wednesday, March 13")
	assert.Contains(t, user, "halal")
	assert.Contains(t, user, "Answer in Spanish")
	assert.Contains(t, user, "Hope Market")
	assert.Contains(t, user, "appointment required")
	assert.Contains(t, user, "next open Friday, March 15")
}

func TestFallbackRecommendation(t *testing.T) {
	text := FallbackRecommendation(sampleMatchResponse())
	assert.Contains(t, text, "Hope Market")
	assert.Contains(t, text, "Corner Pantry")
	assert.Contains(t, text, "next open Mar 15")

	empty := FallbackRecommendation(&contract.MatchResponse{
		Date:   time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
		Period: domain.PeriodMorning,
	})
	assert.Contains(t, empty, "No food distribution sites")
}
