package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findy-ai/property-engine/internal/market"
)

func TestCompleteSendsSystemPromptFirst(t *testing.T) {
	var received completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hola, ¿qué buscás?"}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})

	reply, err := client.Complete(context.Background(), "sos un asistente", []ChatMessage{
		{Role: "user", Content: "hola"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hola, ¿qué buscás?", reply)

	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "sos un asistente", received.Messages[0].Content)
	assert.Equal(t, "test-model", received.Model)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad", BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "system", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "system", nil)
	assert.Error(t, err)
}

func TestSystemPromptIncludesMarketContext(t *testing.T) {
	stats := market.Stats{
		TotalProperties: 873,
		PriceMin:        47000,
		PriceMax:        675000,
		AvgTotalArea:    95,
		Neighborhoods:   []string{"Centro", "Güemes"},
	}
	prompt := SystemPrompt(stats)
	assert.Contains(t, prompt, "873 propiedades")
	assert.Contains(t, prompt, "$47K - $675K USD")
}
