package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealership-api/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dealer-assist-1", req.Model)
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "user", req.Messages[len(req.Messages)-1].Role)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"The Aurora 450X starts at Rs 1.89 lakh."}}]}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "test-key", "dealer-assist-1", 5*time.Second, logger.NewTestLogger(t))

	reply, err := client.Complete(context.Background(), []Message{
		{Role: "user", Content: "How much is the Aurora 450X?"},
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "Aurora 450X")
}

func TestComplete_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "test-key", "dealer-assist-1", 5*time.Second, logger.NewTestLogger(t))

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	assert.Error(t, err)
}

func TestComplete_EmptyChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "test-key", "dealer-assist-1", 5*time.Second, logger.NewTestLogger(t))

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	assert.Error(t, err)
}
