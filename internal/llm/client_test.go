package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = endpoint
	cfg.APIKey = "test-key"
	cfg.Model = "test-model"
	cfg.TimeoutMs = 2000
	return cfg
}

func chatBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"model": "test-model",
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, 0.7, req.Temperature)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatBody(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), TaskChat, []Message{
		{Role: "system", Content: "be a coach"},
		{Role: "user", Content: "hello"},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)
	assert.Equal(t, "test-model", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestClient_Complete_ServerError_IsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), TaskChat, []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Complete_MalformedEnvelope_IsContractViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), TaskChat, []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestClient_Complete_EmptyChoices_IsContractViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"model": "test-model", "choices": []interface{}{}})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), TaskChat, []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), TaskChat, []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Complete_Unreachable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), TaskChat, []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Complete_NoAutomaticRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "flaky", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), TaskChat, []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, attempts)
}

type recordingObserver struct {
	events []CallEvent
}

func (r *recordingObserver) OnCallComplete(e CallEvent) { r.events = append(r.events, e) }

func TestClient_Complete_ObserverSeesFailureCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.Complete(context.Background(), TaskBehavior, []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	assert.Equal(t, TaskBehavior, obs.events[0].Task)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "UNAVAILABLE", obs.events[0].ErrorCode)
}
