package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Message is one turn in the conversation sent to the model.
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// Completion is the raw result of a chat-completion call.
type Completion struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a remote chat-completion endpoint.
// Calls are at-most-once: the client never retries on its own, so a caller
// that wants retries must loop explicitly.
type Client interface {
	Complete(ctx context.Context, task Task, messages []Message) (*Completion, error)
}

type openRouterClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to an OpenRouter-compatible
// chat-completions endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openRouterClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// completionRequest is the JSON body sent to POST /chat/completions.
type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// completionResponse is the JSON body returned on success.
type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openRouterClient) Complete(ctx context.Context, task Task, messages []Message) (*Completion, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	text, model, err := c.doRequest(ctx, messages)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		} else if isConnectionError(err) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c.observer.OnCallComplete(CallEvent{
			Task:      task,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return &Completion{Text: text, Model: model, LatencyMs: latency}, nil
}

func (c *openRouterClient) doRequest(ctx context.Context, messages []Message) (text, model string, err error) {
	body := completionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.cfg.AppTitle)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", "", fmt.Errorf("%w: status %d", ErrUnavailable, httpResp.StatusCode)
	}

	var resp completionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("%w: decoding completion envelope: %v", ErrInvalidOutput, err)
	}
	if len(resp.Choices) == 0 {
		return "", "", fmt.Errorf("%w: completion has no choices", ErrInvalidOutput)
	}

	return resp.Choices[0].Message.Content, resp.Model, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
