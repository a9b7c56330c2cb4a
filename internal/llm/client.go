// Package llm generates trips through an OpenAI-compatible chat endpoint.
//
// The response payload is untrusted: whatever JSON the model returns is
// salvaged and run through the normalizer, so a reachable model always
// yields a valid Trip and an unreachable one surfaces a plain error.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yatrakit/yatrakit/internal/normalize"
	"github.com/yatrakit/yatrakit/internal/trip"
)

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a remote generator. apiURL is the full completions
// endpoint URL.
func NewClient(apiURL, apiKey, model string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate asks the model for an itinerary and normalizes whatever comes
// back. Transport, status and decode failures are surfaced to the caller;
// nothing partial is returned.
func (c *Client) Generate(ctx context.Context, prompt string) (trip.Trip, error) {
	if c.apiURL == "" {
		return trip.Trip{}, errors.New("llm: missing API URL")
	}

	body, _ := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: buildTripPrompt(prompt)}},
		Temperature: 0.2,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return trip.Trip{}, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return trip.Trip{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return trip.Trip{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return trip.Trip{}, fmt.Errorf("llm: endpoint returned %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return trip.Trip{}, fmt.Errorf("llm: invalid response envelope: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return trip.Trip{}, errors.New("llm: response has no choices")
	}

	jsonText := extractJSON(decoded.Choices[0].Message.Content)
	if jsonText == "" {
		return trip.Trip{}, errors.New("llm: model did not return JSON")
	}

	var payload any
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return trip.Trip{}, fmt.Errorf("llm: model returned invalid JSON: %w", err)
	}

	return normalize.Normalize(payload, prompt), nil
}
