// Package legacychat talks to the standalone query-parameter chat backend.
// It is independent from the product comparison flow.
package legacychat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// FallbackReply is returned by Reply when the backend cannot be reached.
const FallbackReply = "Error fetching response."

// Client is a minimal wrapper around the backend's GET /chat endpoint.
type Client struct {
	http    *http.Client
	baseURL string
}

type chatResponse struct {
	Response string `json:"response"`
}

// NewClient returns a ready-to-use client for baseURL (e.g. "https://bot.example.com").
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Ask sends query and returns the backend's response field.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	u := c.baseURL + "/chat?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", errors.Wrap(err, "legacychat: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "legacychat: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", errors.Errorf("legacychat: unexpected status %s", resp.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "legacychat: decode response")
	}
	return out.Response, nil
}

// Reply is Ask with FallbackReply in place of any error. Blank queries return "" without a call.
func (c *Client) Reply(ctx context.Context, query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	answer, err := c.Ask(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("error fetching chatbot response")
		return FallbackReply
	}
	return answer
}
