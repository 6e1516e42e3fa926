package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HuggingFaceLLM calls a Hugging Face text-generation inference endpoint.
type HuggingFaceLLM struct {
	http     *http.Client
	endpoint string
	token    string
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// NewHuggingFaceLLM returns a ready-to-use client. timeout bounds every call.
func NewHuggingFaceLLM(endpoint, token string, timeout time.Duration) *HuggingFaceLLM {
	return &HuggingFaceLLM{
		http: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
		token:    token,
	}
}

// GenerateResponse posts {"inputs": prompt} and returns the first generated_text.
func (h *HuggingFaceLLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return "", errors.Wrap(err, "huggingface: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "huggingface: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "huggingface: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", errors.Errorf("huggingface: unexpected status %s", resp.Status)
	}

	var out []generation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "huggingface: decode response")
	}
	if len(out) == 0 {
		return "", errors.New("huggingface: no generations returned")
	}
	return out[0].GeneratedText, nil
}
