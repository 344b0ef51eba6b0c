package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ethiocareer/careercli/internal/common"
	"github.com/ethiocareer/careercli/internal/logging"
	"github.com/google/uuid"
)

// AIChat posts free text to the text-generation service. It carries no
// credential.
type AIChat struct {
	url  string
	http *http.Client
	log  logging.Logger
}

func NewAIChat(url string, timeout time.Duration, log logging.Logger) *AIChat {
	return &AIChat{url: url, http: &http.Client{Timeout: timeout}, log: log}
}

// Reply returns the generated reply. A response without a "reply" field
// is an error.
func (a *AIChat) Reply(ctx context.Context, text string) (string, error) {
	raw, err := json.Marshal(map[string]string{"message": text})
	if err != nil {
		return "", fmt.Errorf("encode ai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build ai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai chat: %w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Status: resp.StatusCode, Method: http.MethodPost, Path: req.URL.Path, Message: errorMessage(resp.Body)}
	}

	var body struct {
		Reply *string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode ai reply: %w", err)
	}
	if body.Reply == nil {
		return "", fmt.Errorf("ai chat: %w: response has no reply", common.ErrUnavailable)
	}
	return *body.Reply, nil
}
