package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/common"
)

// Blocker consults an external abuse-detection service before expensive or
// guessable operations run. The check happens before any account lookup or
// key derivation so a blocked caller learns nothing and costs nothing.
type Blocker interface {
	Check(ctx context.Context, email string, action string) error
}

// NoopBlocker admits every request. Used when no blocker endpoint is
// configured.
type NoopBlocker struct{}

func (NoopBlocker) Check(ctx context.Context, email string, action string) error { return nil }

// HTTPBlocker asks a remote endpoint whether to admit a request. It fails
// open: an unreachable or misbehaving blocker never takes the auth service
// down with it.
type HTTPBlocker struct {
	endpoint string
	client   *http.Client
}

func NewHTTPBlocker(endpoint string) *HTTPBlocker {
	return &HTTPBlocker{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 2 * time.Second},
	}
}

type blockerRequest struct {
	Email  string `json:"email"`
	Action string `json:"action"`
}

type blockerResponse struct {
	Block bool `json:"block"`
}

func (b *HTTPBlocker) Check(ctx context.Context, email string, action string) error {
	body, err := json.Marshal(blockerRequest{Email: email, Action: action})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint+"/check", bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var decoded blockerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil
	}

	if decoded.Block {
		return common.ErrRequestBlocked
	}
	return nil
}
