package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	telegramWebhookPath  = "/webhook/telegram"
	defaultNgrokAttempts = 10
	ngrokRetryInterval   = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// pickTunnel prefers an https tunnel and falls back to the first one.
func (r ngrokTunnelsResponse) pickTunnel() (string, bool) {
	for _, t := range r.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, true
		}
	}
	if len(r.Tunnels) > 0 {
		return r.Tunnels[0].PublicURL, true
	}
	return "", false
}

// detectNgrokURL polls the ngrok local API until a tunnel shows up.
// ngrok usually starts alongside the bot, so early failures are retried.
func detectNgrokURL(ctx context.Context, apiBase string, attempts int) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := strings.TrimRight(apiBase, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchTunnel(ctx, client, endpoint)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokRetryInterval):
		}
	}
	return "", fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ngrok API returned %s", resp.Status)
	}

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	publicURL, ok := tunnels.pickTunnel()
	if !ok {
		return "", errNoTunnels
	}
	return publicURL, nil
}
