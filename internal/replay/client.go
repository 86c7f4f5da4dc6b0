package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Ensure APIClient implements the Source interface.
var _ Source = (*APIClient)(nil)

// NewClient creates a replay client that issues at most requestsPerSecond
// lookups against baseURL.
func NewClient(baseURL string, requestsPerSecond float64) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		BaseURL:    baseURL,
	}
}

// Resolve fetches the replay. Concurrent lookups of the same replay share one
// upstream request. The shared request is detached from any single caller, so
// one cancelled caller does not fail the others; each caller still stops
// waiting when its own ctx is done.
func (c *APIClient) Resolve(ctx context.Context, replayCode string, user *jump.User) (*jump.Jump, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(replayCode, func() (any, error) {
		return c.fetch(detached, replayCode)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		log.Debug("Shared replay lookup", "replayCode", replayCode)
	}

	// Each caller gets its own copy; the shared result must not be mutated.
	j := *res.Val.(*jump.Jump)
	if user != nil {
		j.User = *user
	}
	return &j, nil
}

func (c *APIClient) fetch(ctx context.Context, replayCode string) (*jump.Jump, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/replays/%s", c.BaseURL, url.PathEscape(replayCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DsjTournamentsGoClient/1.0")

	log.Debug("Requesting replay", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from replay service", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload replayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}
	return toJump(replayCode, payload)
}

func toJump(replayCode string, payload replayResponse) (*jump.Jump, error) {
	date, err := time.Parse(jump.DateLayout, payload.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid replay date %q", ErrUnavailable, payload.Date)
	}
	return &jump.Jump{
		ReplayCode: replayCode,
		Player:     payload.Player,
		Hill:       payload.Hill,
		Date:       date,
		Distance:   payload.Distance,
		Points:     payload.Points,
	}, nil
}
