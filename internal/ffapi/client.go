// Package ffapi talks to the three player-data endpoints: info JSON,
// outfit image and profile-card image. The three calls are independent
// failure domains; callers decide what a failure means.
package ffapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

var (
	// ErrNotFound means the upstream answered 404 for the uid.
	ErrNotFound = errors.New("player not found")
	// ErrMalformedPayload means the upstream answered 200 with unparsable JSON.
	ErrMalformedPayload = errors.New("malformed payload")
)

// StatusError is any non-200, non-404 upstream answer.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("upstream http %d", e.Code) }
func (e *StatusError) StatusCode() int { return e.Code }

type Client struct {
	http    *http.Client
	limiter *rate.Limiter

	infoURL   string
	outfitURL string
	cardURL   string
}

// NewClient builds a client over the given transport. The transport owns
// the per-call timeout; this client makes exactly one attempt per call and
// paces requests with a shared token bucket.
func NewClient(httpClient *http.Client, infoURL, outfitURL, cardURL string) *Client {
	return &Client{
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Limit(5), 5),
		infoURL:   infoURL,
		outfitURL: outfitURL,
		cardURL:   cardURL,
	}
}

// PlayerInfo fetches and parses the player-info JSON. The uid must already
// be validated (digits only, at least 6) by the caller.
func (c *Client) PlayerInfo(ctx context.Context, uid string) (*PlayerRecord, error) {
	status, body, err := c.get(ctx, c.infoURL, uid)
	if err != nil {
		return nil, fmt.Errorf("info request: %w", err)
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status}
	}

	var record PlayerRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &record, nil
}

// OutfitImage fetches the outfit render. Only a 200 answer counts.
func (c *Client) OutfitImage(ctx context.Context, uid string) ([]byte, error) {
	return c.getImage(ctx, c.outfitURL, uid)
}

// ProfileCardImage fetches the profile-card render. Only a 200 answer counts.
func (c *Client) ProfileCardImage(ctx context.Context, uid string) ([]byte, error) {
	return c.getImage(ctx, c.cardURL, uid)
}

func (c *Client) getImage(ctx context.Context, base, uid string) ([]byte, error) {
	status, body, err := c.get(ctx, base, uid)
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, base, uid string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?uid="+url.QueryEscape(uid), nil)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
