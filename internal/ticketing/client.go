// Package ticketing fetches transaction data from the remote ticketing API
// and normalizes its legacy wire format into domain types.
package ticketing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kinoops/backoffice/internal/domain"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		httpc:   &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// ListTransactions fetches all transactions booked in [from, to] for a site.
// An empty site queries the whole chain. The result keeps the upstream
// order, most recent booking first.
func (c *Client) ListTransactions(
	ctx context.Context,
	from, to time.Time,
	site string,
) ([]domain.Transaction, error) {
	const op = "ticketing.Client.ListTransactions"

	q := url.Values{}
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	if site != "" {
		q.Set("site", site)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/transactions?"+q.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var wire []wireTransaction
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.Transaction, 0, len(wire))
	for _, w := range wire {
		out = append(out, decodeTransaction(w))
	}

	return out, nil
}
