package exhibit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hbrook/galerie/internal/logging"
)

const fetchTimeout = 30 * time.Second

// Client fetches exhibit listings from the content API. The API URL is tried
// first; on failure each mirror is tried in order, passing the API URL as an
// escaped suffix (the convention CORS proxies use).
type Client struct {
	endpoints []string
	client    *http.Client
	logger    logging.Interface
}

func NewClient(apiURL string, mirrors []string, logger logging.Interface) *Client {
	if logger == nil {
		logger = logging.Discard
	}
	endpoints := make([]string, 0, 1+len(mirrors))
	endpoints = append(endpoints, apiURL)
	for _, m := range mirrors {
		endpoints = append(endpoints, m+url.QueryEscape(apiURL))
	}
	return &Client{
		endpoints: endpoints,
		client:    &http.Client{Timeout: fetchTimeout},
		logger:    logger,
	}
}

// Exhibits fetches the ordered exhibit list, walking the endpoint fallback
// chain until one succeeds. Returns the joined errors if every endpoint
// fails.
func (c *Client) Exhibits(ctx context.Context) ([]*Exhibit, error) {
	fetchID := uuid.New()

	var errs []error
	for _, endpoint := range c.endpoints {
		exhibits, err := c.fetch(ctx, endpoint)
		if err != nil {
			c.logger.Warn("fetching exhibits", "fetch_id", fetchID, "url", endpoint, "error", err)
			errs = append(errs, err)
			continue
		}
		c.logger.Info("fetched exhibits", "fetch_id", fetchID, "url", endpoint, "total", len(exhibits))
		return exhibits, nil
	}
	return nil, errors.Join(errs...)
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]*Exhibit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status: %s", resp.Status)
	}

	var exhibits []*Exhibit
	if err := json.NewDecoder(resp.Body).Decode(&exhibits); err != nil {
		return nil, fmt.Errorf("decoding exhibit list: %w", err)
	}
	return exhibits, nil
}
