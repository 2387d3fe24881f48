package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/foodtuck/storefront/internal/config"
)

// Client is a minimal content repository client speaking the Sanity HTTP API:
// GROQ queries against the query endpoint and document creation against the
// mutate endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	dataset    string
	apiVersion string
	token      string
}

// NewClient creates a client for the configured Sanity project.
func NewClient(cfg config.SanityConfig) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("https://%s.%s", cfg.ProjectID, host),
		dataset:    cfg.Dataset,
		apiVersion: cfg.APIVersion,
		token:      cfg.Token,
	}
}

// NewClientWithBaseURL creates a client pointed at an explicit base URL.
// Used by tests to target a local stub server.
func NewClientWithBaseURL(cfg config.SanityConfig, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL
	return c
}

// queryResponse is the envelope returned by the query endpoint.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// mutateResponse is the envelope returned by the mutate endpoint.
type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// Fetch runs a GROQ query with optional parameters and decodes the result
// into dest. Parameters are passed as $-prefixed, JSON-encoded query values
// per the Sanity API contract.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]interface{}, dest interface{}) error {
	values := url.Values{}
	values.Set("query", query)
	for key, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode query param %q: %w", key, err)
		}
		values.Set("$"+key, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, c.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create query request: %w", err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.readError(resp)
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode query response: %w", err)
	}

	// GROQ queries with a [0] terminator return JSON null when nothing
	// matches; leave dest untouched in that case.
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, dest); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}

	return nil
}

// Create persists a new document and returns its generated identifier.
// The document must carry a _type attribute.
func (c *Client) Create(ctx context.Context, doc interface{}) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"mutations": []map[string]interface{}{
			{"create": doc},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true", c.baseURL, c.apiVersion, c.dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mutate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.readError(resp)
	}

	var envelope mutateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("failed to decode mutate response: %w", err)
	}

	if len(envelope.Results) == 0 {
		return "", fmt.Errorf("mutate response contained no results")
	}

	return envelope.Results[0].ID, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// readError extracts the repository's error description so upstream
// failures surface with their underlying message rather than a bare status.
func (c *Client) readError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error.Description != "" {
			return fmt.Errorf("sanity: %s (status %d)", parsed.Error.Description, resp.StatusCode)
		}
		if parsed.Message != "" {
			return fmt.Errorf("sanity: %s (status %d)", parsed.Message, resp.StatusCode)
		}
	}

	return fmt.Errorf("sanity: unexpected status code %d: %s", resp.StatusCode, bytes.TrimSpace(body))
}
