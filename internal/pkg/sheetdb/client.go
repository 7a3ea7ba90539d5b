package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
)

// Client talks to the spreadsheet web-app endpoint. The endpoint is a single
// URL: GET with a password query parameter lists all rows, POST with a JSON
// body applies one mutation. POST response bodies carry no usable signal and
// are discarded; success is the absence of a transport error.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client for the given web-app URL. httpClient may be nil,
// in which case http.DefaultClient is used. No request timeout is imposed
// beyond what the supplied client carries.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// errEnvelope is the shape the web app returns on authentication failure.
type errEnvelope struct {
	Error string `json:"error"`
}

// List implements Backend.
func (c *Client) List(ctx context.Context, passcode string) ([]leave.Record, error) {
	u := c.endpoint + "?password=" + url.QueryEscape(passcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave records: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read list response: %w", err)
	}

	var envelope errEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return nil, leave.ErrIncorrectPasscode
	}

	var records []leave.Record
	if err := json.Unmarshal(body, &records); err != nil {
		// Any shape that is neither an error envelope nor an array is
		// treated as an empty result.
		return []leave.Record{}, nil
	}
	return records, nil
}

// Mutate implements Backend.
func (c *Client) Mutate(ctx context.Context, passcode string, m Mutation) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode mutation: %w", err)
	}

	// Merge the passcode into the flat body the web app expects.
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return fmt.Errorf("failed to flatten mutation: %w", err)
	}
	fields["password"] = passcode

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode mutation body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mutation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mutation: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
