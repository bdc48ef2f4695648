package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"qlab/internal/domain"
)

// Client talks to a remote quantum service over HTTP.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// New returns a client for the service at base, authenticating with token.
// hc may be nil, in which case http.DefaultClient is used.
func New(base, token string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: base, token: token, http: hc}
}

// Backends lists the execution backends the service exposes.
func (c *Client) Backends(ctx context.Context) ([]domain.BackendInfo, error) {
	var out []domain.BackendInfo
	if err := c.do(ctx, http.MethodGet, "/v1/backends", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Run submits the job and blocks until the service returns its result.
func (c *Client) Run(ctx context.Context, job domain.Job) (domain.JobResult, error) {
	var out domain.JobResult
	if err := c.do(ctx, http.MethodPost, "/v1/jobs", job, &out); err != nil {
		return domain.JobResult{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		body = new(bytes.Buffer)
		if err := json.NewEncoder(body).Encode(in); err != nil {
			return err
		}
	}
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.base+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.base+path, nil)
	}
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, c.base+path, domain.ErrUnauthorized)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("service %s %s: %s", method, c.base+path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.Backend = (*Client)(nil)
var _ domain.BackendLister = (*Client)(nil)
