package formsite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// UpstreamError marks the Formsite API as unreachable or misbehaving.
// Dashboard callers decide whether to fail the request or serve the
// configured fallback dataset.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("formsite upstream error: %v", e.Err)
	}
	return fmt.Sprintf("formsite upstream error: status=%d", e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Doer is the injected transport, satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig carries the Formsite account coordinates. Everything comes
// from configuration, nothing is read ambiently.
type ClientConfig struct {
	Server   string // server prefix, e.g. "fs16"
	UserDir  string
	FormDir  string
	APIToken string
}

// Client talks to the Formsite API v2 results endpoints.
type Client struct {
	cfg  ClientConfig
	http Doer
}

// NewClient builds a Client. A nil doer gets a default http.Client with
// bounded dial and request timeouts.
func NewClient(cfg ClientConfig, doer Doer) *Client {
	if doer == nil {
		doer = &http.Client{
			Timeout: 25 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:    100,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}
	return &Client{cfg: cfg, http: doer}
}

func (c *Client) baseURL() string {
	return fmt.Sprintf("https://%s.formsite.com/api/v2/%s/forms/%s", c.cfg.Server, c.cfg.UserDir, c.cfg.FormDir)
}

// FetchResults pulls the full result set for the appointment form.
func (c *Client) FetchResults(ctx context.Context) ([]Result, error) {
	var page struct {
		Results []Result `json:"results"`
	}
	params := url.Values{}
	params.Set("limit", "100")
	// defeat edge caching so a just-submitted form shows up
	params.Set("nocache", strconv.FormatInt(time.Now().UnixMilli(), 10))

	if err := c.get(ctx, c.baseURL()+"/results?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// FetchResult pulls a single result by id. A 404 from the API comes back as
// (nil, nil) so callers can treat "not found" as an empty read.
func (c *Client) FetchResult(ctx context.Context, id string) (*Result, error) {
	params := url.Values{}
	params.Set("nocache", strconv.FormatInt(time.Now().UnixMilli(), 10))

	var result Result
	err := c.get(ctx, c.baseURL()+"/results/"+url.PathEscape(id)+"?"+params.Encode(), &result)
	if err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) && ue.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	// the API documents a lowercase scheme name
	req.Header.Set("Authorization", "bearer "+c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("status=%d body=%s", resp.StatusCode, string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
