package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Client is a cookie-aware JSON client for exercising the API server in
// tests.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a JSON API client with a cookie jar so the scs session
// cookie survives across requests.
func NewClient(url string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Login starts a session for the given username, creating the user on first
// login.
func (c *Client) Login(ctx context.Context, username string) error {
	return c.PostJSON(ctx, "/api/login", map[string]string{"username": username}, nil)
}

// Logout destroys the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.PostJSON(ctx, "/api/logout", nil, nil)
}

// GetJSON fetches urlPath and decodes the response body into out. A nil out
// discards the body.
func (c *Client) GetJSON(ctx context.Context, urlPath string, out any) error {
	return c.doJSON(ctx, http.MethodGet, urlPath, nil, out)
}

// PostJSON posts body as JSON to urlPath and decodes the response into out.
// Nil body sends an empty request, nil out discards the response.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, urlPath, body, out)
}

// Delete issues a DELETE request to urlPath.
func (c *Client) Delete(ctx context.Context, urlPath string) error {
	return c.doJSON(ctx, http.MethodDelete, urlPath, nil, nil)
}

// Status issues a request and returns the response status code without
// treating error statuses as failures. Used to assert rejections.
func (c *Client) Status(ctx context.Context, method, urlPath string, body any) (int, error) {
	resp, err := c.do(ctx, method, urlPath, body)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return resp.StatusCode, nil
}

func (c *Client) doJSON(ctx context.Context, method, urlPath string, body, out any) error {
	resp, err := c.do(ctx, method, urlPath, body)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, urlPath, resp.StatusCode, payload)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, urlPath, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, urlPath string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Mark the request as same-origin for cross-origin protection.
	req.Header.Set("Sec-Fetch-Site", "same-origin")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}
