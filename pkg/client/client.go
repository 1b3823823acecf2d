// Package client is the admin-side API client. It mirrors the server's
// endpoints one method per operation and folds every outcome into a
// Result, so rendering code never has to branch on Go errors: a request
// that never reached the server is a Result with Status 0, a sentinel
// distinct from any real HTTP code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"noticias-service/pkg/config"
	"noticias-service/pkg/models"
)

// Result is the outcome of one API call
type Result struct {
	// Status is the HTTP status code, or 0 for a transport failure
	Status int
	// Body is the raw response body; on transport failure it is a
	// synthesized {"mensaje": <error>} object
	Body []byte
}

// Message extracts a user-facing message from the body, preferring the
// service's "mensaje" key, then "error", then the raw text.
func (r Result) Message() string {
	var body map[string]any
	if err := json.Unmarshal(r.Body, &body); err == nil {
		if m, ok := body["mensaje"].(string); ok && m != "" {
			return m
		}
		if m, ok := body["error"].(string); ok && m != "" {
			return m
		}
	}
	return string(r.Body)
}

// Decode unmarshals the body into v
func (r Result) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client issues requests against the noticias API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL with the standard
// 10 second per-request timeout.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FromConfig creates a client pointed at the configured API base URL
func FromConfig(cfg *config.ClientConfig) *Client {
	return New(cfg.BaseURL)
}

// ListNoticias fetches one page of noticias; query is optional
func (c *Client) ListNoticias(ctx context.Context, page, limit int, query string) Result {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if query != "" {
		params.Set("query", query)
	}
	return c.do(ctx, http.MethodGet, "/noticias?"+params.Encode(), nil)
}

// GetNoticia fetches a single noticia by id
func (c *Client) GetNoticia(ctx context.Context, id int64) Result {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/noticias/%d", id), nil)
}

// CreateNoticia submits a new noticia
func (c *Client) CreateNoticia(ctx context.Context, req models.NoticiaRequest) Result {
	return c.do(ctx, http.MethodPost, "/noticias", req)
}

// UpdateNoticia rewrites an existing noticia
func (c *Client) UpdateNoticia(ctx context.Context, id int64, req models.NoticiaRequest) Result {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/noticias/%d", id), req)
}

// DeleteNoticia removes a noticia by id
func (c *Client) DeleteNoticia(ctx context.Context, id int64) Result {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/noticias/%d", id), nil)
}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, username, password string) Result {
	return c.do(ctx, http.MethodPost, "/login", models.LoginRequest{
		Username: username,
		Password: password,
	})
}

func (c *Client) do(ctx context.Context, method, path string, payload any) Result {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return transportFailure(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return transportFailure(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(err)
	}

	return Result{Status: resp.StatusCode, Body: data}
}

func transportFailure(err error) Result {
	body, _ := json.Marshal(map[string]string{"mensaje": err.Error()})
	return Result{Status: 0, Body: body}
}
