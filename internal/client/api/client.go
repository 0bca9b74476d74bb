// Package api is a thin JSON client for the notekeep HTTP API. It keeps the
// bearer token obtained at login and attaches it to every note request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Note mirrors the server's note payload. CreatedAt stays a string, the
// server already formats it for display.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Error is a non-2xx response, carrying the server's msg field.
type Error struct {
	StatusCode int
	Msg        string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/register", body, nil)
}

// Login authenticates and remembers the access token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return err
	}

	c.token = resp.AccessToken
	return nil
}

func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) error {
	body := map[string]string{"title": title, "content": content}
	return c.do(ctx, http.MethodPost, "/api/notes", body, nil)
}

// UpdateNote sends only the fields that are non-nil, the server keeps the
// rest unchanged.
func (c *Client) UpdateNote(ctx context.Context, id string, title, content *string) error {
	body := map[string]*string{}
	if title != nil {
		body["title"] = title
	}
	if content != nil {
		body["content"] = content
	}
	return c.do(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), body, nil)
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) SearchNotes(ctx context.Context, title, content string) ([]Note, error) {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if content != "" {
		q.Set("content", content)
	}

	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/search?"+q.Encode(), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// do sends one JSON request. A non-2xx status becomes an *Error with the
// server's msg, and out (when non-nil) receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Msg string `json:"msg"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &Error{StatusCode: resp.StatusCode, Msg: payload.Msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
