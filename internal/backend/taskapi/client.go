// Package taskapi implements service.Service against the task-management
// REST API. It is the single chokepoint for network calls: every request
// gets the bearer token from the session store, and any 401 response
// invalidates the session before the error is propagated.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
)

// Client implements service.Service over HTTP.
type Client struct {
	base    string
	cfg     *config.Config
	store   TokenSource
	httpc   *http.Client
	onAuth  func() // invoked once per 401 before the error is returned
	debugTo io.Writer
}

// TokenSource is the slice of the session store the gateway needs: the
// current token, and the ability to invalidate the session on a 401.
type TokenSource interface {
	Token() string
	Logout() error
}

// New creates a gateway against cfg.BaseURL, reading the token from store.
// A 401 on any request clears the store (idempotently) before the error
// reaches the caller.
func New(cfg *config.Config, store TokenSource) *Client {
	c := &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		cfg:     cfg,
		store:   store,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		debugTo: os.Stderr,
	}
	c.onAuth = func() {
		// Best effort; the in-memory session is cleared even if the file
		// removal fails.
		_ = store.Logout()
	}
	return c
}

// SetHTTPClient replaces the underlying HTTP client (for testing).
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpc = hc
}

// Signup implements service.Service.
func (c *Client) Signup(ctx context.Context, username, email, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", body, &resp); err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "account created"
	}
	return resp.Message, nil
}

// Login implements service.Service. The login endpoint takes form-encoded
// credentials, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &service.RequestError{Detail: "server returned no access token"}
	}
	return resp.AccessToken, nil
}

// Logout implements service.Service. Best-effort: the caller clears the
// local session whether or not this succeeds.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, draft service.TaskDraft) error {
	return c.doJSON(ctx, http.MethodPost, "/tasks/", draft, nil)
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id int, draft service.TaskDraft) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), draft, nil)
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// newRequest builds a request carrying a request id and the bearer token
// when a session exists. Requests without a token go out unauthenticated;
// only signup and login legitimately take that path. The per-request
// timeout lives on the underlying http.Client.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")

	if tok := c.store.Token(); tok != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"})
		t, err := src.Token()
		if err != nil {
			return nil, err
		}
		t.SetAuthHeader(req)
	}

	if c.cfg.Debug {
		fmt.Fprintf(c.debugTo, "debug: %s %s request_id=%s\n", method, path, reqID)
	}
	return req, nil
}

// doJSON marshals body (when non-nil) as JSON, issues the request, and
// decodes the response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// do issues the request and decodes a 2xx response into out. Non-2xx
// responses become *service.RequestError; a 401 additionally invalidates
// the session before the error is returned.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &service.RequestError{Detail: transportDetail(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorDetail(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized && c.onAuth != nil {
			c.onAuth()
		}
		return &service.RequestError{Status: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &service.RequestError{Detail: transportDetail(err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &service.RequestError{Status: resp.StatusCode, Detail: "invalid response from server"}
	}
	return nil
}

// errorDetail extracts the server's error message from a failure payload.
// The API wraps messages as {"detail": "..."}; validation failures carry a
// non-string detail, which falls back to the generic message.
func errorDetail(body io.Reader) string {
	const generic = "request failed"

	data, err := io.ReadAll(io.LimitReader(body, 8192))
	if err != nil {
		return generic
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Detail == nil {
		return generic
	}
	var msg string
	if err := json.Unmarshal(payload.Detail, &msg); err != nil || msg == "" {
		return generic
	}
	return msg
}

// transportDetail trims the url.Error wrapping so users see the cause.
func transportDetail(err error) string {
	if ue, ok := err.(*url.Error); ok {
		if ue.Timeout() {
			return "request timed out"
		}
		return ue.Err.Error()
	}
	return err.Error()
}
