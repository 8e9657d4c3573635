// Package client is the REST API client the terminal screens talk through.
// It canonicalizes user IDs and passwords to upper case before anything is
// transmitted and converts every failure into a typed *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"usermgmt/internal/domain/models"
	"usermgmt/internal/utils"
)

const defaultBaseURL = "http://localhost:8080/api"

// TokenSource supplies the bearer token for authenticated calls. An empty
// string means no token is attached.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a Client. baseURL falls back to USERMGMT_API_URL, then the
// local default. tokens may be nil for an unauthenticated client.
func New(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = strings.TrimSpace(os.Getenv("USERMGMT_API_URL"))
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// SetHTTPClient overrides the underlying transport (used by tests).
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

type SignOnResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}

// SessionUser is the identity slice of a signed-on user, as returned by
// the signon endpoint and persisted by the session store.
type SessionUser struct {
	UserID    string `json:"userId"`
	UserType  string `json:"userType"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CreateUserRequest struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	UserType  string `json:"userType"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password,omitempty"`
	UserType  string `json:"userType"`
}

// UserResult is the {message,user} envelope on create/update responses.
type UserResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type ListParams struct {
	Search string
	Page   int
	Size   int
}

func (c *Client) SignOn(ctx context.Context, userID, password string) (SignOnResult, error) {
	body := map[string]string{
		"userId":   utils.Canonical(userID),
		"password": utils.Canonical(password),
	}
	var out SignOnResult
	err := c.do(ctx, http.MethodPost, "/auth/signon", nil, body, &out, "Sign on failed")
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (UserResult, error) {
	req.UserID = utils.Canonical(req.UserID)
	req.Password = utils.Canonical(req.Password)
	var out UserResult
	err := c.do(ctx, http.MethodPost, "/users", nil, req, &out, "Failed to create user")
	return out, err
}

func (c *Client) GetUser(ctx context.Context, userID string) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(utils.Canonical(userID)), nil, nil, &out, "Failed to fetch user")
	return out, err
}

// UpdateUser sends names and type; a blank Password is omitted from the
// payload, meaning keep the current one.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (UserResult, error) {
	req.Password = utils.Canonical(req.Password)
	var out UserResult
	err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(utils.Canonical(userID)), nil, req, &out, "Failed to update user")
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, userID string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(utils.Canonical(userID)), nil, nil, &out, "Failed to delete user")
	return out.Message, err
}

func (c *Client) ListUsers(ctx context.Context, params ListParams) (models.UserPage, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", utils.Canonical(params.Search))
	}
	q.Set("page", strconv.Itoa(params.Page))
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	var out models.UserPage
	err := c.do(ctx, http.MethodGet, "/users", q, nil, &out, "Failed to fetch users")
	return out, err
}

// NextPage fetches the window after lastUserID. At the end of the data the
// server returns an empty page rather than an error; callers are expected
// to check HasNext before calling.
func (c *Client) NextPage(ctx context.Context, lastUserID string, size int) (models.UserPage, error) {
	q := url.Values{}
	q.Set("lastUserId", utils.Canonical(lastUserID))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	var out models.UserPage
	err := c.do(ctx, http.MethodGet, "/users/page/next", q, nil, &out, "Failed to fetch next page")
	return out, err
}

func (c *Client) PreviousPage(ctx context.Context, firstUserID string, size int) (models.UserPage, error) {
	q := url.Values{}
	q.Set("firstUserId", utils.Canonical(firstUserID))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	var out models.UserPage
	err := c.do(ctx, http.MethodGet, "/users/page/previous", q, nil, &out, "Failed to fetch previous page")
	return out, err
}

// ExportRoster downloads the PDF user roster report.
func (c *Client) ExportRoster(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/export", nil)
	if err != nil {
		return nil, &APIError{Kind: KindServer, Message: "Failed to export roster", Err: err}
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Message: "Failed to export roster", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload errPayload
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		message := payload.Message
		if message == "" {
			message = "Failed to export roster"
		}
		return nil, &APIError{Kind: kindFromCode(payload.Code, resp.StatusCode), Message: message, Status: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

type errPayload struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, fallback string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &APIError{Kind: KindServer, Message: fallback, Err: err}
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &APIError{Kind: KindServer, Message: fallback, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// no response at all: a transport failure, distinct from any
		// server-side rejection
		return &APIError{Kind: KindTransport, Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload errPayload
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		message := payload.Message
		if message == "" {
			message = fallback
		}
		return &APIError{
			Kind:    kindFromCode(payload.Code, resp.StatusCode),
			Message: message,
			Status:  resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Kind:    KindServer,
			Message: fmt.Sprintf("%s: malformed response", fallback),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}
	return nil
}
