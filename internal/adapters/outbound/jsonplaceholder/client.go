// Package jsonplaceholder reads users from a JSONPlaceholder-compatible REST API.
//
// APIClient is the transport stage: one GET per call, status validation and
// JSON decoding, failing with a *TransportError. UserRepository maps the wire
// records into domain users and translates every failure into the domain
// error set before it leaves the package.
package jsonplaceholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the public JSONPlaceholder endpoint.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Endpoint identifies a logical read operation on the users API.
type Endpoint struct {
	Name string
	Path string
}

// UsersEndpoint lists every user.
func UsersEndpoint() Endpoint {
	return Endpoint{Name: "list-users", Path: "/users"}
}

// UserEndpoint reads a single user by id.
func UserEndpoint(id int) Endpoint {
	return Endpoint{Name: "get-user", Path: "/users/" + strconv.Itoa(id)}
}

// APIClient is a thin client for the users API.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a new client
func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	return APIClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// ListUsers fetches /users.
func (c APIClient) ListUsers(ctx context.Context) ([]UserRecord, error) {
	return fetch[[]UserRecord](ctx, c, UsersEndpoint())
}

// GetUser fetches /users/{id}.
func (c APIClient) GetUser(ctx context.Context, id int) (UserRecord, error) {
	return fetch[UserRecord](ctx, c, UserEndpoint(id))
}

// fetch performs exactly one GET against the endpoint and decodes the body into T.
func fetch[T any](ctx context.Context, c APIClient, e Endpoint) (T, error) {
	var out T

	req, err := c.newGetRequest(ctx, e)
	if err != nil {
		return out, newInvalidURLErr(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, newUnknownErr(fmt.Errorf("http do: %w", err))
	}
	if resp == nil {
		return out, newInvalidResponseErr()
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == 0 {
		return out, newInvalidResponseErr()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return out, newServerErr(resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, newUnknownErr(fmt.Errorf("read response: %w", err))
	}

	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, newDecodingErr(err)
	}

	return out, nil
}

func (c APIClient) newGetRequest(ctx context.Context, e Endpoint) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, e.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}
