package jsonplaceholder

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	leanne = UserRecord{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Website:  "hildegard.org",
		Company: CompanyRecord{
			Name:        "Romaguera-Crona",
			CatchPhrase: "Multi-layered client-server neural-net",
			BS:          "harness real-time e-markets",
		},
		Address: AddressRecord{
			Street:  "Kulas Light",
			Suite:   "Apt. 556",
			City:    "Gwenborough",
			Zipcode: "92998-3874",
			Geo:     GeoRecord{Lat: "-37.3159", Lng: "81.1496"},
		},
	}
	ervin = UserRecord{
		ID:       2,
		Name:     "Ervin Howell",
		Username: "Antonette",
		Email:    "Shanna@melissa.tv",
		Phone:    "010-692-6593 x09125",
		Website:  "anastasia.net",
		Company: CompanyRecord{
			Name:        "Deckow-Crist",
			CatchPhrase: "Proactive didactic contingency",
			BS:          "synergize scalable supply-chains",
		},
		Address: AddressRecord{
			Street:  "Victor Plains",
			Suite:   "Suite 879",
			City:    "Wisokyburgh",
			Zipcode: "90566-7771",
			Geo:     GeoRecord{Lat: "-43.9509", Lng: "-34.4618"},
		},
	}
)

// roundTripperFunc lets tests fake responses the network stack would never produce.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// usersAPIServer serves the fixture users and counts the requests it receives.
func usersAPIServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	fixture, err := os.ReadFile("testdata/users.json")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	})
	mux.HandleFunc("GET /users/1", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Leanne Graham","username":"Bret","email":"Sincere@april.biz",
			"address":{"street":"Kulas Light","suite":"Apt. 556","city":"Gwenborough","zipcode":"92998-3874",
			"geo":{"lat":"-37.3159","lng":"81.1496"}},"phone":"1-770-736-8031 x56442","website":"hildegard.org",
			"company":{"name":"Romaguera-Crona","catchPhrase":"Multi-layered client-server neural-net","bs":"harness real-time e-markets"}}`))
	})
	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestEndpoints(t *testing.T) {
	assert.Equal(t, Endpoint{Name: "list-users", Path: "/users"}, UsersEndpoint())
	assert.Equal(t, Endpoint{Name: "get-user", Path: "/users/42"}, UserEndpoint(42))
}

func TestAPIClient_ListUsers(t *testing.T) {
	var hits atomic.Int32
	srv := usersAPIServer(t, &hits)
	client := NewAPIClient(srv.URL, srv.Client())

	got, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []UserRecord{leanne, ervin}, got)
	assert.Equal(t, int32(1), hits.Load())
}

func TestAPIClient_GetUser(t *testing.T) {
	tests := map[string]struct {
		id           int
		expectedUser UserRecord
		expectedErr  *TransportError
	}{
		"found": {
			id:           1,
			expectedUser: leanne,
		},
		"not-found": {
			id:          999,
			expectedErr: &TransportError{Kind: TransportErrorKind_ServerError, StatusCode: http.StatusNotFound},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var hits atomic.Int32
			srv := usersAPIServer(t, &hits)
			client := NewAPIClient(srv.URL, srv.Client())

			got, err := client.GetUser(context.Background(), tt.id)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedUser, got)
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestAPIClient_Failures(t *testing.T) {
	tests := map[string]struct {
		baseURL      func(t *testing.T) string
		httpClient   *http.Client
		expectedKind TransportErrorKind
		expectedCode int
	}{
		"invalid-url": {
			baseURL:      func(t *testing.T) string { return "://bad-url" },
			httpClient:   http.DefaultClient,
			expectedKind: TransportErrorKind_InvalidURL,
		},
		"status-zero": {
			baseURL: func(t *testing.T) string { return "http://users.local" },
			httpClient: &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: 0, Body: io.NopCloser(strings.NewReader("[]"))}, nil
			})},
			expectedKind: TransportErrorKind_InvalidResponse,
		},
		"server-error": {
			baseURL: func(t *testing.T) string {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
				t.Cleanup(srv.Close)
				return srv.URL
			},
			httpClient:   http.DefaultClient,
			expectedKind: TransportErrorKind_ServerError,
			expectedCode: http.StatusInternalServerError,
		},
		"not-modified": {
			baseURL: func(t *testing.T) string {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotModified)
				}))
				t.Cleanup(srv.Close)
				return srv.URL
			},
			httpClient:   http.DefaultClient,
			expectedKind: TransportErrorKind_ServerError,
			expectedCode: http.StatusNotModified,
		},
		"malformed-body": {
			baseURL: func(t *testing.T) string {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"id": "one"}`))
				}))
				t.Cleanup(srv.Close)
				return srv.URL
			},
			httpClient:   http.DefaultClient,
			expectedKind: TransportErrorKind_Decoding,
		},
		"connection-refused": {
			baseURL: func(t *testing.T) string {
				srv := httptest.NewServer(http.NotFoundHandler())
				srv.Close()
				return srv.URL
			},
			httpClient:   http.DefaultClient,
			expectedKind: TransportErrorKind_Unknown,
		},
		"round-tripper-error": {
			baseURL: func(t *testing.T) string { return "http://users.local" },
			httpClient: &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: no route to host")
			})},
			expectedKind: TransportErrorKind_Unknown,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewAPIClient(tt.baseURL(t), tt.httpClient)

			_, err := client.GetUser(context.Background(), 1)

			var te *TransportError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.expectedKind, te.Kind)
			assert.Equal(t, tt.expectedCode, te.StatusCode)
		})
	}
}

func TestAPIClient_ListUsers_DecodingObjectAsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	_, err := NewAPIClient(srv.URL, srv.Client()).ListUsers(context.Background())

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, TransportErrorKind_Decoding, te.Kind)
	assert.Contains(t, te.Message, "cannot unmarshal object")
}

func TestAPIClient_CanceledContext(t *testing.T) {
	var hits atomic.Int32
	srv := usersAPIServer(t, &hits)
	client := NewAPIClient(srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListUsers(ctx)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, TransportErrorKind_Unknown, te.Kind)
	assert.ErrorIs(t, err, context.Canceled)
}
