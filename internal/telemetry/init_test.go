package telemetry

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	tests := map[string]*InitOpenTelemetry{
		"exporters-enabled": {
			Logger: log.New(&strings.Builder{}, "", 0),
		},
		"exporters-disabled": {
			Logger:          log.New(&strings.Builder{}, "", 0),
			TracesEndpoint:  "-",
			MetricsEndpoint: "-",
		},
		"only-traces": {
			Logger:          log.New(&strings.Builder{}, "", 0),
			MetricsEndpoint: "-",
		},
	}

	for name, init := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, err := init.Initialize(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, ctx)
			init.Close()
		})
	}
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0)}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewHttpClient_SingleAttempt(t *testing.T) {
	tests := map[string]struct {
		status int
	}{
		"ok":                    {status: http.StatusOK},
		"not-found":             {status: http.StatusNotFound},
		"internal-server-error": {status: http.StatusInternalServerError},
		"service-unavailable":   {status: http.StatusServiceUnavailable},
		"too-many-requests":     {status: http.StatusTooManyRequests},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))
			defer srv.Close()

			client := NewHttpClient(log.New(io.Discard, "", 0))
			resp, err := client.Get(srv.URL)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "body", string(body))
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestNewHttpClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewHttpClient(log.New(io.Discard, "", 0))
	resp, err := client.Get(url)
	if resp != nil {
		resp.Body.Close() //nolint:errcheck
	}
	assert.Error(t, err)
}

func TestSingleAttemptPolicy(t *testing.T) {
	retry, err := singleAttemptPolicy(context.Background(), &http.Response{StatusCode: http.StatusBadGateway}, nil)
	assert.False(t, retry)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	retry, err = singleAttemptPolicy(ctx, nil, nil)
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)
}
