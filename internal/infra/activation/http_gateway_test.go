package activation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet/config"
	"wallet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateway(baseURL string, timeout time.Duration) service.ActivationGateway {
	return NewHTTPGateway(&config.ActivationConfig{BaseURL: baseURL, Timeout: timeout}, testLogger())
}

func TestHTTPGateway_Activate_Success(t *testing.T) {
	linkID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, fmt.Sprintf("/links/%s/activate", linkID), r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req service.ActivationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, linkID, req.BaseLinkID)
		assert.Equal(t, "tok-1", req.PaymentToken)
		assert.Equal(t, "coffee-club", req.PlanSlug)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	gw := newGateway(server.URL, time.Second)
	err := gw.Activate(context.Background(), &service.ActivationRequest{
		BaseLinkID:   linkID,
		PaymentToken: "tok-1",
		PlanSlug:     "coffee-club",
	})
	require.NoError(t, err)
}

func TestHTTPGateway_Deactivate_Success(t *testing.T) {
	linkID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/links/%s/deactivate", linkID), r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gw := newGateway(server.URL, time.Second)
	err := gw.Deactivate(context.Background(), &service.ActivationRequest{BaseLinkID: linkID})
	require.NoError(t, err)
}

func TestHTTPGateway_ServerErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "temporary outage", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gw := newGateway(server.URL, time.Second)
	err := gw.Activate(context.Background(), &service.ActivationRequest{BaseLinkID: uuid.New()})
	require.Error(t, err)

	var gwErr *service.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusServiceUnavailable, gwErr.StatusCode)
	assert.True(t, gwErr.Retryable)
	assert.True(t, service.IsRetryableGatewayError(err))
}

func TestHTTPGateway_ClientErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown plan slug", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	gw := newGateway(server.URL, time.Second)
	err := gw.Activate(context.Background(), &service.ActivationRequest{BaseLinkID: uuid.New()})
	require.Error(t, err)

	var gwErr *service.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusUnprocessableEntity, gwErr.StatusCode)
	assert.False(t, gwErr.Retryable)
	assert.Contains(t, gwErr.Error(), "unknown plan slug")
}

func TestHTTPGateway_TransportFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := newGateway(server.URL, time.Second)
	err := gw.Activate(context.Background(), &service.ActivationRequest{BaseLinkID: uuid.New()})
	require.Error(t, err)
	assert.True(t, service.IsRetryableGatewayError(err))
}

func TestIsRetryableStatus(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusTooManyRequests, true},
		{http.StatusRequestTimeout, true},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isRetryableStatus(tt.status), "status %d", tt.status)
	}
}
