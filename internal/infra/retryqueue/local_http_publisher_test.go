package retryqueue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_WrapsJobInPushEnvelope(t *testing.T) {
	job := &service.RetryJob{
		RequestID:    "req-42",
		BaseLinkID:   uuid.New().String(),
		Action:       service.RetryActionActivate,
		PaymentToken: "tok-1",
		PlanSlug:     "coffee-club",
		Attempt:      2,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))

		var push PubSubPushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		assert.Equal(t, job.BaseLinkID, push.Message.MessageID)
		assert.Equal(t, "req-42", push.Message.Attributes["request_id"])
		assert.Equal(t, string(service.RetryActionActivate), push.Message.Attributes["action"])

		data, err := base64.StdEncoding.DecodeString(push.Message.Data)
		require.NoError(t, err)
		var decoded service.RetryJob
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *job, decoded)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, p.PublishRetryJob(context.Background(), job))
	require.NoError(t, p.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewLocalHTTPPublisher(server.URL, testLogger())
	err := p.PublishRetryJob(context.Background(), &service.RetryJob{
		BaseLinkID: uuid.New().String(),
		Action:     service.RetryActionDeactivate,
		Attempt:    1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
