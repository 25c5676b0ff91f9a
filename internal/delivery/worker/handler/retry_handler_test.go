package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet/config"
	"wallet/internal/domain/constants"
	"wallet/internal/domain/entity"
	"wallet/internal/domain/repository"
	"wallet/internal/domain/service"
	mockRepo "wallet/internal/mocks/repository"
	mockSvc "wallet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type retryHandlerMocks struct {
	gateway        *mockSvc.MockActivationGateway
	retryPublisher *mockSvc.MockRetryPublisher
	baseLinkRepo   *mockRepo.MockBaseLinkRepository
}

func newRetryHandler(t *testing.T, maxAttempts int) (*RetryHandler, *retryHandlerMocks) {
	m := &retryHandlerMocks{
		gateway:        mockSvc.NewMockActivationGateway(t),
		retryPublisher: mockSvc.NewMockRetryPublisher(t),
		baseLinkRepo:   mockRepo.NewMockBaseLinkRepository(t),
	}

	cfg := &config.Config{
		Retry: &config.RetryConfig{
			Provider:    constants.RetryProviderLocal,
			MaxAttempts: maxAttempts,
		},
	}
	cfg.Env.Env = constants.EnvDevelop

	h := NewRetryHandler(RetryHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Gateway:        m.gateway,
		RetryPublisher: m.retryPublisher,
		BaseLinkRepo:   m.baseLinkRepo,
	})

	return h, m
}

// newPushContext wraps a retry job in a Pub/Sub push envelope the way the
// subscription delivers it.
func newPushContext(t *testing.T, job *service.RetryJob) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var push PubSubMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = map[string]string{"request_id": "req-test"}
	push.Message.MessageID = job.BaseLinkID
	push.Subscription = "projects/local/subscriptions/pll-retry-sub"

	body, err := json.Marshal(push)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRetryHandler_ReplaysActivation(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID:   linkID.String(),
		Action:       service.RetryActionActivate,
		PaymentToken: "tok-1",
		PlanSlug:     "coffee-club",
		Attempt:      1,
	}

	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(&entity.BaseLink{ID: linkID, ActiveLink: true}, nil)
	m.gateway.EXPECT().
		Activate(mock.Anything, mock.MatchedBy(func(req *service.ActivationRequest) bool {
			return req.BaseLinkID == linkID && req.PaymentToken == "tok-1" && req.PlanSlug == "coffee-club"
		})).
		Return(nil)

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRetryHandler_DropsSupersededJob(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID: linkID.String(),
		Action:     service.RetryActionActivate,
		Attempt:    1,
	}

	// The link was deactivated after the job was queued; replaying the
	// activate would resurrect a dead link.
	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(&entity.BaseLink{ID: linkID, ActiveLink: false}, nil)

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	m.gateway.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestRetryHandler_DeactivatesDeletedLink(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID: linkID.String(),
		Action:     service.RetryActionDeactivate,
		Attempt:    1,
	}

	// A deleted base link still has to be turned off on the network side.
	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(nil, repository.ErrBaseLinkNotFound)
	m.gateway.EXPECT().Deactivate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).Return(nil)

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRetryHandler_DropsActivateForDeletedLink(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID: linkID.String(),
		Action:     service.RetryActionActivate,
		Attempt:    1,
	}

	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(nil, repository.ErrBaseLinkNotFound)

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	m.gateway.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestRetryHandler_FatalGatewayErrorIsDropped(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID: linkID.String(),
		Action:     service.RetryActionActivate,
		Attempt:    1,
	}

	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(&entity.BaseLink{ID: linkID, ActiveLink: true}, nil)
	m.gateway.EXPECT().Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).
		Return(&service.GatewayError{StatusCode: 422, Retryable: false, Err: errors.New("unknown plan")})

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	// 200 so Pub/Sub does not redeliver a job the network will never accept.
	assert.Equal(t, http.StatusOK, rec.Code)
	m.retryPublisher.AssertNotCalled(t, "PublishRetryJob", mock.Anything, mock.Anything)
}

func TestRetryHandler_RepublishesWithBumpedAttempt(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID:   linkID.String(),
		Action:       service.RetryActionActivate,
		PaymentToken: "tok-1",
		Attempt:      1,
	}

	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(&entity.BaseLink{ID: linkID, ActiveLink: true}, nil)
	m.gateway.EXPECT().Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).
		Return(&service.GatewayError{StatusCode: 503, Retryable: true, Err: errors.New("still down")})
	m.retryPublisher.EXPECT().
		PublishRetryJob(mock.Anything, mock.MatchedBy(func(next *service.RetryJob) bool {
			return next.BaseLinkID == job.BaseLinkID && next.Attempt == 2
		})).
		Return(nil)

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRetryHandler_GivesUpAfterMaxAttempts(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID: linkID.String(),
		Action:     service.RetryActionActivate,
		Attempt:    3,
	}

	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(&entity.BaseLink{ID: linkID, ActiveLink: true}, nil)
	m.gateway.EXPECT().Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).
		Return(&service.GatewayError{StatusCode: 503, Retryable: true, Err: errors.New("still down")})

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	m.retryPublisher.AssertNotCalled(t, "PublishRetryJob", mock.Anything, mock.Anything)
}

func TestRetryHandler_NacksWhenRepublishFails(t *testing.T) {
	h, m := newRetryHandler(t, 3)

	linkID := uuid.New()
	job := &service.RetryJob{
		BaseLinkID: linkID.String(),
		Action:     service.RetryActionActivate,
		Attempt:    1,
	}

	m.baseLinkRepo.EXPECT().FindByID(mock.Anything, linkID).
		Return(&entity.BaseLink{ID: linkID, ActiveLink: true}, nil)
	m.gateway.EXPECT().Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).
		Return(&service.GatewayError{StatusCode: 503, Retryable: true, Err: errors.New("still down")})
	m.retryPublisher.EXPECT().PublishRetryJob(mock.Anything, mock.AnythingOfType("*service.RetryJob")).
		Return(errors.New("publisher unavailable"))

	c, rec := newPushContext(t, job)
	require.NoError(t, h.HandlePush(c))
	// 503 NACKs the push so Pub/Sub redelivers the original message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRetryHandler_RejectsMalformedData(t *testing.T) {
	h, _ := newRetryHandler(t, 3)

	var push PubSubMessage
	push.Message.Data = "not-base64!!!"
	body, err := json.Marshal(push)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
