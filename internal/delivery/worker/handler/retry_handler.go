// Package handler contains the Pub/Sub push handlers for the retry worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wallet/config"
	deliverycontext "wallet/internal/delivery/context"
	"wallet/internal/domain/constants"
	"wallet/internal/domain/repository"
	"wallet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// defaultMaxAttempts caps gateway replays per job when the config leaves the
// limit unset.
const defaultMaxAttempts = 10

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// RetryHandler replays failed activation gateway calls delivered as Pub/Sub
// push messages. Replays are idempotent: the base link ID is the network-side
// idempotency key, and a job whose action no longer matches the committed
// link state is dropped as superseded.
type RetryHandler struct {
	verifyPushAuth bool
	maxAttempts    int
	logger         *slog.Logger
	gateway        service.ActivationGateway
	retryPublisher service.RetryPublisher
	baseLinkRepo   repository.BaseLinkRepository
}

// RetryHandlerParams holds dependencies for the RetryHandler
type RetryHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Gateway        service.ActivationGateway
	RetryPublisher service.RetryPublisher
	BaseLinkRepo   repository.BaseLinkRepository
}

// NewRetryHandler creates a new Pub/Sub push handler for retry jobs
func NewRetryHandler(params RetryHandlerParams) *RetryHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.Retry != nil &&
		params.Config.Retry.Provider == constants.RetryProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	maxAttempts := defaultMaxAttempts
	if params.Config.Retry != nil && params.Config.Retry.MaxAttempts > 0 {
		maxAttempts = params.Config.Retry.MaxAttempts
	}

	return &RetryHandler{
		verifyPushAuth: verifyPushAuth,
		maxAttempts:    maxAttempts,
		logger:         params.Logger,
		gateway:        params.Gateway,
		retryPublisher: params.RetryPublisher,
		baseLinkRepo:   params.BaseLinkRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *RetryHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse retry job
	var job service.RetryJob
	if err := json.Unmarshal(data, &job); err != nil {
		h.logger.Error("[Worker] Failed to parse retry job", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &job)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing retry job",
		slog.String("base_link_id", job.BaseLinkID),
		slog.String("action", string(job.Action)),
		slog.Int("attempt", job.Attempt),
	)

	if err := h.processJob(ctx, &job); err != nil {
		reqLogger.Error("[Worker] Failed to process retry job",
			slog.String("base_link_id", job.BaseLinkID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Retry job processed successfully",
		slog.String("base_link_id", job.BaseLinkID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, job, or generates a new one
func (h *RetryHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, job *service.RetryJob) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try job field (from JSON payload)
	if job.RequestID != "" {
		return job.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processJob replays one gateway call if the job still matches committed
// link state.
func (h *RetryHandler) processJob(ctx context.Context, job *service.RetryJob) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	baseLinkID, err := uuid.Parse(job.BaseLinkID)
	if err != nil {
		return errors.WithStack(err)
	}

	stale, err := h.isSuperseded(ctx, baseLinkID, job.Action)
	if err != nil {
		return newRetryableError(err)
	}
	if stale {
		logger.Info("[Worker] Retry job superseded by newer link state, dropping",
			slog.String("base_link_id", job.BaseLinkID),
			slog.String("action", string(job.Action)),
		)

		return nil
	}

	req := &service.ActivationRequest{
		BaseLinkID:   baseLinkID,
		PaymentToken: job.PaymentToken,
		PlanSlug:     job.PlanSlug,
	}

	switch job.Action {
	case service.RetryActionActivate:
		err = h.gateway.Activate(ctx, req)
	case service.RetryActionDeactivate:
		err = h.gateway.Deactivate(ctx, req)
	default:
		return errors.Errorf("unknown retry action: %s", job.Action)
	}

	if err == nil {
		return nil
	}

	if !service.IsRetryableGatewayError(err) {
		// The network rejected the call outright; replaying cannot help.
		return errors.Wrap(err, "gateway rejected replay")
	}

	if job.Attempt >= h.maxAttempts {
		logger.Error("[Worker] Giving up on retry job, attempts exhausted",
			slog.String("base_link_id", job.BaseLinkID),
			slog.String("action", string(job.Action)),
			slog.Int("attempt", job.Attempt),
			slog.Any("error", err),
		)

		return nil
	}

	// Re-enqueue with a bumped attempt counter so the give-up bound holds
	// across redeliveries.
	next := *job
	next.Attempt++
	if pubErr := h.retryPublisher.PublishRetryJob(ctx, &next); pubErr != nil {
		// Fall back to Pub/Sub redelivery of the original message.
		return newRetryableError(pubErr)
	}

	return nil
}

// isSuperseded reports whether the committed link state no longer wants the
// job's action.
func (h *RetryHandler) isSuperseded(ctx context.Context, baseLinkID uuid.UUID, action service.RetryAction) (bool, error) {
	link, err := h.baseLinkRepo.FindByID(ctx, baseLinkID)
	if err != nil {
		if errors.Is(err, repository.ErrBaseLinkNotFound) {
			// A deleted link must still be deactivated on the network side;
			// an activate for it is stale.
			return action == service.RetryActionActivate, nil
		}

		return false, err
	}

	if action == service.RetryActionActivate {
		return !link.ActiveLink, nil
	}

	return link.ActiveLink, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
