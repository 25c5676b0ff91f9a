// Package activation implements the card-network activation gateway client
// over HTTP.
package activation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"wallet/config"
	"wallet/internal/domain/service"

	"github.com/pkg/errors"
)

// defaultTimeout keeps gateway calls sub-second so a slow network round trip
// never holds a reconciliation response hostage.
const defaultTimeout = 800 * time.Millisecond

// httpGateway implements the service.ActivationGateway interface against the
// card network's REST API.
type httpGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGateway is the constructor for httpGateway.
func NewHTTPGateway(cfg *config.ActivationConfig, logger *slog.Logger) service.ActivationGateway {
	timeout := defaultTimeout
	baseURL := ""
	if cfg != nil {
		baseURL = cfg.BaseURL
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &httpGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Activate tells the network to start matching transactions on the link.
func (g *httpGateway) Activate(ctx context.Context, req *service.ActivationRequest) error {
	return g.call(ctx, "activate", req)
}

// Deactivate tells the network to stop matching transactions on the link.
func (g *httpGateway) Deactivate(ctx context.Context, req *service.ActivationRequest) error {
	return g.call(ctx, "deactivate", req)
}

// call posts the request to /links/{id}/{action}. The base link ID in the
// path is the network-side idempotency key, so replaying a call that already
// succeeded returns success again.
func (g *httpGateway) call(ctx context.Context, action string, req *service.ActivationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return &service.GatewayError{Retryable: false, Err: errors.WithStack(err)}
	}

	url := fmt.Sprintf("%s/links/%s/%s", g.baseURL, req.BaseLinkID, action)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &service.GatewayError{Retryable: false, Err: errors.WithStack(err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	g.logger.Debug("Calling activation gateway",
		slog.String("action", action),
		slog.String("base_link_id", req.BaseLinkID.String()),
	)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		// Transport failures and timeouts are worth replaying later.
		return &service.GatewayError{Retryable: true, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Drain a bounded slice of the body for the error message.
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	gwErr := &service.GatewayError{
		StatusCode: resp.StatusCode,
		Retryable:  isRetryableStatus(resp.StatusCode),
		Err:        errors.Errorf("gateway %s returned %d: %s", action, resp.StatusCode, snippet),
	}

	return gwErr
}

// isRetryableStatus classifies HTTP statuses: server-side failures and
// throttling may succeed on replay, client-side rejections never will.
func isRetryableStatus(status int) bool {
	if status >= 500 {
		return true
	}

	return status == http.StatusTooManyRequests || status == http.StatusRequestTimeout
}
