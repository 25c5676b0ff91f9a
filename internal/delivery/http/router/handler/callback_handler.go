package handler

import (
	"log/slog"
	"net/http"

	"wallet/internal/delivery/http/response"
	"wallet/internal/domain/entity"
	"wallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CallbackHandlerParams holds dependencies for CallbackHandler, injected by Fx.
type CallbackHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// CallbackHandler receives asynchronous status callbacks from the payment
// provider and the loyalty credential checker. Each callback mutates the
// upstream status and re-reconciles the affected pairings.
type CallbackHandler struct {
	walletUC usecase.WalletUsecase
	logger   *slog.Logger
}

// NewCallbackHandler is the constructor for CallbackHandler.
func NewCallbackHandler(params CallbackHandlerParams) *CallbackHandler {
	return &CallbackHandler{
		walletUC: params.WalletUC,
		logger:   params.Logger,
	}
}

// PaymentStatusRequest represents a provider payment account status callback.
type PaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active invalid inactive"`
}

// MembershipStatusRequest represents a loyalty credential check result.
type MembershipStatusRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=pending auth_in_progress active invalid_credentials unauthorised"`
}

// UpdatePaymentAccountStatus applies a provider status callback.
func (h *CallbackHandler) UpdatePaymentAccountStatus(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment account ID")
	}

	var req PaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.walletUC.UpdatePaymentAccountStatus(c.Request().Context(), accountID, entity.PaymentAccountStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment account status updated successfully")
}

// UpdateMembershipStatus applies a credential check result for one wallet's
// membership of a loyalty account.
func (h *CallbackHandler) UpdateMembershipStatus(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loyalty account ID")
	}

	var req MembershipStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.walletUC.UpdateMembershipStatus(c.Request().Context(), req.UserID, accountID, entity.MembershipStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Membership status updated successfully")
}
