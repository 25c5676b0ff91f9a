package handler

import (
	"log/slog"
	"net/http"

	"wallet/internal/delivery/http/response"
	"wallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// WalletHandler holds dependencies for wallet inventory handlers.
type WalletHandler struct {
	walletUC usecase.WalletUsecase
	logger   *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler.
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC: params.WalletUC,
		logger:   params.Logger,
	}
}

// AddPaymentAccountRequest represents the request body for adding a payment card.
type AddPaymentAccountRequest struct {
	Token string `json:"token" validate:"required"`
}

// AddLoyaltyCardRequest represents the request body for adding a loyalty card.
// LoyaltyAccountID joins a card that already exists in another wallet;
// otherwise PlanID and PlanSlug create a fresh account under the plan.
type AddLoyaltyCardRequest struct {
	LoyaltyAccountID uuid.UUID `json:"loyalty_account_id"`
	PlanID           uuid.UUID `json:"plan_id"`
	PlanSlug         string    `json:"plan_slug"`
}

// AddPaymentAccount handles registering a payment card in a wallet.
func (h *WalletHandler) AddPaymentAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req AddPaymentAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.walletUC.AddPaymentAccount(c.Request().Context(), &usecase.AddPaymentAccountInput{
		UserID: userID,
		Token:  req.Token,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account, "Payment account added successfully")
}

// RemovePaymentAccount handles taking a payment card out of a wallet.
func (h *WalletHandler) RemovePaymentAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment account ID")
	}

	if err := h.walletUC.RemovePaymentAccount(c.Request().Context(), userID, accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment account removed successfully")
}

// AddLoyaltyCard handles registering or joining a loyalty card in a wallet.
func (h *WalletHandler) AddLoyaltyCard(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req AddLoyaltyCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loyalty card input")
	}

	if req.LoyaltyAccountID == uuid.Nil && req.PlanID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Either loyalty_account_id or plan_id is required")
	}

	account, err := h.walletUC.AddLoyaltyCard(c.Request().Context(), &usecase.AddLoyaltyCardInput{
		UserID:           userID,
		LoyaltyAccountID: req.LoyaltyAccountID,
		PlanID:           req.PlanID,
		PlanSlug:         req.PlanSlug,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account, "Loyalty card added successfully")
}

// RemoveLoyaltyCard handles removing a loyalty card from a wallet.
func (h *WalletHandler) RemoveLoyaltyCard(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loyalty account ID")
	}

	if err := h.walletUC.RemoveLoyaltyCard(c.Request().Context(), userID, accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Loyalty card removed successfully")
}
