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

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	PLLUC  usecase.PLLUsecase
	Logger *slog.Logger
}

// LinkHandler exposes link requests, unlink requests and link state queries.
type LinkHandler struct {
	pllUC  usecase.PLLUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler.
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		pllUC:  params.PLLUC,
		logger: params.Logger,
	}
}

// LinkRequest pairs one loyalty card in one wallet with a batch of payment
// accounts.
type LinkRequest struct {
	UserID            uuid.UUID   `json:"user_id" validate:"required"`
	LoyaltyAccountID  uuid.UUID   `json:"loyalty_account_id" validate:"required"`
	PaymentAccountIDs []uuid.UUID `json:"payment_account_ids" validate:"required,min=1,dive,required"`
}

// PairingResponse is the per-pairing outcome of a link request.
type PairingResponse struct {
	PaymentAccountID string `json:"payment_account_id,omitempty"`
	BaseLinkID       string `json:"base_link_id,omitempty"`
	ActiveLink       bool   `json:"active_link"`
	State            string `json:"state,omitempty"`
	ReasonSlug       string `json:"reason_slug,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Link handles a link request batch.
func (h *LinkHandler) Link(c echo.Context) error {
	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.pllUC.Link(c.Request().Context(), &usecase.LinkInput{
		UserID:            req.UserID,
		LoyaltyAccountID:  req.LoyaltyAccountID,
		PaymentAccountIDs: req.PaymentAccountIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*PairingResponse, 0, len(output.Results))
	for _, result := range output.Results {
		results = append(results, toPairingResponse(result))
	}

	return response.Success(c, http.StatusOK, results, "Link request processed")
}

// GetUserLinkViews returns the user's views across all base links of one
// loyalty card.
func (h *LinkHandler) GetUserLinkViews(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loyalty account ID")
	}

	views, err := h.pllUC.GetUserLinkViews(c.Request().Context(), userID, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views, "Link views retrieved successfully")
}

// GetBaseLink returns the wallet-independent link record for one pairing.
func (h *LinkHandler) GetBaseLink(c echo.Context) error {
	paymentAccountID, err := uuid.Parse(c.QueryParam("paymentAccountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment account ID")
	}

	loyaltyAccountID, err := uuid.Parse(c.QueryParam("loyaltyAccountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loyalty account ID")
	}

	link, err := h.pllUC.GetBaseLink(c.Request().Context(), paymentAccountID, loyaltyAccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link, "Base link retrieved successfully")
}

// UnlinkPaymentAccount removes the user's views of every pairing containing
// the payment account.
func (h *LinkHandler) UnlinkPaymentAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment account ID")
	}

	if err := h.pllUC.UnlinkPaymentAccount(c.Request().Context(), userID, accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment account unlinked successfully")
}

// UnlinkLoyaltyAccount removes the user's views of every pairing containing
// the loyalty account.
func (h *LinkHandler) UnlinkLoyaltyAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loyalty account ID")
	}

	if err := h.pllUC.UnlinkLoyaltyAccount(c.Request().Context(), userID, accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Loyalty account unlinked successfully")
}

func toPairingResponse(result *usecase.PairingResult) *PairingResponse {
	resp := &PairingResponse{}
	if result.BaseLink != nil {
		resp.BaseLinkID = result.BaseLink.ID.String()
		resp.PaymentAccountID = result.BaseLink.PaymentAccountID.String()
		resp.ActiveLink = result.BaseLink.ActiveLink
	}
	if result.View != nil {
		resp.State = string(result.View.State)
		resp.ReasonSlug = string(result.View.ReasonSlug)
	}
	if result.Failed != nil {
		resp.Error = result.Failed.Error()
	}

	return resp
}
