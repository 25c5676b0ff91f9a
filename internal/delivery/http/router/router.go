// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wallet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WalletHandler   *handler.WalletHandler
	LinkHandler     *handler.LinkHandler
	CallbackHandler *handler.CallbackHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	walletHandler   *handler.WalletHandler
	linkHandler     *handler.LinkHandler
	callbackHandler *handler.CallbackHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		walletHandler:   params.WalletHandler,
		linkHandler:     params.LinkHandler,
		callbackHandler: params.CallbackHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Wallet inventory routes
	walletGroup := e.Group("/wallets/:userId")
	{
		walletGroup.POST("/payment-accounts", r.walletHandler.AddPaymentAccount)
		walletGroup.DELETE("/payment-accounts/:accountId", r.walletHandler.RemovePaymentAccount)
		walletGroup.POST("/loyalty-cards", r.walletHandler.AddLoyaltyCard)
		walletGroup.DELETE("/loyalty-cards/:accountId", r.walletHandler.RemoveLoyaltyCard)

		// Per-wallet link views and unlink operations
		walletGroup.GET("/loyalty-cards/:accountId/links", r.linkHandler.GetUserLinkViews)
		walletGroup.DELETE("/loyalty-cards/:accountId/links", r.linkHandler.UnlinkLoyaltyAccount)
		walletGroup.DELETE("/payment-accounts/:accountId/links", r.linkHandler.UnlinkPaymentAccount)
	}

	// Link routes
	linkGroup := e.Group("/links")
	{
		linkGroup.POST("", r.linkHandler.Link)
		linkGroup.GET("/base", r.linkHandler.GetBaseLink)
	}

	// Provider and credential-checker callbacks
	callbackGroup := e.Group("/callbacks")
	{
		callbackGroup.POST("/payment-accounts/:accountId/status", r.callbackHandler.UpdatePaymentAccountStatus)
		callbackGroup.POST("/loyalty-accounts/:accountId/membership-status", r.callbackHandler.UpdateMembershipStatus)
	}
}
