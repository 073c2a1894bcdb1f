package routes

import (
	"chromaprint/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI      = "/api"
	PathQuote    = "/quote"
	PathPayments = "/quote/:quote_id/payments"
)

type storefrontHandlers struct {
	estimate *handlers.EstimateHandler
	auth     *handlers.AuthHandler
	printers *handlers.PrinterHandler
	quotes   *handlers.QuoteHandler
	payments *handlers.QuotePaymentHandler
}

func addStatusRoutes(r gin.IRoutes, api *gin.RouterGroup, h *handlers.StatusHandler) {
	r.GET("/", h.Root)
	r.GET("/test", h.Diagnostics)
	api.GET("/hello", h.Hello)
}

func addStorefrontRoutes(rg *gin.RouterGroup, h storefrontHandlers, demoAuth gin.HandlerFunc) {
	rg.POST("/auth/login", h.auth.Login)
	rg.GET("/printers", h.printers.ListPrinters)
	rg.POST("/estimate", h.estimate.CreateEstimate)
	rg.GET("/account/orders", h.quotes.ListOrders)

	// Routes below require the demo token.
	rg.POST(PathQuote, demoAuth, h.quotes.SubmitQuote)

	payments := rg.Group(PathPayments, demoAuth)
	{
		payments.POST("", h.payments.CreatePayment)
		payments.GET("", h.payments.GetLatestPayment)
	}
}
