package handlers

import (
	"net/http"

	response "chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the liveness and diagnostics routes.
type StatusHandler struct {
	probe interfaces.IStoreProbe
}

func NewStatusHandler(probe interfaces.IStoreProbe) *StatusHandler {
	return &StatusHandler{probe: probe}
}

// Root godoc
// @Summary  Liveness message
// @Tags     status
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   / [get]
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ChromaPrint Backend is live"})
}

// Hello godoc
// @Summary  Greeting used by the frontend to check the API
// @Tags     status
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /api/hello [get]
func (h *StatusHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Hello from ChromaPrint API"})
}

// Diagnostics godoc
// @Summary  Document store diagnostics
// @Tags     status
// @Produce  json
// @Success  200  {object}  interfaces.StoreStatus
// @Router   /test [get]
func (h *StatusHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.probe.Probe(c.Request.Context()))
}
