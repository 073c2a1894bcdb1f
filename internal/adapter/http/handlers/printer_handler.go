package handlers

import (
	"net/http"

	response "chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/usecase"
	"chromaprint/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PrinterHandler struct {
	usecase usecase.IPrinterUseCase
	log     *zap.Logger
}

func NewPrinterHandler(uc usecase.IPrinterUseCase, log *zap.Logger) *PrinterHandler {
	return &PrinterHandler{usecase: uc, log: log}
}

// ListPrinters godoc
// @Summary      List the printer catalog
// @Tags         printers
// @Produce      json
// @Success      200  {object}  response.PrinterListResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/printers [get]
func (h *PrinterHandler) ListPrinters(c *gin.Context) {
	printers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.log.Error("list printers failed", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrinters(printers))
}
