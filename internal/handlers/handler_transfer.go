package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/middleware"
)

// transferHandler handles account-to-account transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func registerTransferRoutes(rg *gin.RouterGroup, ts portssvc.TransferSvcFacade) {
	h := &transferHandler{transferService: ts}

	rg.POST("/transfers", h.transfer)
}

func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	resp, err := h.transferService.TransferByID(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transfer settled",
		"source_account_id", resp.SourceAccountID,
		"dest_account_id", resp.DestinationAccountID)
	c.JSON(http.StatusOK, resp)
}
