package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/middleware"
)

// pixHandler handles the PIX key directory and PIX-addressed transfers.
type pixHandler struct {
	pixKeyService   portssvc.PixKeySvcFacade
	transferService portssvc.TransferSvcFacade
}

func newPixHandler(ps portssvc.PixKeySvcFacade, ts portssvc.TransferSvcFacade) *pixHandler {
	return &pixHandler{
		pixKeyService:   ps,
		transferService: ts,
	}
}

// registerPublicPixRoutes registers the unauthenticated recipient preview.
func registerPublicPixRoutes(r *gin.Engine, ps portssvc.PixKeySvcFacade) {
	h := newPixHandler(ps, nil)

	r.POST("/pix/resolve", h.resolveKey)
}

// registerPixRoutes registers the authenticated key directory routes.
func registerPixRoutes(rg *gin.RouterGroup, ps portssvc.PixKeySvcFacade, ts portssvc.TransferSvcFacade) {
	h := newPixHandler(ps, ts)

	pix := rg.Group("/pix")
	{
		pix.POST("/keys", h.registerKey)
		pix.GET("/keys", h.listKeys)
		pix.DELETE("/keys", h.removeKey)
		pix.POST("/transfer", h.pixTransfer)
	}
}

func (h *pixHandler) registerKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPixKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPixKey", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	key, err := h.pixKeyService.RegisterKey(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("PIX key registered", "key_type", string(key.Type), "account_id", key.AccountID)
	c.JSON(http.StatusCreated, dto.ToPixKeyResponse(key))
}

func (h *pixHandler) listKeys(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, keys, err := h.pixKeyService.ListKeys(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListPixKeysResponse{
		AccountID: accountID,
		PixKeys:   dto.ToPixKeyResponseSlice(keys),
	})
}

func (h *pixHandler) removeKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RemovePixKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RemovePixKey", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.pixKeyService.RemoveKey(c.Request.Context(), ownerID, req.Value); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("PIX key removed", "owner_id", ownerID)
	c.Status(http.StatusNoContent)
}

// resolveKey is the public recipient preview for a transfer.
func (h *pixHandler) resolveKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolvePixKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolvePixKey", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	key, err := h.pixKeyService.ResolveKey(c.Request.Context(), req.Value)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToResolvePixKeyResponse(key))
}

func (h *pixHandler) pixTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PixTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PixTransfer", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	resp, err := h.transferService.TransferByKey(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("PIX transfer settled", "holder_name", resp.HolderName)
	c.JSON(http.StatusOK, resp)
}
