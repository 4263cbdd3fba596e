package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	pixKeyService  portssvc.PixKeySvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ps portssvc.PixKeySvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		pixKeyService:  ps,
	}
}

// registerPublicAccountRoutes registers the unauthenticated account routes.
func registerPublicAccountRoutes(r *gin.Engine, as portssvc.AccountSvcFacade, ps portssvc.PixKeySvcFacade) {
	h := newAccountHandler(as, ps)

	r.POST("/accounts", h.createAccount)
	r.GET("/accounts/:id", h.getAccount)
}

// registerAccountRoutes registers the authenticated account routes.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, ps portssvc.PixKeySvcFacade) {
	h := newAccountHandler(as, ps)

	rg.GET("/accounts/me", h.myAccount)
}

// createAccount opens the caller's account. Callers without any identity get
// an anonymous owner id minted for them, returned inside the response.
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		ownerID = "anon-" + uuid.NewString()[:8]
		logger.Info("No identity on account creation, minting anonymous owner", "owner_id", ownerID)
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, ownerID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Account created", "account_id", account.AccountID, "owner_id", ownerID)
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount is the public balance lookup by account id.
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(account))
}

// myAccount returns the caller's account together with its PIX keys.
func (h *accountHandler) myAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	_, keys, err := h.pixKeyService.ListKeys(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MyAccountResponse{
		AccountResponse: dto.ToAccountResponse(account),
		PixKeys:         dto.ToPixKeyResponseSlice(keys),
	})
}
