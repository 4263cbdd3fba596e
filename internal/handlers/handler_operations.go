package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minibanco/minibanco/internal/core/domain"
	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/middleware"
)

// operationsHandler handles deposits and withdrawals.
type operationsHandler struct {
	accountService portssvc.AccountSvcFacade
}

func registerOperationRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade) {
	h := &operationsHandler{accountService: as}

	ops := rg.Group("/operations")
	{
		ops.POST("/deposit", h.deposit)
		ops.POST("/withdraw", h.withdraw)
	}
}

func (h *operationsHandler) deposit(c *gin.Context) {
	h.operate(c, domain.EntryDeposit, h.accountService.Deposit)
}

func (h *operationsHandler) withdraw(c *gin.Context) {
	h.operate(c, domain.EntryWithdraw, h.accountService.Withdraw)
}

func (h *operationsHandler) operate(c *gin.Context, kind domain.EntryKind, op func(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.Account, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for operation", "kind", string(kind), "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	account, err := op(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Operation settled", "kind", string(kind), "account_id", account.AccountID)
	c.JSON(http.StatusOK, dto.ToOperationResponse(account, kind, req.Amount))
}
