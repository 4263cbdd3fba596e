package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/middleware"
)

// statementHandler serves account statements.
type statementHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerPublicStatementRoutes registers the by-id statement lookup.
func registerPublicStatementRoutes(r *gin.Engine, ls portssvc.LedgerSvcFacade) {
	h := &statementHandler{ledgerService: ls}

	r.GET("/accounts/:id/statement", h.statementByID)
}

// registerStatementRoutes registers the authenticated statement lookup.
func registerStatementRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := &statementHandler{ledgerService: ls}

	rg.GET("/statement", h.myStatement)
}

func statementLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}

func (h *statementHandler) statementByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.ledgerService.GetStatement(c.Request.Context(), c.Param("id"), statementLimit(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *statementHandler) myStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	resp, err := h.ledgerService.GetStatementByOwner(c.Request.Context(), ownerID, statementLimit(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
