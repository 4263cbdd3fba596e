package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/middleware"
	"github.com/minibanco/minibanco/pkg/config"
)

// RegisterRoutes mounts the public routes at the root and the authenticated
// surface under /api/v1. Identification is best-effort everywhere; /api/v1
// additionally requires it.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerTaxIDValidation()

	r.Use(middleware.Identify(cfg.JWTSecret, !cfg.IsProduction))

	registerHomeRoutes(r)
	registerPublicAccountRoutes(r, services.Account, services.PixKey)
	registerPublicStatementRoutes(r, services.Ledger)
	registerPublicPixRoutes(r, services.PixKey)

	api := r.Group("/api/v1")
	api.Use(middleware.RequireAuth())
	{
		registerAccountRoutes(api, services.Account, services.PixKey)
		registerOperationRoutes(api, services.Account)
		registerTransferRoutes(api, services.Transfer)
		registerPixRoutes(api, services.PixKey, services.Transfer)
		registerStatementRoutes(api, services.Ledger)
	}
}

// registerTaxIDValidation wires the "taxid" binding tag: digits only, person
// (11) or company (14) length.
func registerTaxIDValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != 11 && len(value) != 14 {
			return false
		}
		for _, c := range value {
			if c < '0' || c > '9' {
				return false
			}
		}
		return true
	})
}
