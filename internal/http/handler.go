// Package http is the gin delivery layer for the loyalty backend.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donlouis-club-backend/internal/service"
	"donlouis-club-backend/internal/session"
)

// Handler wires the HTTP routes to the services.
type Handler struct {
	registration *service.RegistrationService
	scan         *service.ScanService
	profiles     *service.ProfileService
	settings     *service.SettingsService
	sess         *session.Session
}

// NewHandler creates a new Handler instance.
func NewHandler(
	registration *service.RegistrationService,
	scan *service.ScanService,
	profiles *service.ProfileService,
	settings *service.SettingsService,
	sess *session.Session,
) *Handler {
	return &Handler{
		registration: registration,
		scan:         scan,
		profiles:     profiles,
		settings:     settings,
		sess:         sess,
	}
}

// RegisterRoutes registers all routes on the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		api.POST("/members", h.registerMember)
		api.POST("/members/:id/signin", h.signIn)
		api.GET("/members/:id", h.getProfile)
		api.PUT("/members/:id", h.updateProfile)
		api.GET("/members/:id/tier", h.getTier)

		api.POST("/scan", h.processScan)

		api.GET("/settings", h.getSettings)
		api.PUT("/settings", h.updateSettings)
		api.POST("/pin/cashier", h.verifyCashierPIN)
		api.POST("/pin/admin", h.verifyAdminPIN)

		api.POST("/session/activity", h.reportActivity)
		api.GET("/events", h.streamEvents)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
