package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"donlouis-club-backend/internal/model"
)

func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Load(c.Request.Context()))
}

// adminPinHeader authorizes settings writes. The owner panel sends the
// PIN it collected from the operator with every mutating call.
const adminPinHeader = "X-Admin-Pin"

func (h *Handler) updateSettings(c *gin.Context) {
	if !h.settings.VerifyAdminPIN(c.GetHeader(adminPinHeader)) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin PIN"})
		return
	}

	var edited model.AdminSettings
	if err := c.ShouldBindJSON(&edited); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.settings.Update(c.Request.Context(), edited))
}

type pinRequest struct {
	Pin string `json:"pin"`
}

func (h *Handler) verifyCashierPIN(c *gin.Context) {
	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": h.settings.VerifyCashierPIN(req.Pin)})
}

func (h *Handler) verifyAdminPIN(c *gin.Context) {
	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": h.settings.VerifyAdminPIN(req.Pin)})
}

// reportActivity runs the inactivity check for the signed-in member.
// The client calls it when the app comes to the foreground; the answer
// says whether the win-back prompt should be offered now.
func (h *Handler) reportActivity(c *gin.Context) {
	prompt := h.profiles.CheckInactivity(time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{"inactivityPrompt": prompt})
}
