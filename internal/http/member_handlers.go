package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"donlouis-club-backend/internal/cache"
	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/pkg/memberid"
	"donlouis-club-backend/internal/tier"
)

type registerRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	FollowedSocial bool   `json:"followedSocial"`
}

func (h *Handler) registerMember(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "firstName and phone are required"})
		return
	}

	profile := h.registration.Register(c.Request.Context(), req.FirstName, req.Phone, req.FollowedSocial)
	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) signIn(c *gin.Context) {
	id := c.Param("id")
	if !memberid.Valid(id) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID format"})
		return
	}

	profile, err := h.profiles.SignIn(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, cache.ErrProfileNotCached) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No profile on this device"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) getProfile(c *gin.Context) {
	id := c.Param("id")
	if !memberid.Valid(id) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID format"})
		return
	}

	profile, err := h.profiles.Load(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, cache.ErrProfileNotCached) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No profile on this device"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) updateProfile(c *gin.Context) {
	id := c.Param("id")
	if !memberid.Valid(id) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID format"})
		return
	}

	var profile model.MemberProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if profile.MemberID != id {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Member ID mismatch"})
		return
	}

	updated := h.profiles.Update(c.Request.Context(), &profile)
	c.JSON(http.StatusOK, updated)
}

// getTier answers the membership tier view for the profile screen:
// current tier with its display metadata, plus progress to the next one.
func (h *Handler) getTier(c *gin.Context) {
	id := c.Param("id")
	if !memberid.Valid(id) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID format"})
		return
	}

	profile, err := h.profiles.Load(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, cache.ErrProfileNotCached) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No profile on this device"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	current := tier.Classify(profile.Points)
	c.JSON(http.StatusOK, gin.H{
		"tier":     current,
		"info":     tier.InfoFor(current),
		"progress": tier.Next(profile.Points),
	})
}

type scanRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// processScan always answers 200 with a typed result; the point-of-
// service device distinguishes outcomes by the result body, not by
// HTTP status.
func (h *Handler) processScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "memberId is required"})
		return
	}

	result := h.scan.ProcessScan(c.Request.Context(), req.MemberID)
	c.JSON(http.StatusOK, result)
}
