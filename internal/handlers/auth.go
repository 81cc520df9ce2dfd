package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorlink/api/internal/models"
	"mentorlink/api/internal/service"
)

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=mentor mentee"`
	Expertise string `json:"expertise"`
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var expertise *models.Expertise
	if req.Expertise != "" {
		tag, ok := models.ParseExpertise(req.Expertise)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown expertise"})
			return
		}
		expertise = &tag
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Role:      models.UserRole(req.Role),
		Expertise: expertise,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "user registered successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h HandlerSet) Logout(c *gin.Context) {
	userID := c.Param("userId")

	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logout successful",
	})
}
