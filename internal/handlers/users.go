package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) GetUser(c *gin.Context) {
	user, err := h.directory.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type searchRequest struct {
	Expertise string `json:"expertise" binding:"required"`
}

func (h HandlerSet) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mentors, err := h.directory.SearchMentors(c.Request.Context(), req.Expertise)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(mentors) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no mentors found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "mentors found",
		"mentors": mentors,
	})
}
