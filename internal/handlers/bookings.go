package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorlink/api/internal/service"
)

type createBookingRequest struct {
	MentorID  string `json:"mentorId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

func (h HandlerSet) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), service.CreateBookingInput{
		MenteeID:  c.Param("menteeId"),
		MentorID:  req.MentorID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "booking created successfully",
		"booking": booking,
	})
}

func (h HandlerSet) GetBooking(c *gin.Context) {
	booking, err := h.bookings.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h HandlerSet) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

type rescheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

func (h HandlerSet) Reschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.Reschedule(c.Request.Context(), service.RescheduleInput{
		UserID:    c.Param("userId"),
		BookingID: c.Param("bookingId"),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "booking rescheduled successfully",
		"booking": booking,
	})
}

func (h HandlerSet) Cancel(c *gin.Context) {
	booking, err := h.bookings.Cancel(c.Request.Context(), c.Param("userId"), c.Param("bookingId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "booking cancelled successfully",
		"booking": booking,
	})
}

func (h HandlerSet) Accept(c *gin.Context) {
	booking, err := h.bookings.Accept(c.Request.Context(), c.Param("userId"), c.Param("bookingId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "booking accepted successfully",
		"booking": booking,
	})
}

func (h HandlerSet) Reject(c *gin.Context) {
	booking, err := h.bookings.Reject(c.Request.Context(), c.Param("userId"), c.Param("bookingId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "booking rejected successfully",
		"booking": booking,
	})
}
