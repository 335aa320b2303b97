package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdukarim17/fluentia/internal/match"
)

type RoomHandler struct {
	Match *match.Service
}

type createRoomReq struct {
	UserID uint `json:"user_id" binding:"required"`
}

// CreateRoom runs the matching flow for the requesting user. Eligibility
// failures come back as 200 with an error object, matching the documented
// surface; a declined or unavailable match is 202 pending and the client
// retries.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req createRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	room, err := h.Match.CreateRoom(c.Request.Context(), req.UserID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, room)
	case errors.Is(err, match.ErrPending):
		c.JSON(http.StatusAccepted, gin.H{"status": "pending"})
	case errors.Is(err, match.ErrNotValidated):
		c.JSON(http.StatusOK, gin.H{"error": "User is not validated or matchmaking failed"})
	case errors.Is(err, match.ErrNotSkilled):
		c.JSON(http.StatusOK, gin.H{"error": "User has not progressed enough"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
