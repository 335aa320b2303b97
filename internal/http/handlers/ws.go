package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/Abdukarim17/fluentia/internal/auth"
	"github.com/Abdukarim17/fluentia/internal/store"
	"github.com/Abdukarim17/fluentia/internal/ws"
)

type WSHandler struct {
	Hub                  *ws.Hub
	Users                store.Users
	JWTSecret            string
	WSInsecureSkipVerify bool
}

// Handle upgrades the connection and keeps the user registered with the hub
// for as long as the socket lives. Browser websockets cannot set an
// Authorization header, so the token rides in a query param. Incoming
// call:accept / call:decline events flip the user's acceptance state.
func (h *WSHandler) Handle(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	email, err := auth.EmailFromToken(tokenStr, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	u, err := h.Users.ByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	opts := &websocket.AcceptOptions{}
	// Accept rejects cross-origin by default, which breaks local dev
	// frontends; production should configure OriginPatterns instead.
	if h.WSInsecureSkipVerify {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return // Accept already wrote the error response
	}

	client := h.Hub.AddClient(u.ID, conn)
	defer h.Hub.RemoveClient(client)

	ctx := c.Request.Context()
	for {
		var ev ws.Event
		if err := wsjson.Read(ctx, conn, &ev); err != nil {
			return
		}
		switch ev.Type {
		case ws.EventCallAccept:
			h.Hub.SetAccepted(u.ID, true)
		case ws.EventCallDecline:
			h.Hub.SetAccepted(u.ID, false)
		}
	}
}
