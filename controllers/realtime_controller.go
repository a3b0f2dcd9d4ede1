package controllers

import (
	"log"
	"net/http"

	"github.com/gustta03/meals-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RealtimeController upgrades dashboard connections that watch one user's
// meal events.
type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

func (rc *RealtimeController) Stream(c *gin.Context) {
	phone := c.Param("phone")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}

	client := &services.WSClient{Phone: phone, Conn: conn}
	rc.hub.Register(client)

	// Reads only keep the connection alive; the hub does all the writing.
	go func() {
		defer rc.hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
