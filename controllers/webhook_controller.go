package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gustta03/meals-api/services"
	"github.com/gustta03/meals-api/utils"

	"github.com/gin-gonic/gin"
)

// WebhookController receives Whapi webhook deliveries and routes each message
// through the dispatcher.
type WebhookController struct {
	dispatcher *services.DispatcherService
	whapi      *services.WhapiService
	archive    bool
}

func NewWebhookController(dispatcher *services.DispatcherService, whapi *services.WhapiService, archivePhotos bool) *WebhookController {
	return &WebhookController{dispatcher: dispatcher, whapi: whapi, archive: archivePhotos}
}

// Verify answers the hub challenge Whapi sends when the webhook is registered.
func (wc *WebhookController) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == os.Getenv("WHAPI_WEBHOOK_VERIFY_TOKEN") {
		c.String(http.StatusOK, challenge)
		return
	}
	c.String(http.StatusForbidden, "Forbidden")
}

type whapiText struct {
	Body string `json:"body"`
}

type whapiImage struct {
	Link     string `json:"link"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption"`
}

type whapiMessage struct {
	ID        string      `json:"id"`
	From      string      `json:"from"`
	FromMe    bool        `json:"from_me"`
	FromName  string      `json:"from_name"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Text      *whapiText  `json:"text"`
	Image     *whapiImage `json:"image"`
}

type whapiPayload struct {
	Event    string         `json:"event"`
	Messages []whapiMessage `json:"messages"`
}

// Receive accepts a webhook delivery. It acknowledges immediately and handles
// the messages in the background; the dispatcher serializes per user.
func (wc *WebhookController) Receive(c *gin.Context) {
	var payload whapiPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, msg := range payload.Messages {
		if msg.FromMe || msg.From == "" {
			continue
		}
		go wc.process(msg)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (wc *WebhookController) process(msg whapiMessage) {
	ctx := context.Background()

	incoming := services.IncomingMessage{
		From:      msg.From,
		Name:      msg.FromName,
		Timestamp: time.Unix(msg.Timestamp, 0),
	}
	if msg.Text != nil {
		incoming.Body = msg.Text.Body
	}

	if msg.Type == "image" && msg.Image != nil {
		image, err := wc.whapi.DownloadMedia(ctx, msg.Image.Link)
		if err != nil {
			log.Printf("media download for %s: %v", msg.From, err)
			_ = wc.whapi.SendText(ctx, msg.From, "Não consegui baixar sua foto. 😔 Pode enviar de novo?")
			return
		}
		incoming.Image = image
		incoming.ImageMime = msg.Image.MimeType
		incoming.Body = msg.Image.Caption

		if wc.archive {
			if key, err := utils.ArchiveMealPhoto(ctx, msg.From, image, msg.Image.MimeType); err != nil {
				log.Printf("photo archive for %s: %v", msg.From, err)
			} else {
				log.Printf("photo archived for %s at %s", msg.From, key)
			}
		}
	}

	reply := wc.dispatcher.HandleMessage(ctx, incoming)

	if reply.Text != "" {
		if err := wc.whapi.SendText(ctx, msg.From, reply.Text); err != nil {
			log.Printf("send text to %s: %v", msg.From, err)
		}
	}
	if len(reply.Image) > 0 {
		if err := wc.whapi.SendImage(ctx, msg.From, reply.Image, reply.ImageCaption, reply.ImageMime); err != nil {
			log.Printf("send image to %s: %v", msg.From, err)
		}
	}
}
