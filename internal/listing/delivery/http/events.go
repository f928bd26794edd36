package http

import (
	"errors"
	"io"
	"time"

	"agenda-bff/internal/listing"
	"agenda-bff/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultKeepAlive = 15 * time.Second

	eventView   = "view"
	eventPing   = "ping"
	eventClosed = "closed"
)

// Events - Streams session views as server-sent events
// @Summary Stream session views
// @Description Sends the current view, then one "view" event per state change. A "closed" event ends the stream when the session goes away.
// @Tags Sessions
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Success 200 {object} viewResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id}/events [get]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// Holds at most the newest undelivered view.
	updates := make(chan listing.View, 1)
	unwatch, err := h.uc.Watch(ctx, id, func(v listing.View) {
		for {
			select {
			case updates <- v:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	defer unwatch()

	view, err := h.uc.Get(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	last := view.Version
	c.SSEvent(eventView, h.newViewResp(view))
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case v := <-updates:
			if v.Version <= last {
				return true
			}
			last = v.Version
			c.SSEvent(eventView, h.newViewResp(v))
			return true
		case <-ticker.C:
			if _, err := h.uc.Get(ctx, id); errors.Is(err, listing.ErrSessionNotFound) {
				c.SSEvent(eventClosed, gin.H{"id": id})
				return false
			}
			c.SSEvent(eventPing, gin.H{"time": time.Now().Unix()})
			return true
		}
	})
}
