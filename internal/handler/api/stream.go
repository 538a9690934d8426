package api

import (
	"io"
	"net/http"

	"barkeep/internal/handler/httperr"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/usecase/queries"
	"barkeep/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StreamHandler serves live change notifications over SSE. Subscribers get
// events only, never state; they re-fetch through the regular endpoints.
type StreamHandler struct {
	stream   shared.EventStream
	sessions queries.SessionQueries
}

func NewStreamHandler(stream shared.EventStream, sessions queries.SessionQueries) *StreamHandler {
	return &StreamHandler{stream: stream, sessions: sessions}
}

func (h *StreamHandler) SessionEvents(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}

	if _, ok := middleware.GetHostID(c); !ok {
		shareToken := c.Query("token")
		if shareToken == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
			return
		}
		session, err := h.sessions.ValidateToken(c.Request.Context(), shareToken)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		if session.ID != sessionID {
			httperr.AbortWithError(c, http.StatusNotFound, nil, "Session not found", nil)
			return
		}
	}

	events, cancel, err := h.stream.SubscribeSession(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to subscribe", nil)
		return
	}
	defer cancel()

	relay(c, events)
}

func (h *StreamHandler) CatalogEvents(c *gin.Context) {
	events, cancel, err := h.stream.SubscribeCatalog(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to subscribe", nil)
		return
	}
	defer cancel()

	relay(c, events)
}

func relay(c *gin.Context, events <-chan shared.Event) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
