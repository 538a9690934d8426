package api

import (
	"net/http"

	reqdto "barkeep/internal/handler/dto/request"
	resdto "barkeep/internal/handler/dto/response"
	"barkeep/internal/handler/httperr"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/pkg/token"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	cmds commands.SessionCommands
	q    queries.SessionQueries
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// Create issues a session for the authenticated host, or returns the current
// one if a valid session already exists. Retries therefore never mint
// duplicate share links.
func (h *SessionHandler) Create(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.cmds.CreateOrGet(c.Request.Context(), hostID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// Validate is the guest entry point: a share token either resolves to a live
// session, is unknown, or belongs to a party that is over.
func (h *SessionHandler) Validate(c *gin.Context) {
	shareToken := c.Query("token")
	if !token.Valid(shareToken) {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Session not found", nil)
		return
	}

	view, err := h.q.ValidateToken(c.Request.Context(), shareToken)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionViewForGuest(view))
}

func (h *SessionHandler) End(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	if _, ok := middleware.GetHostID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.End(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) Pause(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	if _, ok := middleware.GetHostID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.PauseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetOrderPaused(c.Request.Context(), sessionID, *req.IsOrderPaused); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}
