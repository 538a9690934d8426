package api

import (
	"net/http"
	"strings"

	"barkeep/internal/domain/order"
	reqdto "barkeep/internal/handler/dto/request"
	resdto "barkeep/internal/handler/dto/response"
	"barkeep/internal/handler/httperr"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds     commands.OrderCommands
	q        queries.OrderQueries
	sessions queries.SessionQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, sessions queries.SessionQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, sessions: sessions}
}

// Create places a guest order. The share token in the body is the guest's
// whole credential; all session gating happens in the command.
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	orderID, err := h.cmds.Create(c.Request.Context(), commands.CreateOrderInput{
		SessionToken:   strings.TrimSpace(req.Token),
		GuestID:        req.GuestID,
		GuestName:      req.GuestName,
		CocktailID:     req.CocktailID,
		Customizations: req.Customizations(),
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), orderID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// Update multiplexes the two mutations an order supports: a host moving it
// through the queue and a guest rating the finished drink.
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	var req reqdto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	switch {
	case req.Status != nil && req.Rating == nil:
		h.updateStatus(c, orderID, req)
	case req.Rating != nil && req.Status == nil:
		h.rate(c, orderID, req)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Exactly one of status or rating is required", nil)
	}
}

func (h *OrderHandler) updateStatus(c *gin.Context, orderID uuid.UUID, req reqdto.UpdateOrderRequest) {
	if _, ok := middleware.GetHostID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if req.SessionID == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "session_id is required", nil)
		return
	}

	next := order.Status(*req.Status)
	if err := h.cmds.UpdateStatus(c.Request.Context(), *req.SessionID, orderID, next); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithOrder(c, orderID)
}

func (h *OrderHandler) rate(c *gin.Context, orderID uuid.UUID, req reqdto.UpdateOrderRequest) {
	if req.Token == nil || req.GuestID == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "token and guest_id are required", nil)
		return
	}

	// The token both authenticates the guest and pins the session the order
	// must belong to.
	session, err := h.sessions.ValidateToken(c.Request.Context(), strings.TrimSpace(*req.Token))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	rating := order.Rating(*req.Rating)
	if err := h.cmds.Rate(c.Request.Context(), session.ID, orderID, *req.GuestID, rating); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithOrder(c, orderID)
}

func (h *OrderHandler) respondWithOrder(c *gin.Context, orderID uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), orderID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// ListBySession serves both sides of the party. A host bearer sees the whole
// queue; a guest share token sees only that guest's orders.
func (h *OrderHandler) ListBySession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}

	if _, ok := middleware.GetHostID(c); ok {
		orders, err := h.q.ListBySession(c.Request.Context(), sessionID)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(orders)})
		return
	}

	shareToken := c.Query("token")
	guestID := c.Query("guest_id")
	if shareToken == "" || guestID == "" {
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

	orders, err := h.q.ListByGuest(c.Request.Context(), sessionID, guestID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(orders)})
}
