package api

import (
	"errors"
	"net/http"

	reqdto "barkeep/internal/handler/dto/request"
	resdto "barkeep/internal/handler/dto/response"
	"barkeep/internal/handler/httperr"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/pkg/config"
	"barkeep/internal/pkg/cookie"
	"barkeep/internal/pkg/jwt"
	"barkeep/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      commands.AuthCommands
	jwt       *jwt.Service
	cookieCfg config.CookieConfig
}

func NewAuthHandler(auth commands.AuthCommands, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		jwt:       jwtService,
		cookieCfg: cookieCfg,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, host, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetHostToken(c, h.cookieCfg, token, h.jwt.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Host:        host,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearHostToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	host, err := h.auth.CurrentHost(c.Request.Context(), hostID)
	if err != nil {
		if errors.Is(err, commands.ErrHostNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Host not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, host)
}
