//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"barkeep/internal/handler/api"
	resdto "barkeep/internal/handler/dto/response"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/queries"
	"barkeep/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubSessionCommands struct {
	view     *queries.SessionView
	endErr   error
	pauseErr error
}

func (s *stubSessionCommands) CreateOrGet(context.Context, uuid.UUID) (*queries.SessionView, error) {
	return s.view, nil
}

func (s *stubSessionCommands) End(context.Context, uuid.UUID) error { return s.endErr }

func (s *stubSessionCommands) SetOrderPaused(context.Context, uuid.UUID, bool) error {
	return s.pauseErr
}

type SessionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	cmds     *stubSessionCommands
	sessions *stubSessionQueries
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	view := &queries.SessionView{
		ID:        uuid.New(),
		HostID:    uuid.New(),
		Token:     "abc123def456",
		ExpiresAt: time.Now().Add(12 * time.Hour),
	}
	s.cmds = &stubSessionCommands{view: view}
	s.sessions = &stubSessionQueries{view: view}

	handler := api.NewSessionHandler(s.cmds, s.sessions)
	withHost := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("host_id", view.HostID)
			}
			h(c)
		}
	}
	s.router.POST("/sessions", withHost(handler.Create))
	s.router.GET("/sessions/validate", handler.Validate)
	s.router.POST("/sessions/:id/end", withHost(handler.End))
	s.router.PATCH("/sessions/:id/pause", withHost(handler.Pause))
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestCreate() {
	s.Run("host gets a session with the share token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions", nil, "host-token")
		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(s.cmds.view.Token, resp.Token)
	})

	s.Run("anonymous create is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *SessionHandlerTestSuite) TestValidate() {
	s.Run("live token resolves without exposing the host", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/validate?token=abc123def456", nil, "")
		var resp resdto.GuestSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(s.sessions.view.ID, resp.ID)
		s.NotContains(rec.Body.String(), "host_id")
	})

	s.Run("malformed token shape is 404 without a lookup", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/validate?token=UPPERCASE!!", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("expired session is 410", func() {
		s.sessions.err = errs.ErrSessionExpired
		s.sessions.view = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/validate?token=abc123def456", nil, "")
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("unknown token is 404", func() {
		s.sessions.err = errs.ErrSessionNotFound
		s.sessions.view = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/validate?token=aaaaaaaaaaaa", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *SessionHandlerTestSuite) TestEnd() {
	url := "/sessions/" + s.cmds.view.ID.String() + "/end"

	s.Run("host ends the session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("ending twice reports gone", func() {
		s.cmds.endErr = errs.ErrSessionExpired
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "host-token")
		s.Equal(http.StatusGone, rec.Code)
	})
}

func (s *SessionHandlerTestSuite) TestPause() {
	url := "/sessions/" + s.cmds.view.ID.String() + "/pause"

	s.Run("pause flag is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "host-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("explicit false is accepted", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"is_order_paused": false}, "host-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})
}
