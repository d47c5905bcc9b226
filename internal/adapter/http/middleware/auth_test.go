package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_interfaces "engagetrack/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(sessions *mock_interfaces.MockISessionTokens) *gin.Engine {
		r := gin.New()
		r.GET("/api/ok", RequireSession(sessions), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"azure_id": c.GetString("azure_id")})
		})
		return r
	}

	t.Run("missing cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionTokens(ctrl)
		r := newRouter(sessions)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ok", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionTokens(ctrl)
		sessions.EXPECT().Verify("bad").Return("", errors.New("invalid"))
		r := newRouter(sessions)

		req := httptest.NewRequest(http.MethodGet, "/api/ok", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "bad"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionTokens(ctrl)
		sessions.EXPECT().Verify("good").Return("az-1", nil)
		r := newRouter(sessions)

		req := httptest.NewRequest(http.MethodGet, "/api/ok", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "good"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); !strings.Contains(body, "az-1") {
			t.Fatalf("expected subject in response, got %s", body)
		}
	})
}
