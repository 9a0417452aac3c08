package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/middleware"
	"github.com/skelectricals/backend/internal/service"
	"github.com/skelectricals/backend/internal/testutil"
	"github.com/skelectricals/backend/internal/types"
)

func newContactTestRouter(t *testing.T) (*gin.Engine, service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := testutil.NewInMemoryUserStore()
	clients := testutil.NewInMemoryClientStore()
	contacts := testutil.NewInMemoryContactStore()

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:             users,
		ClientRepo:           clients,
		Logger:               logger.NewNop(),
		JWTSecret:            "test-secret",
		JWTAccessExpiration:  time.Minute,
		JWTRefreshExpiration: time.Hour,
	})
	contactService := service.NewContactService(contacts, logger.NewNop())

	router := gin.New()
	handler := NewContactHandler(contactService)
	handler.RegisterRoutes(router,
		middleware.AuthMiddleware(authService),
		middleware.RequireRoles(types.RoleAdmin),
	)
	return router, authService
}

func TestSubmitContactPublic(t *testing.T) {
	router, _ := newContactTestRouter(t)

	body := `{"name":"R. Deshmukh","email":"rd@apextextiles.in","phone":"9822011223","serviceType":"industrial wiring","message":"Need a quote for panel installation"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "rd@apextextiles.in")
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	router, _ := newContactTestRouter(t)

	body := `{"name":"R. Deshmukh","email":"not-an-email","message":"hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactInboxRequiresAuth(t *testing.T) {
	router, _ := newContactTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/contact-requests", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContactInboxRejectsNonAdmin(t *testing.T) {
	router, authService := newContactTestRouter(t)

	resp, err := authService.Register(context.Background(), "site@apextextiles.in", "electric123", "Apex")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/contact-requests", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}
