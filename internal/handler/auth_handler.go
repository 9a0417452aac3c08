package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/service"
	"github.com/skelectricals/backend/internal/types"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware gin.HandlerFunc) {
	auth := router.Group("/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", h.Logout)

		auth.GET("/me", authMiddleware, h.GetCurrentUser)
	}

	users := router.Group("/v1/users", authMiddleware, adminMiddleware)
	{
		users.PATCH("/:id/role", h.UpdateUserRole)
	}
}

// Register handles user registration with email and password
// @Summary Register a new user
// @Description Create a new account with the user role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration details"
// @Success 201 {object} service.AuthResponse "Registration successful"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Email already registered"
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	authResponse, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, authResponse)
}

// Login handles user login with email and password
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login credentials"
// @Success 200 {object} service.AuthResponse "Login successful"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Invalid credentials"
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, authResponse)
}

// RefreshToken generates a new token pair from a refresh token
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh token"
// @Success 200 {object} service.TokenPair "New tokens"
// @Failure 403 {object} model.ErrorResponse "Invalid refresh token"
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req model.RefreshRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tokens, err := h.authService.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, tokens)
}

// Logout handles user logout (client-side token removal)
// @Summary Logout
// @Description Logout the current user; the client discards its tokens
// @Tags auth
// @Produce json
// @Success 200 {object} model.MessageResponse "Logout successful"
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless JWT; nothing to revoke server-side.
	respondOK(c, model.MessageResponse{Message: "Logout successful"})
}

// GetCurrentUser returns the current authenticated user
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User "User information"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /v1/auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user)
}

// UpdateUserRole changes a user's role (admin only)
// @Summary Change a user's role
// @Description Assign user, client or admin; the client role links the account to an existing client record by company name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body model.UpdateRoleRequest true "New role"
// @Success 200 {object} domain.User "Updated user"
// @Failure 400 {object} model.ErrorResponse "Unknown role or missing company"
// @Failure 404 {object} model.ErrorResponse "User or client record not found"
// @Router /v1/users/{id}/role [patch]
func (h *AuthHandler) UpdateUserRole(c *gin.Context) {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.UpdateRoleRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateUserRole(c.Request.Context(), id, types.UserRole(req.Role), req.CompanyName)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user)
}
