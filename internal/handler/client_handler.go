package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/service"
)

// ClientHandler handles HTTP requests for client records
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes registers client record routes (admin only)
func (h *ClientHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware gin.HandlerFunc) {
	clients := router.Group("/v1/clients", authMiddleware, adminMiddleware)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
	}
}

// CreateClient creates a new client record
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateClientRequest true "Client details"
// @Success 201 {object} domain.Client "Created client"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Company already exists"
// @Router /v1/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, client)
}

// ListClients retrieves all client records
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Client "Clients"
// @Router /v1/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, clients)
}

// GetClient retrieves one client record
// @Summary Get a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} domain.Client "Client"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, client)
}

// UpdateClient edits a client record
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body model.UpdateClientRequest true "Fields to change"
// @Success 200 {object} domain.Client "Updated client"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.UpdateClientRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, client)
}
