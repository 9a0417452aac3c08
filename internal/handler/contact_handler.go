package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/service"
)

// ContactHandler handles the public contact/quote form and its admin inbox
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// RegisterRoutes registers contact routes. Submission is public; the inbox
// is admin only.
func (h *ContactHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware gin.HandlerFunc) {
	router.POST("/v1/contact", h.SubmitContact)

	contact := router.Group("/v1/contact-requests", authMiddleware, adminMiddleware)
	{
		contact.GET("", h.ListContactRequests)
		contact.PATCH("/:id/resolve", h.ResolveContactRequest)
	}
}

// SubmitContact stores a contact/quote request from the public site
// @Summary Submit a contact request
// @Tags contact
// @Accept json
// @Produce json
// @Param request body model.CreateContactRequest true "Contact details"
// @Success 201 {object} domain.ContactRequest "Stored request"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /v1/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req model.CreateContactRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, contact)
}

// ListContactRequests retrieves all contact requests, newest first
// @Summary List contact requests
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ContactRequest "Contact requests"
// @Router /v1/contact-requests [get]
func (h *ContactHandler) ListContactRequests(c *gin.Context) {
	requests, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, requests)
}

// ResolveContactRequest flips the resolved flag on a contact request
// @Summary Resolve a contact request
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact request ID"
// @Param request body model.ResolveContactRequest true "Resolved flag"
// @Success 200 {object} domain.ContactRequest "Updated request"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/contact-requests/{id}/resolve [patch]
func (h *ContactHandler) ResolveContactRequest(c *gin.Context) {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.ResolveContactRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Resolve(c.Request.Context(), id, req.Resolved)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, contact)
}
