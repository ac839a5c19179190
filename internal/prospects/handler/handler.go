package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prospect_backend/internal/prospects/service"
	"prospect_backend/internal/prospects/transport"
	"prospect_backend/platform/httpkit"
	"prospect_backend/platform/validator"
)

// Handler handles HTTP requests for prospects.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid prospect ID"
)

// New creates a new prospects handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search runs the discovery pipeline for a company.
// POST /api/v1/prospects/search
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Search(c.Request.Context(), req.Company)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SearchResponse{
		Company:        result.Company,
		ContactsFound:  result.ContactsFound,
		ProspectsSaved: result.ProspectsSaved,
		Qualified:      result.Qualified,
		DurationMs:     result.DurationMs,
		Prospects:      transport.ToProspectResponses(result.Prospects),
	})
}

// List retrieves stored prospects, optionally filtered by company.
// GET /api/v1/prospects?company=Acme
func (h *Handler) List(c *gin.Context) {
	prospects, err := h.svc.List(c.Request.Context(), c.Query("company"))
	if httpkit.HandleError(c, err) {
		return
	}

	items := transport.ToProspectResponses(prospects)
	httpkit.OK(c, transport.ProspectListResponse{Items: items, Total: len(items)})
}

// GetByID retrieves a prospect by ID.
// GET /api/v1/prospects/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	prospect, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToProspectResponse(prospect))
}

// Delete removes a prospect by ID.
// DELETE /api/v1/prospects/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

// Status aggregates the stored pipeline by qualification status.
// GET /api/v1/prospects/status
func (h *Handler) Status(c *gin.Context) {
	counts, err := h.svc.Status(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.StatusResponse{
		Total:         counts.Total,
		Qualified:     counts.Qualified,
		NeedsResearch: counts.NeedsResearch,
	})
}
