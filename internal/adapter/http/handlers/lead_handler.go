package handlers

import (
	"errors"
	"net/http"

	request "crewlo/internal/adapter/http/dto/request"
	response "crewlo/internal/adapter/http/dto/response"
	"crewlo/internal/usecase"
	"crewlo/pkg"

	"github.com/gin-gonic/gin"
)

var errLeadNotFound = pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LeadRequest  true  "Lead"
// @Success      200      {object}  response.LeadResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if !bindPayload(c, &payload) {
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), payload.ToFields())
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ListLeads godoc
// @Summary      List leads
// @Description  Returns at most 1000 leads, in no particular order.
// @Tags         leads
// @Produce      json
// @Success      200  {array}  response.LeadResponse
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// GetLead godoc
// @Summary      Get a lead
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.LeadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// UpdateLead godoc
// @Summary      Replace a lead
// @Description  Full replacement of the creatable fields; status and created_at are kept.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Lead ID"
// @Param        payload  body      request.LeadRequest  true  "Lead"
// @Success      200      {object}  response.LeadResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.LeadRequest
	if !bindPayload(c, &payload) {
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// DeleteLead godoc
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted("Lead"))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLeadNotFound), errors.Is(err, usecase.ErrInvalidLeadID):
		return errLeadNotFound
	default:
		return internalError(err)
	}
}
