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

var errEstimateNotFound = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Estimate"
// @Success      200      {object}  response.EstimateResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if !bindPayload(c, &payload) {
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.ToFields())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimates godoc
// @Summary      List estimates
// @Description  Returns at most 1000 estimates, in no particular order.
// @Tags         estimates
// @Produce      json
// @Success      200  {array}  response.EstimateResponse
// @Router       /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateEstimate godoc
// @Summary      Replace an estimate
// @Description  Full replacement of the creatable fields. total_cost is recomputed; status and created_at are kept.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Estimate ID"
// @Param        payload  body      request.EstimateRequest  true  "Estimate"
// @Success      200      {object}  response.EstimateResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if !bindPayload(c, &payload) {
		return
	}

	estimate, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DeleteEstimate godoc
// @Summary      Delete an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted("Estimate"))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateNotFound), errors.Is(err, usecase.ErrInvalidEstimateID):
		return errEstimateNotFound
	default:
		return internalError(err)
	}
}
