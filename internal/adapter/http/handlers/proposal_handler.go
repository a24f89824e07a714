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

var errProposalNotFound = pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Create a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ProposalRequest  true  "Proposal"
// @Success      200      {object}  response.ProposalResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if !bindPayload(c, &payload) {
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToFields())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// ListProposals godoc
// @Summary      List proposals
// @Description  Returns at most 1000 proposals, in no particular order.
// @Tags         proposals
// @Produce      json
// @Success      200  {array}  response.ProposalResponse
// @Router       /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// GetProposal godoc
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// UpdateProposal godoc
// @Summary      Replace a proposal
// @Description  Full replacement of the creatable fields; status and created_at are kept.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Proposal ID"
// @Param        payload  body      request.ProposalRequest  true  "Proposal"
// @Success      200      {object}  response.ProposalResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /proposals/{id} [put]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if !bindPayload(c, &payload) {
		return
	}

	proposal, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// DeleteProposal godoc
// @Summary      Delete a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted("Proposal"))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProposalNotFound), errors.Is(err, usecase.ErrInvalidProposalID):
		return errProposalNotFound
	default:
		return internalError(err)
	}
}
