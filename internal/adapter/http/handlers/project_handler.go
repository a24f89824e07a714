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

var errProjectNotFound = pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ProjectRequest  true  "Project"
// @Success      200      {object}  response.ProjectResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindPayload(c, &payload) {
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), payload.ToFields())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// ListProjects godoc
// @Summary      List projects
// @Description  Returns at most 1000 projects, in no particular order.
// @Tags         projects
// @Produce      json
// @Success      200  {array}  response.ProjectResponse
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateProject godoc
// @Summary      Replace a project
// @Description  Full replacement of the creatable fields; status and created_at are kept.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Project ID"
// @Param        payload  body      request.ProjectRequest  true  "Project"
// @Success      200      {object}  response.ProjectResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindPayload(c, &payload) {
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted("Project"))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound), errors.Is(err, usecase.ErrInvalidProjectID):
		return errProjectNotFound
	default:
		return internalError(err)
	}
}
