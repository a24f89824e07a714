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

var errMaterialNotFound = pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// CreateMaterial godoc
// @Summary      Create a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        payload  body      request.MaterialRequest  true  "Material"
// @Success      200      {object}  response.MaterialResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if !bindPayload(c, &payload) {
		return
	}

	material, err := h.usecase.Create(c.Request.Context(), payload.ToFields())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

// ListMaterials godoc
// @Summary      List materials
// @Description  Returns at most 1000 materials, in no particular order.
// @Tags         materials
// @Produce      json
// @Success      200  {array}  response.MaterialResponse
// @Router       /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// GetMaterial godoc
// @Summary      Get a material
// @Tags         materials
// @Produce      json
// @Param        id   path      string  true  "Material ID"
// @Success      200  {object}  response.MaterialResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	material, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

// UpdateMaterial godoc
// @Summary      Replace a material
// @Description  Full replacement of the creatable fields; created_at is kept.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Material ID"
// @Param        payload  body      request.MaterialRequest  true  "Material"
// @Success      200      {object}  response.MaterialResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /materials/{id} [put]
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if !bindPayload(c, &payload) {
		return
	}

	material, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

// DeleteMaterial godoc
// @Summary      Delete a material
// @Tags         materials
// @Produce      json
// @Param        id   path      string  true  "Material ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted("Material"))
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMaterialNotFound), errors.Is(err, usecase.ErrInvalidMaterialID):
		return errMaterialNotFound
	default:
		return internalError(err)
	}
}
