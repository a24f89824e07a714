package handlers

import (
	"net/http"

	response "crewlo/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

const (
	apiName    = "Crewlo API"
	apiVersion = "1.0.0"
)

// Root godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: apiName, Version: apiVersion})
}
