package handlers

import (
	"net/http"

	response "crewlo/internal/adapter/http/dto/response"
	"crewlo/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardStatsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
