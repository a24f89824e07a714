package routes

import (
	"crewlo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/" + KindProjects
	PathLeads     = "/" + KindLeads
	PathMaterials = "/" + KindMaterials
	PathEstimates = "/" + KindEstimates
	PathProposals = "/" + KindProposals
	PathDashboard = "/dashboard"
)

type apiHandlers struct {
	projects  *handlers.ProjectHandler
	leads     *handlers.LeadHandler
	materials *handlers.MaterialHandler
	estimates *handlers.EstimateHandler
	proposals *handlers.ProposalHandler
	dashboard *handlers.DashboardHandler
}

func addAPIRoutes(rg *gin.RouterGroup, h apiHandlers) {
	rg.GET("/", handlers.Root)

	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.projects.CreateProject)
		projects.GET("", h.projects.ListProjects)
		projects.GET("/:id", h.projects.GetProject)
		projects.PUT("/:id", h.projects.UpdateProject)
		projects.DELETE("/:id", h.projects.DeleteProject)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", h.leads.CreateLead)
		leads.GET("", h.leads.ListLeads)
		leads.GET("/:id", h.leads.GetLead)
		leads.PUT("/:id", h.leads.UpdateLead)
		leads.DELETE("/:id", h.leads.DeleteLead)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", h.materials.CreateMaterial)
		materials.GET("", h.materials.ListMaterials)
		materials.GET("/:id", h.materials.GetMaterial)
		materials.PUT("/:id", h.materials.UpdateMaterial)
		materials.DELETE("/:id", h.materials.DeleteMaterial)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.estimates.CreateEstimate)
		estimates.GET("", h.estimates.ListEstimates)
		estimates.GET("/:id", h.estimates.GetEstimate)
		estimates.PUT("/:id", h.estimates.UpdateEstimate)
		estimates.DELETE("/:id", h.estimates.DeleteEstimate)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", h.proposals.CreateProposal)
		proposals.GET("", h.proposals.ListProposals)
		proposals.GET("/:id", h.proposals.GetProposal)
		proposals.PUT("/:id", h.proposals.UpdateProposal)
		proposals.DELETE("/:id", h.proposals.DeleteProposal)
	}

	rg.GET(PathDashboard+"/stats", h.dashboard.GetStats)
}
