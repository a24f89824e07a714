package response

import "crewlo/internal/domain/entities"

type DashboardStatsResponse struct {
	TotalProjects     int `json:"total_projects"`
	ActiveProjects    int `json:"active_projects"`
	TotalLeads        int `json:"total_leads"`
	NewLeads          int `json:"new_leads"`
	TotalEstimates    int `json:"total_estimates"`
	PendingEstimates  int `json:"pending_estimates"`
	TotalMaterials    int `json:"total_materials"`
	TotalProposals    int `json:"total_proposals"`
	AcceptedProposals int `json:"accepted_proposals"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse(s)
}
