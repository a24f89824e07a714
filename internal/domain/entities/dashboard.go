package entities

// DashboardStats aggregates record counts for the landing page.
type DashboardStats struct {
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
