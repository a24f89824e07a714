package usecase

import (
	"context"

	"crewlo/internal/domain/entities"
	"crewlo/internal/usecase/interfaces"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/mock_$GOFILE -package=mocks

// IDashboardUseCase aggregates record counts for the dashboard.
//
// Counts are derived from the capped listings, so each total is at most
// repository.MaxListSize.
type IDashboardUseCase interface {
	Stats(ctx context.Context) (entities.DashboardStats, error)
}

type DashboardUseCase struct {
	projects  interfaces.IProjectRepository
	leads     interfaces.ILeadRepository
	materials interfaces.IMaterialRepository
	estimates interfaces.IEstimateRepository
	proposals interfaces.IProposalRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	projects interfaces.IProjectRepository,
	leads interfaces.ILeadRepository,
	materials interfaces.IMaterialRepository,
	estimates interfaces.IEstimateRepository,
	proposals interfaces.IProposalRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		projects:  projects,
		leads:     leads,
		materials: materials,
		estimates: estimates,
		proposals: proposals,
	}
}

func (u *DashboardUseCase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	var stats entities.DashboardStats

	projects, err := u.projects.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	stats.TotalProjects = len(projects)
	for _, p := range projects {
		if p.Status == entities.ProjectStatusActive {
			stats.ActiveProjects++
		}
	}

	leads, err := u.leads.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	stats.TotalLeads = len(leads)
	for _, l := range leads {
		if l.Status == entities.LeadStatusNew {
			stats.NewLeads++
		}
	}

	materials, err := u.materials.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	stats.TotalMaterials = len(materials)

	estimates, err := u.estimates.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	stats.TotalEstimates = len(estimates)
	for _, e := range estimates {
		// a draft has not been sent to the client yet
		if e.Status == entities.EstimateStatusDraft {
			stats.PendingEstimates++
		}
	}

	proposals, err := u.proposals.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	stats.TotalProposals = len(proposals)
	for _, p := range proposals {
		if p.Status == entities.ProposalStatusAccepted {
			stats.AcceptedProposals++
		}
	}

	return stats, nil
}
