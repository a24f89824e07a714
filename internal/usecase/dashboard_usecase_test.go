package usecase

import (
	"context"
	"errors"
	"testing"

	"crewlo/internal/domain/entities"
	mock_interfaces "crewlo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dashboardRepos struct {
	projects  *mock_interfaces.MockIProjectRepository
	leads     *mock_interfaces.MockILeadRepository
	materials *mock_interfaces.MockIMaterialRepository
	estimates *mock_interfaces.MockIEstimateRepository
	proposals *mock_interfaces.MockIProposalRepository
}

func newDashboardFixture(ctrl *gomock.Controller) (*DashboardUseCase, dashboardRepos) {
	r := dashboardRepos{
		projects:  mock_interfaces.NewMockIProjectRepository(ctrl),
		leads:     mock_interfaces.NewMockILeadRepository(ctrl),
		materials: mock_interfaces.NewMockIMaterialRepository(ctrl),
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
	}
	return NewDashboardUseCase(r.projects, r.leads, r.materials, r.estimates, r.proposals), r
}

func TestDashboardUseCase_Stats(t *testing.T) {
	t.Run("counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, r := newDashboardFixture(ctrl)

		r.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{
			{ID: "1", Status: entities.ProjectStatusActive},
			{ID: "2", Status: entities.ProjectStatusCompleted},
			{ID: "3", Status: entities.ProjectStatusActive},
		}, nil)
		r.leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{
			{ID: "1", Status: entities.LeadStatusNew},
			{ID: "2", Status: entities.LeadStatusLost},
		}, nil)
		r.materials.EXPECT().List(gomock.Any()).Return([]entities.Material{{ID: "1"}}, nil)
		r.estimates.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
			{ID: "1", Status: entities.EstimateStatusDraft},
			{ID: "2", Status: entities.EstimateStatusApproved},
		}, nil)
		r.proposals.EXPECT().List(gomock.Any()).Return([]entities.Proposal{
			{ID: "1", Status: entities.ProposalStatusAccepted},
		}, nil)

		stats, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.DashboardStats{
			TotalProjects:     3,
			ActiveProjects:    2,
			TotalLeads:        2,
			NewLeads:          1,
			TotalEstimates:    2,
			PendingEstimates:  1,
			TotalMaterials:    1,
			TotalProposals:    1,
			AcceptedProposals: 1,
		}
		if stats != want {
			t.Fatalf("expected %+v, got %+v", want, stats)
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, r := newDashboardFixture(ctrl)

		r.projects.EXPECT().List(gomock.Any()).Return(nil, nil)
		r.leads.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Stats(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
