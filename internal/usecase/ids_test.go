package usecase

import (
	"context"
	"testing"

	"crewlo/internal/domain/entities"
	mock_interfaces "crewlo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	const n = 50

	cases := []struct {
		name   string
		create func(ctrl *gomock.Controller) func() (string, error)
	}{
		{
			name: "project",
			create: func(ctrl *gomock.Controller) func() (string, error) {
				repo := mock_interfaces.NewMockIProjectRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
				).Times(n)
				uc := NewProjectUseCase(repo)
				return func() (string, error) {
					p, err := uc.Create(context.Background(), entities.ProjectFields{Name: "p"})
					return p.ID, err
				}
			},
		},
		{
			name: "lead",
			create: func(ctrl *gomock.Controller) func() (string, error) {
				repo := mock_interfaces.NewMockILeadRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil },
				).Times(n)
				uc := NewLeadUseCase(repo)
				return func() (string, error) {
					l, err := uc.Create(context.Background(), entities.LeadFields{Name: "l"})
					return l.ID, err
				}
			},
		},
		{
			name: "material",
			create: func(ctrl *gomock.Controller) func() (string, error) {
				repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m entities.Material) (entities.Material, error) { return m, nil },
				).Times(n)
				uc := NewMaterialUseCase(repo)
				return func() (string, error) {
					m, err := uc.Create(context.Background(), entities.MaterialFields{Name: "m"})
					return m.ID, err
				}
			},
		},
		{
			name: "estimate",
			create: func(ctrl *gomock.Controller) func() (string, error) {
				repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
				).Times(n)
				uc := NewEstimateUseCase(repo)
				return func() (string, error) {
					e, err := uc.Create(context.Background(), entities.EstimateFields{ProjectID: "p"})
					return e.ID, err
				}
			},
		},
		{
			name: "proposal",
			create: func(ctrl *gomock.Controller) func() (string, error) {
				repo := mock_interfaces.NewMockIProposalRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p entities.Proposal) (entities.Proposal, error) { return p, nil },
				).Times(n)
				uc := NewProposalUseCase(repo)
				return func() (string, error) {
					p, err := uc.Create(context.Background(), entities.ProposalFields{Title: "p"})
					return p.ID, err
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			create := tc.create(ctrl)

			seen := map[string]bool{}
			for i := 0; i < n; i++ {
				id, err := create()
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if id == "" || seen[id] {
					t.Fatalf("empty or duplicate id %q", id)
				}
				seen[id] = true
			}
		})
	}
}
