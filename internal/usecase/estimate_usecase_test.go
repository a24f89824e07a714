package usecase

import (
	"context"
	"errors"
	"testing"

	"crewlo/internal/domain/entities"
	mock_interfaces "crewlo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("computes total and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		in := entities.EstimateFields{
			ProjectID:     "p1",
			Description:   "Kitchen remodel",
			MaterialsCost: 10000,
			LaborCost:     12000,
			OverheadCost:  2000,
			ProfitMargin:  4000,
		}
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Status != entities.EstimateStatusDraft {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.LineItems == nil || len(e.LineItems) != 0 {
					t.Fatalf("expected empty line items, got %#v", e.LineItems)
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalCost != 28000 {
			t.Fatalf("expected total 28000, got %v", res.TotalCost)
		}
	})

	t.Run("keeps line items in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		items := []entities.LineItem{{"label": "tile"}, {"label": "grout"}}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		res, err := uc.Create(context.Background(), entities.EstimateFields{ProjectID: "p1", LineItems: items})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.LineItems) != 2 || res.LineItems[0]["label"] != "tile" || res.LineItems[1]["label"] != "grout" {
			t.Fatalf("unexpected line items: %#v", res.LineItems)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), entities.EstimateFields{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		if _, err := uc.Update(context.Background(), "  ", entities.EstimateFields{}); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil)

		if _, err := uc.Update(context.Background(), "e-1", entities.EstimateFields{}); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Replace(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != "e-1" || e.TotalCost != 160 || e.UpdatedAt.IsZero() {
					t.Fatalf("unexpected replacement: %+v", e)
				}
				return e, nil
			},
		)

		res, err := uc.Update(context.Background(), "e-1", entities.EstimateFields{
			MaterialsCost: 100, LaborCost: 50, OverheadCost: 0, ProfitMargin: 10,
		})
		if err != nil || res.TotalCost != 160 {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestEstimateUseCase_GetAndDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		if _, err := uc.GetByID(context.Background(), "e-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "e-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "e-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})
}
