package usecase

import (
	"context"
	"errors"
	"testing"

	"crewlo/internal/domain/entities"
	mock_interfaces "crewlo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMaterialUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	uc := NewMaterialUseCase(repo)

	in := entities.MaterialFields{Name: "Oak Flooring", Category: "flooring", Unit: "sqft", CostPerUnit: 8.5}
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
		func(_ context.Context, m entities.Material) (entities.Material, error) {
			if m.ID == "" || m.MaterialFields != in {
				t.Fatalf("unexpected material: %+v", m)
			}
			return m, nil
		},
	)

	res, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CostPerUnit != 8.5 || res.CreatedAt.IsZero() {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMaterialUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Material{}, nil)

		if _, err := uc.Update(context.Background(), "m-1", entities.MaterialFields{}); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Material) (entities.Material, error) { return m, nil },
		)

		res, err := uc.Update(context.Background(), "m-1", entities.MaterialFields{Name: "Drywall", CostPerUnit: 12})
		if err != nil || res.ID != "m-1" || res.CostPerUnit != 12 {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestMaterialUseCase_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	uc := NewMaterialUseCase(repo)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1"}, nil),
		repo.EXPECT().Delete(gomock.Any(), "m-1").Return(true, nil),
		repo.EXPECT().Delete(gomock.Any(), "m-1").Return(false, nil),
	)

	if _, err := uc.GetByID(context.Background(), "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(context.Background(), "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(context.Background(), "m-1"); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound on second delete, got %v", err)
	}
}
