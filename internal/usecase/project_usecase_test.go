package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crewlo/internal/domain/entities"
	mock_interfaces "crewlo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("defaults and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)
		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		uc.now = fixedClock(now)

		in := entities.ProjectFields{Name: "Kitchen", Address: "1 Main St", ClientID: "c-1", ProjectType: "renovation", EstimatedCost: 5000}
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.Status != entities.ProjectStatusActive || p.ActualCost != 0 {
					t.Fatalf("unexpected defaults: %+v", p)
				}
				if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
					t.Fatalf("expected created_at == updated_at == now, got %v / %v", p.CreatedAt, p.UpdatedAt)
				}
				if p.ProjectFields != in {
					t.Fatalf("fields not copied: %+v", p.ProjectFields)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Kitchen" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.ProjectFields{Name: "p"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProjectUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "a"}, {ID: "b"}}, nil)

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(res))
	}
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "p-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)

		res, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil || res.ID != "p-1" {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Update(context.Background(), "", entities.ProjectFields{})
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.Update(context.Background(), "missing", entities.ProjectFields{Name: "x"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("replaces fields and bumps updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)
		now := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
		uc.now = fixedClock(now)

		in := entities.ProjectFields{Name: "Deck", Address: "2 Side St", ClientID: "c-2", ProjectType: "residential"}
		repo.EXPECT().Replace(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID != "p-1" || p.ProjectFields != in || !p.UpdatedAt.Equal(now) {
					t.Fatalf("unexpected replacement: %+v", p)
				}
				p.Status = entities.ProjectStatusCompleted
				return p, nil
			},
		)

		res, err := uc.Update(context.Background(), "p-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Deck" || res.Status != entities.ProjectStatusCompleted {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "p-1"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
