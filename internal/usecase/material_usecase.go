package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"crewlo/internal/domain/entities"
	"crewlo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/mock_$GOFILE -package=mocks

var (
	ErrMaterialNotFound  = errors.New("material not found")
	ErrInvalidMaterialID = errors.New("invalid material id")
)

// IMaterialUseCase exposes material CRUD. Materials have no status.
type IMaterialUseCase interface {
	Create(ctx context.Context, in entities.MaterialFields) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Update(ctx context.Context, id string, in entities.MaterialFields) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
	now  func() time.Time
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, now: utcNow}
}

func (u *MaterialUseCase) Create(ctx context.Context, in entities.MaterialFields) (entities.Material, error) {
	now := u.now()
	m := entities.Material{
		ID:             uuid.NewString(),
		MaterialFields: in,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	logrus.WithFields(logrus.Fields{"component": "material", "layer": "usecase", "id": created.ID}).Debug("material created")
	return created, nil
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, in entities.MaterialFields) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	updated, err := u.repo.Replace(ctx, entities.Material{ID: id, MaterialFields: in, UpdatedAt: u.now()})
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return updated, nil
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaterialID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMaterialNotFound
	}
	return nil
}
