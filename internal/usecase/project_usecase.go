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
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// IProjectUseCase exposes project CRUD.
//
// Update is a full replacement of ProjectFields; status, actual_cost and
// created_at are kept from the stored project.
type IProjectUseCase interface {
	Create(ctx context.Context, in entities.ProjectFields) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, id string, in entities.ProjectFields) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
	now  func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, now: utcNow}
}

func (u *ProjectUseCase) Create(ctx context.Context, in entities.ProjectFields) (entities.Project, error) {
	now := u.now()
	p := entities.Project{
		ID:            uuid.NewString(),
		ProjectFields: in,
		Status:        entities.ProjectStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	logrus.WithFields(logrus.Fields{"component": "project", "layer": "usecase", "id": created.ID}).Debug("project created")
	return created, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, in entities.ProjectFields) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	updated, err := u.repo.Replace(ctx, entities.Project{ID: id, ProjectFields: in, UpdatedAt: u.now()})
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}
