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
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidLeadID = errors.New("invalid lead id")
)

// ILeadUseCase exposes lead CRUD. The source is stored as given; defaulting an
// omitted source happens at the request boundary, where omission is visible.
type ILeadUseCase interface {
	Create(ctx context.Context, in entities.LeadFields) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, id string, in entities.LeadFields) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
	now  func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo, now: utcNow}
}

func (u *LeadUseCase) Create(ctx context.Context, in entities.LeadFields) (entities.Lead, error) {
	now := u.now()
	l := entities.Lead{
		ID:         uuid.NewString(),
		LeadFields: in,
		Status:     entities.LeadStatusNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	logrus.WithFields(logrus.Fields{"component": "lead", "layer": "usecase", "id": created.ID}).Debug("lead created")
	return created, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) Update(ctx context.Context, id string, in entities.LeadFields) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	updated, err := u.repo.Replace(ctx, entities.Lead{ID: id, LeadFields: in, UpdatedAt: u.now()})
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}
