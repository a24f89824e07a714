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
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
)

// IProposalUseCase exposes proposal CRUD. The referenced estimate is not checked.
type IProposalUseCase interface {
	Create(ctx context.Context, in entities.ProposalFields) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	Update(ctx context.Context, id string, in entities.ProposalFields) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}

type ProposalUseCase struct {
	repo interfaces.IProposalRepository
	now  func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, now: utcNow}
}

func (u *ProposalUseCase) Create(ctx context.Context, in entities.ProposalFields) (entities.Proposal, error) {
	now := u.now()
	p := entities.Proposal{
		ID:             uuid.NewString(),
		ProposalFields: in,
		Status:         entities.ProposalStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	logrus.WithFields(logrus.Fields{"component": "proposal", "layer": "usecase", "id": created.ID}).Debug("proposal created")
	return created, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) Update(ctx context.Context, id string, in entities.ProposalFields) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.Replace(ctx, entities.Proposal{ID: id, ProposalFields: in, UpdatedAt: u.now()})
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProposalID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProposalNotFound
	}
	return nil
}
