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
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes estimate CRUD.
//
// total_cost is always recomputed from the incoming cost components:
//
//	total_cost = materials_cost + labor_cost + overhead_cost + profit_margin
//
// project_id and lead_id are kept as given; nothing checks that they exist.
type IEstimateUseCase interface {
	Create(ctx context.Context, in entities.EstimateFields) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, id string, in entities.EstimateFields) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
	now  func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, now: utcNow}
}

func (u *EstimateUseCase) Create(ctx context.Context, in entities.EstimateFields) (entities.Estimate, error) {
	in = withEstimateDefaults(in)
	now := u.now()
	e := entities.Estimate{
		ID:             uuid.NewString(),
		EstimateFields: in,
		TotalCost:      in.ComputeTotal(),
		Status:         entities.EstimateStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	logrus.WithFields(logrus.Fields{
		"component":  "estimate",
		"layer":      "usecase",
		"id":         created.ID,
		"total_cost": created.TotalCost,
	}).Debug("estimate created")
	return created, nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// Update replaces every creatable field and recomputes total_cost. status and
// created_at are kept from the stored estimate.
func (u *EstimateUseCase) Update(ctx context.Context, id string, in entities.EstimateFields) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	in = withEstimateDefaults(in)
	updated, err := u.repo.Replace(ctx, entities.Estimate{
		ID:             id,
		EstimateFields: in,
		TotalCost:      in.ComputeTotal(),
		UpdatedAt:      u.now(),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	return nil
}

func withEstimateDefaults(in entities.EstimateFields) entities.EstimateFields {
	if in.LineItems == nil {
		in.LineItems = []entities.LineItem{}
	}
	return in
}
