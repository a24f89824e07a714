package interfaces

import (
	"context"

	"crewlo/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/mock_$GOFILE -package=mocks

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Absence is signalled with a zero Estimate (empty ID), never with an error:
//   - GetByID returns the zero value when the id is unknown
//   - Replace returns the zero value when the id is unknown (nothing is written)
//   - Replace also persists the recomputed total_cost.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
