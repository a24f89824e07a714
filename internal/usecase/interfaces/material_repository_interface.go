package interfaces

import (
	"context"

	"crewlo/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/mock_$GOFILE -package=mocks

// IMaterialRepository abstracts DynamoDB persistence for Material. See IProjectRepository.
type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Replace(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) (bool, error)
}
