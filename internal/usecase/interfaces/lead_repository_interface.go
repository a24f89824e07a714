package interfaces

import (
	"context"

	"crewlo/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/mock_$GOFILE -package=mocks

// ILeadRepository abstracts DynamoDB persistence for Lead. See IProjectRepository.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Replace(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}
