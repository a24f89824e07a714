package interfaces

import (
	"context"

	"crewlo/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/mock_$GOFILE -package=mocks

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Absence is signalled with a zero Project (empty ID), never with an error:
//   - GetByID returns the zero value when the id is unknown
//   - Replace returns the zero value when the id is unknown (nothing is written)

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Replace(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}
