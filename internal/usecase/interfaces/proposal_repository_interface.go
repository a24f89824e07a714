package interfaces

import (
	"context"

	"crewlo/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/mock_$GOFILE -package=mocks

// IProposalRepository abstracts DynamoDB persistence for Proposal. See IProjectRepository.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	Replace(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Delete(ctx context.Context, id string) (bool, error)
}
