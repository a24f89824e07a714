package repository

import (
	"context"

	"crewlo/internal/domain/entities"
	"crewlo/internal/infrastructure/database"
	"crewlo/internal/usecase/interfaces"
)

type proposalItem struct {
	ID         string  `dynamodbav:"id"`
	EstimateID string  `dynamodbav:"estimate_id"`
	Title      string  `dynamodbav:"title"`
	Content    string  `dynamodbav:"content"`
	Terms      string  `dynamodbav:"terms"`
	ValidUntil *string `dynamodbav:"valid_until,omitempty"`
	Status     string  `dynamodbav:"status"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

var proposalReplaceable = []string{
	"estimate_id", "title", "content", "terms", "valid_until", "updated_at",
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB (PK: id).
type ProposalDynamoRepository struct {
	col collection
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb database.DynamoDBAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{col: collection{ddb: ddb, tableName: tableName}}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if err := r.col.insert(ctx, toProposalItem(p)); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	items, err := findAll[proposalItem](ctx, r.col)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(items))
	for _, it := range items {
		out = append(out, fromProposalItem(it))
	}
	return out, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	it, found, err := findByID[proposalItem](ctx, r.col, id)
	if err != nil || !found {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) Replace(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it, found, err := replaceFields[proposalItem](ctx, r.col, p.ID, toProposalItem(p), proposalReplaceable)
	if err != nil || !found {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.deleteByID(ctx, id)
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:         p.ID,
		EstimateID: p.EstimateID,
		Title:      p.Title,
		Content:    p.Content,
		Terms:      p.Terms,
		ValidUntil: formatTimePtr(p.ValidUntil),
		Status:     string(p.Status),
		CreatedAt:  formatTime(p.CreatedAt),
		UpdatedAt:  formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID: it.ID,
		ProposalFields: entities.ProposalFields{
			EstimateID: it.EstimateID,
			Title:      it.Title,
			Content:    it.Content,
			Terms:      it.Terms,
			ValidUntil: parseTimePtr(it.ValidUntil),
		},
		Status:    entities.ProposalStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
