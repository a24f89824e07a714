package repository

import (
	"context"

	"crewlo/internal/domain/entities"
	"crewlo/internal/infrastructure/database"
	"crewlo/internal/usecase/interfaces"
)

type leadItem struct {
	ID              string  `dynamodbav:"id"`
	Name            string  `dynamodbav:"name"`
	Email           string  `dynamodbav:"email"`
	Phone           string  `dynamodbav:"phone"`
	Address         string  `dynamodbav:"address"`
	ProjectType     string  `dynamodbav:"project_type"`
	Description     *string `dynamodbav:"description,omitempty"`
	Source          string  `dynamodbav:"source"`
	EstimatedBudget float64 `dynamodbav:"estimated_budget"`
	Notes           *string `dynamodbav:"notes,omitempty"`
	Status          string  `dynamodbav:"status"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

var leadReplaceable = []string{
	"name", "email", "phone", "address", "project_type", "description",
	"source", "estimated_budget", "notes", "updated_at",
}

// LeadDynamoRepository persists Lead entities in DynamoDB (PK: id).
type LeadDynamoRepository struct {
	col collection
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb database.DynamoDBAPI, tableName string) *LeadDynamoRepository {
	return &LeadDynamoRepository{col: collection{ddb: ddb, tableName: tableName}}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	if err := r.col.insert(ctx, toLeadItem(l)); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	items, err := findAll[leadItem](ctx, r.col)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		out = append(out, fromLeadItem(it))
	}
	return out, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	it, found, err := findByID[leadItem](ctx, r.col, id)
	if err != nil || !found {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Replace(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it, found, err := replaceFields[leadItem](ctx, r.col, l.ID, toLeadItem(l), leadReplaceable)
	if err != nil || !found {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.deleteByID(ctx, id)
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:              l.ID,
		Name:            l.Name,
		Email:           l.Email,
		Phone:           l.Phone,
		Address:         l.Address,
		ProjectType:     l.ProjectType,
		Description:     l.Description,
		Source:          l.Source,
		EstimatedBudget: l.EstimatedBudget,
		Notes:           l.Notes,
		Status:          string(l.Status),
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID: it.ID,
		LeadFields: entities.LeadFields{
			Name:            it.Name,
			Email:           it.Email,
			Phone:           it.Phone,
			Address:         it.Address,
			ProjectType:     it.ProjectType,
			Description:     it.Description,
			Source:          it.Source,
			EstimatedBudget: it.EstimatedBudget,
			Notes:           it.Notes,
		},
		Status:    entities.LeadStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
