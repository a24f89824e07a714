package repository

import (
	"context"

	"crewlo/internal/domain/entities"
	"crewlo/internal/infrastructure/database"
	"crewlo/internal/usecase/interfaces"
)

type projectItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	Description   *string `dynamodbav:"description,omitempty"`
	Address       string  `dynamodbav:"address"`
	ClientID      string  `dynamodbav:"client_id"`
	ProjectType   string  `dynamodbav:"project_type"`
	EstimatedCost float64 `dynamodbav:"estimated_cost"`
	StartDate     *string `dynamodbav:"start_date,omitempty"`
	EndDate       *string `dynamodbav:"end_date,omitempty"`
	Status        string  `dynamodbav:"status"`
	ActualCost    float64 `dynamodbav:"actual_cost"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// Attributes overwritten by Replace. status, actual_cost and created_at survive updates.
var projectReplaceable = []string{
	"name", "description", "address", "client_id", "project_type",
	"estimated_cost", "start_date", "end_date", "updated_at",
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProjectDynamoRepository struct {
	col collection
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb database.DynamoDBAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{col: collection{ddb: ddb, tableName: tableName}}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := r.col.insert(ctx, toProjectItem(p)); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	items, err := findAll[projectItem](ctx, r.col)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectItem(it))
	}
	return out, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	it, found, err := findByID[projectItem](ctx, r.col, id)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Replace(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, found, err := replaceFields[projectItem](ctx, r.col, p.ID, toProjectItem(p), projectReplaceable)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.deleteByID(ctx, id)
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Address:       p.Address,
		ClientID:      p.ClientID,
		ProjectType:   p.ProjectType,
		EstimatedCost: p.EstimatedCost,
		StartDate:     formatTimePtr(p.StartDate),
		EndDate:       formatTimePtr(p.EndDate),
		Status:        string(p.Status),
		ActualCost:    p.ActualCost,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID: it.ID,
		ProjectFields: entities.ProjectFields{
			Name:          it.Name,
			Description:   it.Description,
			Address:       it.Address,
			ClientID:      it.ClientID,
			ProjectType:   it.ProjectType,
			EstimatedCost: it.EstimatedCost,
			StartDate:     parseTimePtr(it.StartDate),
			EndDate:       parseTimePtr(it.EndDate),
		},
		Status:     entities.ProjectStatus(it.Status),
		ActualCost: it.ActualCost,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
