package repository

import (
	"context"

	"crewlo/internal/domain/entities"
	"crewlo/internal/infrastructure/database"
	"crewlo/internal/usecase/interfaces"
)

type materialItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Unit        string  `dynamodbav:"unit"`
	CostPerUnit float64 `dynamodbav:"cost_per_unit"`
	Supplier    *string `dynamodbav:"supplier,omitempty"`
	Description *string `dynamodbav:"description,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

var materialReplaceable = []string{
	"name", "category", "unit", "cost_per_unit", "supplier", "description", "updated_at",
}

type MaterialDynamoRepository struct {
	col collection
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb database.DynamoDBAPI, tableName string) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{col: collection{ddb: ddb, tableName: tableName}}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	if err := r.col.insert(ctx, toMaterialItem(m)); err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	items, err := findAll[materialItem](ctx, r.col)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Material, 0, len(items))
	for _, it := range items {
		out = append(out, fromMaterialItem(it))
	}
	return out, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	it, found, err := findByID[materialItem](ctx, r.col, id)
	if err != nil || !found {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Replace(ctx context.Context, m entities.Material) (entities.Material, error) {
	it, found, err := replaceFields[materialItem](ctx, r.col, m.ID, toMaterialItem(m), materialReplaceable)
	if err != nil || !found {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.deleteByID(ctx, id)
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		CostPerUnit: m.CostPerUnit,
		Supplier:    m.Supplier,
		Description: m.Description,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	return entities.Material{
		ID: it.ID,
		MaterialFields: entities.MaterialFields{
			Name:        it.Name,
			Category:    it.Category,
			Unit:        it.Unit,
			CostPerUnit: it.CostPerUnit,
			Supplier:    it.Supplier,
			Description: it.Description,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
