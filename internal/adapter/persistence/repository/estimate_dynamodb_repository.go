package repository

import (
	"context"

	"crewlo/internal/domain/entities"
	"crewlo/internal/infrastructure/database"
	"crewlo/internal/usecase/interfaces"
)

type estimateItem struct {
	ID            string              `dynamodbav:"id"`
	ProjectID     string              `dynamodbav:"project_id"`
	LeadID        *string             `dynamodbav:"lead_id,omitempty"`
	Description   string              `dynamodbav:"description"`
	MaterialsCost float64             `dynamodbav:"materials_cost"`
	LaborCost     float64             `dynamodbav:"labor_cost"`
	OverheadCost  float64             `dynamodbav:"overhead_cost"`
	ProfitMargin  float64             `dynamodbav:"profit_margin"`
	LineItems     []entities.LineItem `dynamodbav:"line_items"`
	TotalCost     float64             `dynamodbav:"total_cost"`
	Status        string              `dynamodbav:"status"`
	CreatedAt     string              `dynamodbav:"created_at"`
	UpdatedAt     string              `dynamodbav:"updated_at"`
}

// total_cost is derived, so it is rewritten together with the cost components.
var estimateReplaceable = []string{
	"project_id", "lead_id", "description", "materials_cost", "labor_cost",
	"overhead_cost", "profit_margin", "line_items", "total_cost", "updated_at",
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// line_items are stored as a list of maps, in the order received.
type EstimateDynamoRepository struct {
	col collection
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb database.DynamoDBAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{col: collection{ddb: ddb, tableName: tableName}}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := r.col.insert(ctx, toEstimateItem(e)); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	items, err := findAll[estimateItem](ctx, r.col)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(items))
	for _, it := range items {
		out = append(out, fromEstimateItem(it))
	}
	return out, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	it, found, err := findByID[estimateItem](ctx, r.col, id)
	if err != nil || !found {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, found, err := replaceFields[estimateItem](ctx, r.col, e.ID, toEstimateItem(e), estimateReplaceable)
	if err != nil || !found {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.deleteByID(ctx, id)
}

func toEstimateItem(e entities.Estimate) estimateItem {
	lineItems := e.LineItems
	if lineItems == nil {
		lineItems = []entities.LineItem{}
	}
	return estimateItem{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		LeadID:        e.LeadID,
		Description:   e.Description,
		MaterialsCost: e.MaterialsCost,
		LaborCost:     e.LaborCost,
		OverheadCost:  e.OverheadCost,
		ProfitMargin:  e.ProfitMargin,
		LineItems:     lineItems,
		TotalCost:     e.TotalCost,
		Status:        string(e.Status),
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	lineItems := it.LineItems
	if lineItems == nil {
		lineItems = []entities.LineItem{}
	}
	return entities.Estimate{
		ID: it.ID,
		EstimateFields: entities.EstimateFields{
			ProjectID:     it.ProjectID,
			LeadID:        it.LeadID,
			Description:   it.Description,
			MaterialsCost: it.MaterialsCost,
			LaborCost:     it.LaborCost,
			OverheadCost:  it.OverheadCost,
			ProfitMargin:  it.ProfitMargin,
			LineItems:     lineItems,
		},
		TotalCost: it.TotalCost,
		Status:    entities.EstimateStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
