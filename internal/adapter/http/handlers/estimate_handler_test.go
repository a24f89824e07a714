package handlers

import (
	"context"
	"net/http"
	"testing"

	"crewlo/internal/adapter/http/handlers/mocks"
	"crewlo/internal/domain/entities"
	"crewlo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func estimateRouter(h *EstimateHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/estimates", h.CreateEstimate)
	r.GET("/api/estimates", h.ListEstimates)
	r.GET("/api/estimates/:id", h.GetEstimate)
	r.PUT("/api/estimates/:id", h.UpdateEstimate)
	r.DELETE("/api/estimates/:id", h.DeleteEstimate)
	return r
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	t.Run("cost components are required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		w := perform(r, http.MethodPost, "/api/estimates", `{"project_id":"p1","description":"d","materials_cost":1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("line items must be a list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		w := perform(r, http.MethodPost, "/api/estimates",
			`{"project_id":"p1","description":"d","materials_cost":1,"labor_cost":1,"overhead_cost":1,"profit_margin":1,"line_items":"many"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.EstimateFields) (entities.Estimate, error) {
				if len(in.LineItems) != 1 || in.LineItems[0]["label"] != "cabinets" {
					t.Fatalf("unexpected line items: %#v", in.LineItems)
				}
				return entities.Estimate{ID: "e-1", EstimateFields: in, TotalCost: in.ComputeTotal(), Status: entities.EstimateStatusDraft}, nil
			},
		)

		w := perform(r, http.MethodPost, "/api/estimates",
			`{"project_id":"p1","description":"Kitchen remodel","materials_cost":10000,"labor_cost":12000,"overhead_cost":2000,"profit_margin":4000,"line_items":[{"label":"cabinets"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		decode(t, w, &res)
		if res["total_cost"] != 28000.0 || res["status"] != "draft" {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}

func TestEstimateHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := estimateRouter(NewEstimateHandler(uc))

	uc.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)
	uc.EXPECT().Update(gomock.Any(), "x", gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateNotFound)
	uc.EXPECT().Delete(gomock.Any(), "x").Return(usecase.ErrEstimateNotFound)

	body := `{"project_id":"p1","description":"d","materials_cost":0,"labor_cost":0,"overhead_cost":0,"profit_margin":0}`
	for _, call := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, body},
		{http.MethodDelete, ""},
	} {
		w := perform(r, call.method, "/api/estimates/x", call.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", call.method, w.Code)
		}
		var res errorBody
		decode(t, w, &res)
		if res.Code != "ESTIMATE_NOT_FOUND" || string(res.Detail) != `"Estimate not found"` {
			t.Fatalf("%s: unexpected body %s", call.method, w.Body.String())
		}
	}
}
