package handlers

import (
	"net/http"
	"testing"

	"crewlo/internal/adapter/http/handlers/mocks"
	"crewlo/internal/domain/entities"
	"crewlo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func materialRouter(h *MaterialHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/materials", h.CreateMaterial)
	r.GET("/api/materials", h.ListMaterials)
	r.GET("/api/materials/:id", h.GetMaterial)
	r.PUT("/api/materials/:id", h.UpdateMaterial)
	r.DELETE("/api/materials/:id", h.DeleteMaterial)
	return r
}

func TestMaterialHandler(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		want := entities.MaterialFields{Name: "Oak Flooring", Category: "flooring", Unit: "sq ft", CostPerUnit: 8.5}
		uc.EXPECT().Create(gomock.Any(), want).Return(entities.Material{ID: "m-1", MaterialFields: want}, nil)

		w := perform(r, http.MethodPost, "/api/materials", `{"name":"Oak Flooring","category":"flooring","unit":"sq ft","cost_per_unit":8.5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		decode(t, w, &res)
		if res["cost_per_unit"] != 8.5 || res["name"] != "Oak Flooring" {
			t.Fatalf("unexpected body: %v", res)
		}
		if _, ok := res["status"]; ok {
			t.Fatalf("materials have no status: %v", res)
		}
	})

	t.Run("update replaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		want := entities.MaterialFields{Name: "Oak Flooring", Category: "flooring", Unit: "sq ft", CostPerUnit: 9}
		uc.EXPECT().Update(gomock.Any(), "m-1", want).Return(entities.Material{ID: "m-1", MaterialFields: want}, nil)

		w := perform(r, http.MethodPut, "/api/materials/m-1", `{"name":"Oak Flooring","category":"flooring","unit":"sq ft","cost_per_unit":9}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Material{}, usecase.ErrMaterialNotFound)

		if w := perform(r, http.MethodGet, "/api/materials/nope", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
