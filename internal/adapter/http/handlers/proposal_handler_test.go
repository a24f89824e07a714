package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"crewlo/internal/adapter/http/handlers/mocks"
	"crewlo/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func proposalRouter(h *ProposalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/proposals", h.CreateProposal)
	r.GET("/api/proposals", h.ListProposals)
	r.GET("/api/proposals/:id", h.GetProposal)
	r.PUT("/api/proposals/:id", h.UpdateProposal)
	r.DELETE("/api/proposals/:id", h.DeleteProposal)
	return r
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	t.Run("valid_until parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		want := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.ProposalFields) (entities.Proposal, error) {
				if in.ValidUntil == nil || !in.ValidUntil.Equal(want) {
					t.Fatalf("unexpected valid_until: %v", in.ValidUntil)
				}
				return entities.Proposal{ID: "pr-1", ProposalFields: in, Status: entities.ProposalStatusDraft}, nil
			},
		)

		w := perform(r, http.MethodPost, "/api/proposals", `{"estimate_id":"e-1","title":"t","content":"c","terms":"net 30","valid_until":"2024-12-31"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		decode(t, w, &res)
		if res["valid_until"] != "2024-12-31T00:00:00Z" || res["status"] != "draft" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("bad valid_until", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		w := perform(r, http.MethodPost, "/api/proposals", `{"estimate_id":"e-1","title":"t","content":"c","terms":"net 30","valid_until":"next week"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
