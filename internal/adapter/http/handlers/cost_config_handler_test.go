package handlers

import (
	"net/http"
	"testing"

	"interiorquote/internal/adapter/http/handlers/mocks"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCostConfigRouter(t *testing.T) (*gin.Engine, *mocks.MockICostConfigUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICostConfigUseCase(ctrl)
	h := NewCostConfigHandler(uc)

	r := gin.New()
	r.GET("/v1/cost-configs", h.List)
	r.PUT("/v1/cost-configs", h.Upsert)
	return r, uc
}

func TestCostConfigHandler_List(t *testing.T) {
	t.Run("active only by default", func(t *testing.T) {
		r, uc := newCostConfigRouter(t)
		uc.EXPECT().ListActive(gomock.Any()).Return([]entities.CostConfig{{ItemType: "Sofa Set", IsActive: true}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/cost-configs", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("all", func(t *testing.T) {
		r, uc := newCostConfigRouter(t)
		uc.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/cost-configs?all=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestCostConfigHandler_Upsert(t *testing.T) {
	t.Run("missing item type", func(t *testing.T) {
		r, _ := newCostConfigRouter(t)

		w := doRequest(r, http.MethodPut, "/v1/cost-configs", `{"category":"Lighting"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		r, uc := newCostConfigRouter(t)
		uc.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.CostConfig{}, usecase.ErrInvalidCostConfig)

		w := doRequest(r, http.MethodPut, "/v1/cost-configs", `{"category":"Lighting","item_type":"Chandelier","base_price":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCostConfigRouter(t)
		uc.EXPECT().Upsert(gomock.Any(), entities.CostConfig{Category: "Lighting", ItemType: "Chandelier", BasePrice: 8000, LaborCostPerUnit: 1000, IsActive: true}).
			Return(entities.CostConfig{ID: "c-1", Category: "Lighting", ItemType: "Chandelier", BasePrice: 8000, LaborCostPerUnit: 1000, Unit: "unit", IsActive: true}, nil)

		w := doRequest(r, http.MethodPut, "/v1/cost-configs", `{"category":"Lighting","item_type":"Chandelier","base_price":8000,"labor_cost_per_unit":1000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["unit_price"] != 9000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
