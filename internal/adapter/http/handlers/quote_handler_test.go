package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interiorquote/internal/adapter/http/handlers/mocks"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/projects/:id/quote", h.Generate)
	r.GET("/v1/projects/:id/quote", h.GetByProject)
	r.GET("/v1/quotes/:id", h.Get)
	r.PUT("/v1/quotes/:id/items", h.UpdateItems)
	r.POST("/v1/quotes/:id/preview", h.Preview)
	r.POST("/v1/quotes/:id/finalize", h.Finalize)
	r.PATCH("/v1/quotes/:id/decision", h.SetDecision)
	r.GET("/v1/quotes/:id/export/excel", h.ExportExcel)
	return r, uc
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func draftQuote() entities.Quote {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:        "q-1",
		ProjectID: "p-1",
		Items: []entities.QuoteItem{
			{Name: "Sofa Set", Category: "Furniture", Quantity: 1, Unit: "unit", UnitPrice: 30000, TotalPrice: 30000},
		},
		TotalAmount: 30000,
		Version:     1,
		Status:      entities.QuoteStatusDraft,
		ValidUntil:  now.Add(entities.DefaultQuoteValidity),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestQuoteHandler_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Generate(gomock.Any(), "p-1").Return(draftQuote(), nil)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quote", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "q-1" || body["status"] != "draft" || body["total_amount"] != 30000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("project not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Generate(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrProjectNotFound)

		w := doRequest(r, http.MethodPost, "/v1/projects/missing/quote", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "PROJECT_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("generation failure carries provider details", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Generate(gomock.Any(), "p-1").Return(entities.Quote{}, &usecase.GenerationError{Op: "boq", Err: errors.New("response has no items")})

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quote", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "GENERATION_FAILED" || body["details"] != "response has no items" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Get(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by project not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByProjectID(gomock.Any(), "p-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodGet, "/v1/projects/p-9/quote", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateItems(t *testing.T) {
	t.Run("items not an array", func(t *testing.T) {
		r, _ := newQuoteRouter(t)

		w := doRequest(r, http.MethodPut, "/v1/quotes/q-1/items", `{"items":"not-an-array"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_ITEMS" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)

		w := doRequest(r, http.MethodPut, "/v1/quotes/q-1/items", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty array is rejected by the usecase", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdateItems(gomock.Any(), "q-1", []entities.QuoteItem{}, 0).Return(entities.Quote{}, usecase.ErrInvalidItems)

		w := doRequest(r, http.MethodPut, "/v1/quotes/q-1/items", `{"items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes items and expected version", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		want := []entities.QuoteItem{{Name: "Sofa Set", Category: "Furniture", Quantity: 2, UnitPrice: 30000}}
		updated := draftQuote()
		updated.Items = []entities.QuoteItem{{Name: "Sofa Set", Category: "Furniture", Quantity: 2, UnitPrice: 30000, TotalPrice: 60000}}
		updated.TotalAmount = 60000
		updated.Version = 2
		uc.EXPECT().UpdateItems(gomock.Any(), "q-1", want, 1).Return(updated, nil)

		w := doRequest(r, http.MethodPut, "/v1/quotes/q-1/items", `{"items":[{"name":"Sofa Set","category":"Furniture","quantity":2,"unit_price":30000}],"expected_version":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["version"] != 2.0 || body["total_amount"] != 60000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("stale version", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdateItems(gomock.Any(), "q-1", gomock.Any(), 1).Return(entities.Quote{}, usecase.ErrQuoteVersionConflict)

		w := doRequest(r, http.MethodPut, "/v1/quotes/q-1/items", `{"items":[{"name":"Sofa Set","quantity":1,"unit_price":1}],"expected_version":1}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_PreviewAndFinalize(t *testing.T) {
	t.Run("preview render failure", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Preview(gomock.Any(), "q-1").Return(entities.Quote{}, &usecase.RenderError{Err: errors.New("disk full")})

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/preview", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "RENDER_FAILED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("preview success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := draftQuote()
		q.DocumentURL = "/files/quotes/q-1/living-room-1-abcd1234.pdf"
		uc.EXPECT().Preview(gomock.Any(), "q-1").Return(q, nil)

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/preview", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["document_url"] != q.DocumentURL {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("finalize without email still succeeds", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := draftQuote()
		q.Status = entities.QuoteStatusSent
		uc.EXPECT().Finalize(gomock.Any(), "q-1").Return(usecase.FinalizeResult{Quote: q, Outcome: usecase.FinalizeOutcomeSentWithoutNotification}, nil)

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/finalize", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["outcome"] != "sent_without_notification" || body["notification_sent"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("finalize of a settled quote", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Finalize(gomock.Any(), "q-1").Return(usecase.FinalizeResult{}, usecase.ErrInvalidTransition)

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/finalize", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SetDecision(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newQuoteRouter(t)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q-1/decision", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid decision", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().SetDecision(gomock.Any(), "q-1", entities.QuoteStatus("draft")).Return(entities.Quote{}, usecase.ErrInvalidDecision)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q-1/decision", `{"status":"draft"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := draftQuote()
		q.Status = entities.QuoteStatusApproved
		uc.EXPECT().SetDecision(gomock.Any(), "q-1", entities.QuoteStatusApproved).Return(q, nil)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q-1/decision", `{"status":"approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ExportExcel(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ExportExcel(gomock.Any(), "q-1").Return([]byte("PK"), "living-room-v2.xlsx", nil)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1/export/excel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="living-room-v2.xlsx"` {
			t.Fatalf("unexpected content disposition %q", got)
		}
		if got := w.Header().Get("Content-Type"); got != xlsxContentType {
			t.Fatalf("unexpected content type %q", got)
		}
		if w.Body.String() != "PK" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("unknown error", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ExportExcel(gomock.Any(), "q-1").Return(nil, "", errors.New("boom"))

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1/export/excel", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
