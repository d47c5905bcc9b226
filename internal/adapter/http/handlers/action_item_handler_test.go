package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"engagetrack/internal/adapter/http/handlers/mocks"
	"engagetrack/internal/domain/entities"
	"engagetrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestActionItemHandler_ListActionItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIActionItemUseCase(ctrl)
	h := NewActionItemHandler(uc)

	uc.EXPECT().ListByEngagement(gomock.Any(), "e-1").
		Return([]entities.ActionItem{{ID: "a-1", EngagementID: "e-1", Description: "send renewal draft"}}, nil)

	r := gin.New()
	r.GET("/api/engagements/:id/action-items", h.ListActionItems)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/engagements/e-1/action-items", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"_id":"a-1"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestActionItemHandler_CreateActionItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActionItemUseCase(ctrl)
		h := NewActionItemHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "e-1", gomock.Any()).
			Return(entities.ActionItem{ID: "a-1", EngagementID: "e-1", Description: "send renewal draft", Status: "open"}, nil)

		r := gin.New()
		r.POST("/api/engagements/:id/action-items", h.CreateActionItem)

		req := httptest.NewRequest(http.MethodPost, "/api/engagements/e-1/action-items",
			strings.NewReader(`{"description":"send renewal draft"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActionItemUseCase(ctrl)
		h := NewActionItemHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "e-1", gomock.Any()).
			Return(entities.ActionItem{}, usecase.ErrActionItemDescriptionRequired)

		r := gin.New()
		r.POST("/api/engagements/:id/action-items", h.CreateActionItem)

		req := httptest.NewRequest(http.MethodPost, "/api/engagements/e-1/action-items", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unknown engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActionItemUseCase(ctrl)
		h := NewActionItemHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "e-404", gomock.Any()).
			Return(entities.ActionItem{}, usecase.ErrEngagementNotFound)

		r := gin.New()
		r.POST("/api/engagements/:id/action-items", h.CreateActionItem)

		req := httptest.NewRequest(http.MethodPost, "/api/engagements/e-404/action-items",
			strings.NewReader(`{"description":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestActionItemHandler_CreateExternalActionItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIActionItemUseCase(ctrl)
	h := NewActionItemHandler(uc)

	uc.EXPECT().CreateExternal(gomock.Any(), gomock.Any()).
		Return(entities.ActionItem{ID: "a-9", EngagementID: "e-1", Source: "external_system"}, nil)

	r := gin.New()
	r.POST("/api/action-items/external", h.CreateExternalActionItem)

	req := httptest.NewRequest(http.MethodPost, "/api/action-items/external",
		strings.NewReader(`{"engagementId":"e-1","description":"ticket escalated"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"external_system"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestActionItemHandler_UpdateActionItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActionItemUseCase(ctrl)
		h := NewActionItemHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "a-1", gomock.Any()).
			Return(entities.ActionItem{ID: "a-1", Status: "closed"}, nil)

		r := gin.New()
		r.PUT("/api/action-items/:id", h.UpdateActionItem)

		req := httptest.NewRequest(http.MethodPut, "/api/action-items/a-1",
			strings.NewReader(`{"status":"closed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActionItemUseCase(ctrl)
		h := NewActionItemHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "a-404", gomock.Any()).
			Return(entities.ActionItem{}, usecase.ErrActionItemNotFound)

		r := gin.New()
		r.PUT("/api/action-items/:id", h.UpdateActionItem)

		req := httptest.NewRequest(http.MethodPut, "/api/action-items/a-404",
			strings.NewReader(`{"status":"closed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestActionItemHandler_DeleteActionItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIActionItemUseCase(ctrl)
	h := NewActionItemHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "a-1").Return(nil)

	r := gin.New()
	r.DELETE("/api/action-items/:id", h.DeleteActionItem)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/action-items/a-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
