package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"engagetrack/internal/adapter/http/handlers/mocks"
	"engagetrack/internal/domain/entities"
	"engagetrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetKPIs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().KPIs(gomock.Any()).Return(usecase.KPIs{
			TotalCustomers:     3,
			ActiveEngagements:  2,
			TotalContractValue: 150000,
			LatestExpiry:       "2027-01-15",
		}, nil)

		r := gin.New()
		r.GET("/api/dashboard/kpis", h.GetKPIs)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["total_customers"] != 3.0 || body["latest_expiry"] != "2027-01-15" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().KPIs(gomock.Any()).Return(usecase.KPIs{}, errors.New("db"))

		r := gin.New()
		r.GET("/api/dashboard/kpis", h.GetKPIs)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_GetStatusDistribution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	uc.EXPECT().StatusDistribution(gomock.Any()).Return(entities.StatusCounts{Green: 2, Yellow: 1, Red: 1}, nil)

	r := gin.New()
	r.GET("/api/dashboard/status-distribution", h.GetStatusDistribution)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/status-distribution", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["green"] != 2.0 || body["yellow"] != 1.0 || body["red"] != 1.0 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestDashboardHandler_GetAtRiskEngagements(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	uc.EXPECT().AtRiskEngagements(gomock.Any()).Return([]usecase.AtRiskEngagement{
		{EngagementID: "e-1", Name: "Rescue", CustomerName: "Acme"},
	}, nil)

	r := gin.New()
	r.GET("/api/dashboard/at-risk-engagements", h.GetAtRiskEngagements)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/at-risk-engagements", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
