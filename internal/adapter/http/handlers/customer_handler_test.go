package handlers

import (
	"bytes"
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

func TestCustomerHandler_ListCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes structured filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().List(gomock.Any(), map[string]string{"industry": "tech", "status": "active"}).
			Return([]entities.Customer{{ID: "c-1", Name: "Acme"}}, nil)

		r := gin.New()
		r.GET("/api/customers", h.ListCustomers)

		req := httptest.NewRequest(http.MethodGet, "/api/customers?industry=tech&status=active", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "c-1" || body[0]["_id"] != "c-1" {
			t.Fatalf("expected id mirrored under _id, got %+v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/api/customers", h.ListCustomers)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_SearchCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query parameter drives the text match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Search(gomock.Any(), "acme", map[string]string{"status": "active"}).
			Return([]entities.Customer{{ID: "c-1", Name: "Acme"}}, nil)

		r := gin.New()
		r.GET("/api/customers/search", h.SearchCustomers)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers/search?query=acme&status=active", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("q accepted as alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Search(gomock.Any(), "acme", map[string]string{}).Return(nil, nil)

		r := gin.New()
		r.GET("/api/customers/search", h.SearchCustomers)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers/search?q=acme", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_AutocompleteCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().AutocompleteNames(gomock.Any(), "ac").Return([]string{"Acme"}, nil)

	r := gin.New()
	r.GET("/api/customers/autocomplete/names", h.AutocompleteCustomers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers/autocomplete/names?prefix=ac", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	suggestions, _ := body["suggestions"].([]any)
	if len(suggestions) != 1 || suggestions[0] != "Acme" {
		t.Fatalf("expected suggestions [Acme], got %+v", body)
	}
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		r := gin.New()
		r.GET("/api/customers/:id", h.GetCustomer)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers/c-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/api/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name surfaces field detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrCustomerNameRequired)

		r := gin.New()
		r.POST("/api/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(`{"industry":"tech"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		fields, _ := body["fields"].([]any)
		if len(fields) != 1 {
			t.Fatalf("expected field-level detail, got %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, payload map[string]any) (entities.Customer, error) {
				loc, ok := payload["location"].(map[string]any)
				if !ok || loc["city"] != "Springfield" {
					t.Fatalf("nested location not forwarded: %+v", payload)
				}
				return entities.Customer{ID: "c-1", Name: "Acme"}, nil
			},
		)

		r := gin.New()
		r.POST("/api/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/api/customers",
			bytes.NewBufferString(`{"name":"Acme","location":{"city":"Springfield"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

	r := gin.New()
	r.DELETE("/api/customers/:id", h.DeleteCustomer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/customers/c-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
