package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
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

func multipartUpload(t *testing.T, fields map[string]string, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestDocumentHandler_UploadDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		body, contentType := multipartUpload(t, map[string]string{"engagementId": "e-1"}, "", "")

		r := gin.New()
		r.POST("/api/documents/upload", h.UploadDocument)

		req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().Upload(gomock.Any(), "e-1", "msa", "contract.pdf", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Document{ID: "d-1", EngagementID: "e-1", Filename: "contract.pdf"}, nil)

		body, contentType := multipartUpload(t, map[string]string{
			"engagementId": "e-1",
			"fileType":     "msa",
		}, "contract.pdf", "pdf bytes")

		r := gin.New()
		r.POST("/api/documents/upload", h.UploadDocument)

		req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().Upload(gomock.Any(), "e-404", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Document{}, usecase.ErrEngagementNotFound)

		body, contentType := multipartUpload(t, map[string]string{"engagementId": "e-404"}, "a.pdf", "x")

		r := gin.New()
		r.POST("/api/documents/upload", h.UploadDocument)

		req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ListDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc)

	uc.EXPECT().ListByEngagement(gomock.Any(), "e-1").Return([]entities.Document{{ID: "d-1"}}, nil)

	r := gin.New()
	r.GET("/api/documents", h.ListDocuments)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents?engagementId=e-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDocumentHandler_GetDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "d-1").
			Return(entities.Document{ID: "d-1", EngagementID: "e-1", Filename: "contract.pdf"}, nil)

		r := gin.New()
		r.GET("/api/documents/:id", h.GetDocument)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents/d-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"contract.pdf"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "d-404").
			Return(entities.Document{}, usecase.ErrDocumentNotFound)

		r := gin.New()
		r.GET("/api/documents/:id", h.GetDocument)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents/d-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_DownloadDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams the stored body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		doc := entities.Document{
			ID:          "d-1",
			Filename:    "contract.pdf",
			ContentType: "application/pdf",
			Size:        9,
		}
		uc.EXPECT().Download(gomock.Any(), "d-1").
			Return(doc, io.NopCloser(strings.NewReader("pdf bytes")), nil)

		r := gin.New()
		r.GET("/api/documents/:id/download", h.DownloadDocument)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents/d-1/download", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "pdf bytes" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, `"contract.pdf"`) {
			t.Fatalf("unexpected Content-Disposition: %q", got)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected Content-Type: %q", got)
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().Download(gomock.Any(), "d-404").
			Return(entities.Document{}, nil, usecase.ErrDocumentNotFound)

		r := gin.New()
		r.GET("/api/documents/:id/download", h.DownloadDocument)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents/d-404/download", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_DeleteDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

		r := gin.New()
		r.DELETE("/api/documents/:id", h.DeleteDocument)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/documents/d-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "d-404").Return(usecase.ErrDocumentNotFound)

		r := gin.New()
		r.DELETE("/api/documents/:id", h.DeleteDocument)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/documents/d-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
