package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "engagetrack/internal/adapter/http/dto/response"
	"engagetrack/internal/usecase"
	"engagetrack/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles multipart uploads and document listings.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := mapDocumentError(usecase.ErrDocumentFileRequired)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	doc, err := h.usecase.Upload(
		c.Request.Context(),
		c.PostForm("engagementId"),
		c.PostForm("fileType"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	doc, body, err := h.usecase.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer body.Close()

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, doc.Size, contentType, body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.Filename),
	})
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.ListByEngagement(c.Request.Context(), c.Query("engagementId"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDocumentFileRequired):
		return pkg.NewValidationError("DOCUMENT_VALIDATION", "Document validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "file", Reason: "file is required"},
		})
	case errors.Is(err, usecase.ErrDocumentEngagementRef):
		return pkg.NewValidationError("DOCUMENT_VALIDATION", "Document validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "engagementId", Reason: "engagementId is required"},
		})
	case errors.Is(err, usecase.ErrInvalidDocumentType):
		return pkg.NewValidationError("DOCUMENT_VALIDATION", "Document validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "fileType", Reason: "fileType must be msa, sow or other"},
		})
	case errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
