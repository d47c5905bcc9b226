package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidDocumentType   = errors.New("invalid document file type")
	ErrDocumentFileRequired  = errors.New("document file is required")
	ErrDocumentEngagementRef = errors.New("document engagement id is required")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrInvalidDocumentID     = errors.New("invalid document id")
)

// IDocumentUseCase handles the document lifecycle: file bytes to object
// storage, metadata to the documents table, msa/sow references onto the
// owning engagement, and retrieval/removal of both halves.

type IDocumentUseCase interface {
	Upload(ctx context.Context, engagementID, fileType, filename, contentType string, size int64, body io.Reader) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	Download(ctx context.Context, id string) (entities.Document, io.ReadCloser, error)
	ListByEngagement(ctx context.Context, engagementID string) ([]entities.Document, error)
	Delete(ctx context.Context, id string) error
}

type DocumentUseCase struct {
	documents   interfaces.IDocumentRepository
	engagements interfaces.IEngagementRepository
	storage     interfaces.IDocumentStorage
	log         *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(documents interfaces.IDocumentRepository, engagements interfaces.IEngagementRepository, storage interfaces.IDocumentStorage, log *zap.Logger) *DocumentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentUseCase{documents: documents, engagements: engagements, storage: storage, log: log}
}

func (u *DocumentUseCase) Upload(ctx context.Context, engagementID, fileType, filename, contentType string, size int64, body io.Reader) (entities.Document, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.Document{}, ErrDocumentEngagementRef
	}
	if body == nil || filename == "" {
		return entities.Document{}, ErrDocumentFileRequired
	}

	docType, err := documentFileType(fileType)
	if err != nil {
		return entities.Document{}, err
	}

	raw, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return entities.Document{}, err
	}
	if raw == nil {
		return entities.Document{}, ErrEngagementNotFound
	}

	id := uuid.NewString()
	key := fmt.Sprintf("engagements/%s/%s-%s", engagementID, id, filename)
	path, err := u.storage.Put(ctx, key, contentType, size, body)
	if err != nil {
		return entities.Document{}, err
	}

	doc, err := u.documents.Create(ctx, entities.Document{
		ID:           id,
		EngagementID: engagementID,
		Filename:     filename,
		ContentType:  contentType,
		FileType:     docType,
		Path:         path,
		Size:         size,
		UploadedAt:   time.Now().UTC(),
	})
	if err != nil {
		return entities.Document{}, err
	}

	if docType == entities.DocumentFileTypeMSA || docType == entities.DocumentFileTypeSOW {
		if _, err := u.engagements.AppendContractDocument(ctx, engagementID, string(docType), path); err != nil {
			// the upload itself succeeded; the dangling reference is a
			// follow-up the user can retry from the engagement page
			u.log.Warn("failed to attach document reference to engagement",
				zap.String("engagement_id", engagementID), zap.String("document_id", id), zap.Error(err))
		}
	}
	return doc, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	doc, err := u.documents.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

// Download fetches the metadata and opens the stored body. The caller owns
// the returned ReadCloser.
func (u *DocumentUseCase) Download(ctx context.Context, id string) (entities.Document, io.ReadCloser, error) {
	doc, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, nil, err
	}

	body, err := u.storage.Get(ctx, doc.Path)
	if err != nil {
		return entities.Document{}, nil, err
	}
	return doc, body, nil
}

func (u *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := u.documents.Delete(ctx, doc.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}

	if err := u.storage.Delete(ctx, doc.Path); err != nil {
		// metadata is gone either way; an orphaned object is cleaned up by
		// the bucket lifecycle rule
		u.log.Warn("failed to delete stored document body",
			zap.String("document_id", doc.ID), zap.String("path", doc.Path), zap.Error(err))
	}
	return nil
}

func (u *DocumentUseCase) ListByEngagement(ctx context.Context, engagementID string) ([]entities.Document, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return nil, ErrDocumentEngagementRef
	}
	return u.documents.ListByEngagement(ctx, engagementID)
}

func documentFileType(s string) (entities.DocumentFileType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(entities.DocumentFileTypeOther):
		return entities.DocumentFileTypeOther, nil
	case string(entities.DocumentFileTypeMSA):
		return entities.DocumentFileTypeMSA, nil
	case string(entities.DocumentFileTypeSOW):
		return entities.DocumentFileTypeSOW, nil
	default:
		return "", ErrInvalidDocumentType
	}
}
