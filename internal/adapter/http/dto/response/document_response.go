package response

import (
	"time"

	"engagetrack/internal/domain/entities"
)

type DocumentResponse struct {
	ID           string `json:"id"`
	LegacyID     string `json:"_id"`
	EngagementID string `json:"engagementId"`
	Filename     string `json:"filename"`
	ContentType  string `json:"contentType"`
	FileType     string `json:"fileType"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	UploadedAt   string `json:"uploadedAt"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		LegacyID:     d.ID,
		EngagementID: d.EngagementID,
		Filename:     d.Filename,
		ContentType:  d.ContentType,
		FileType:     string(d.FileType),
		Path:         d.Path,
		Size:         d.Size,
		UploadedAt:   d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}
