package entities

import "time"

// DocumentFileType classifies an uploaded file against the engagement's
// contract structure.

type DocumentFileType string

const (
	DocumentFileTypeMSA   DocumentFileType = "msa"
	DocumentFileTypeSOW   DocumentFileType = "sow"
	DocumentFileTypeOther DocumentFileType = "other"
)

// Document is uploaded-file metadata persisted in DynamoDB; the file body
// itself lives in object storage under Path.
type Document struct {
	ID           string           `json:"id"`
	EngagementID string           `json:"engagementId"`
	Filename     string           `json:"filename"`
	ContentType  string           `json:"contentType"`
	FileType     DocumentFileType `json:"fileType"`
	Path         string           `json:"path"`
	Size         int64            `json:"size"`
	UploadedAt   time.Time        `json:"uploadedAt"`
}
