package entities

// EngagementStatus represents the engagement lifecycle state.

type EngagementStatus string

const (
	EngagementStatusActive   EngagementStatus = "active"
	EngagementStatusInactive EngagementStatus = "inactive"
	EngagementStatusPaused   EngagementStatus = "paused"
)

// RYGStatus is the red/yellow/green health indicator.

type RYGStatus string

const (
	RYGGreen  RYGStatus = "green"
	RYGYellow RYGStatus = "yellow"
	RYGRed    RYGStatus = "red"
)

// Contract holds MSA or SOW terms. A contract with no meaningful field is
// represented as a nil pointer on the engagement, never as an empty struct.
// Value 0 is a meaningful entry and keeps the contract present.
type Contract struct {
	Reference string   `json:"reference"`
	Value     float64  `json:"value"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Documents []string `json:"documents,omitempty"`
}

// DocumentRef is an attached-document reference carried on an entity.
type DocumentRef struct {
	Title     string  `json:"title"`
	Reference string  `json:"reference"`
	Value     float64 `json:"value,omitempty"`
	StartDate string  `json:"startDate,omitempty"`
	EndDate   string  `json:"endDate,omitempty"`
}

// Engagement is the normalized engagement view model.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Like customers, engagement items may carry legacy MongoDB shapes: the id
// under `engagementId` or a wrapped `{"$oid": ...}`, the customer reference
// under `customerIdObj`, and contract dates under `start`/`end` aliases.
// Only the normalize package builds this struct from raw items.
type Engagement struct {
	ID             string           `json:"id"`
	CustomerID     string           `json:"customerId"`
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	TypeColorClass string           `json:"typeColorClass"`
	Status         EngagementStatus `json:"status"`
	RYGStatus      RYGStatus        `json:"ryg_status"`
	Description    string           `json:"description"`

	MSA *Contract `json:"msa,omitempty"`
	SOW *Contract `json:"sow,omitempty"`

	Documents []DocumentRef `json:"documents,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
