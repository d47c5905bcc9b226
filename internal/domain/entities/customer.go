package entities

// CustomerStatus represents the customer lifecycle state.

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Location is the customer address block. After normalization every leaf is a
// defined string, never null, so views can render it directly.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

type Stakeholder struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Customer is the normalized customer view model.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Items in the customers table were imported from the legacy MongoDB system,
// so raw attribute shapes vary (`_id` wrappers, flat location fields). The
// struct below is only ever produced by the normalize package.
type Customer struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Industry           string         `json:"industry"`
	IndustryColorClass string         `json:"industryColorClass"`
	Description        string         `json:"description"`
	Location           Location       `json:"location"`
	ContactInfo        ContactInfo    `json:"contactInfo"`
	Logo               string         `json:"logo"`
	Status             CustomerStatus `json:"status"`

	// EngagementCount is derived from the engagements collection at read
	// time and never persisted.
	EngagementCount int `json:"engagements"`

	Stakeholders []Stakeholder `json:"stakeholders,omitempty"`
	Documents    []DocumentRef `json:"documents,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
