package response

import "engagetrack/internal/domain/entities"

// CustomerResponse is the wire form of a normalized customer. LegacyID
// mirrors the canonical id under `_id` for clients that still read the
// MongoDB field name.
type CustomerResponse struct {
	entities.Customer
	LegacyID string `json:"_id"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{Customer: c, LegacyID: c.ID}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
