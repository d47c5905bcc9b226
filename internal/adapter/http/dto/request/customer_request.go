package request

type LocationRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type ContactInfoRequest struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

type StakeholderRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CustomerRequest is the create/update payload. Every field is optional at
// the binding level; required-field checks live in the use case so the
// client gets field-level validation detail instead of a bare 400.
type CustomerRequest struct {
	Name         string               `json:"name"`
	Industry     string               `json:"industry"`
	Description  string               `json:"description"`
	Logo         string               `json:"logo"`
	Status       string               `json:"status"`
	Location     *LocationRequest     `json:"location"`
	ContactInfo  *ContactInfoRequest  `json:"contactInfo"`
	Stakeholders []StakeholderRequest `json:"stakeholders"`
}

// Payload converts the request to the raw outbound map. The use case runs it
// through sanitization, so empty leaves added here are dropped before any
// write.
func (r CustomerRequest) Payload() map[string]any {
	payload := map[string]any{
		"name":        r.Name,
		"industry":    r.Industry,
		"description": r.Description,
		"logo":        r.Logo,
		"status":      r.Status,
	}
	if r.Location != nil {
		payload["location"] = map[string]any{
			"address": r.Location.Address,
			"city":    r.Location.City,
			"state":   r.Location.State,
			"zipCode": r.Location.ZipCode,
			"country": r.Location.Country,
		}
	}
	if r.ContactInfo != nil {
		payload["contactInfo"] = map[string]any{
			"phone":   r.ContactInfo.Phone,
			"email":   r.ContactInfo.Email,
			"website": r.ContactInfo.Website,
		}
	}
	if len(r.Stakeholders) > 0 {
		stakeholders := make([]any, 0, len(r.Stakeholders))
		for _, s := range r.Stakeholders {
			stakeholders = append(stakeholders, map[string]any{"name": s.Name, "role": s.Role})
		}
		payload["stakeholders"] = stakeholders
	}
	return payload
}
