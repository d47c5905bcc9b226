package request

// ContractRequest carries MSA or SOW terms. Value is a pointer so an explicit
// 0 entered by the user survives sanitization, while an omitted field does
// not produce a spurious zero.
type ContractRequest struct {
	Reference string   `json:"reference"`
	Value     *float64 `json:"value"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Documents []string `json:"documents"`
}

type EngagementRequest struct {
	CustomerID  string           `json:"customerId"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	RYGStatus   string           `json:"ryg_status"`
	Description string           `json:"description"`
	MSA         *ContractRequest `json:"msa"`
	SOW         *ContractRequest `json:"sow"`
}

func (r EngagementRequest) Payload() map[string]any {
	payload := map[string]any{
		"customerId":  r.CustomerID,
		"name":        r.Name,
		"type":        r.Type,
		"status":      r.Status,
		"ryg_status":  r.RYGStatus,
		"description": r.Description,
	}
	if m := contractPayload(r.MSA); m != nil {
		payload["msa"] = m
	}
	if m := contractPayload(r.SOW); m != nil {
		payload["sow"] = m
	}
	return payload
}

func contractPayload(c *ContractRequest) map[string]any {
	if c == nil {
		return nil
	}
	m := map[string]any{
		"reference": c.Reference,
		"startDate": c.StartDate,
		"endDate":   c.EndDate,
	}
	if c.Value != nil {
		m["value"] = *c.Value
	}
	if len(c.Documents) > 0 {
		docs := make([]any, 0, len(c.Documents))
		for _, d := range c.Documents {
			docs = append(docs, d)
		}
		m["documents"] = docs
	}
	return m
}
