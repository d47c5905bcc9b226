package viewmodel

import (
	"engagetrack/internal/domain/entities"
	"engagetrack/internal/query"
)

// CustomerFields defines the filterable customer attributes. Free-text search
// spans the searchable fields; status is an enumeration and matches exactly.
func CustomerFields() []query.Field[entities.Customer] {
	return []query.Field[entities.Customer]{
		{Name: "id", Get: func(c entities.Customer) string { return c.ID }, Searchable: true, Exact: true},
		{Name: "name", Get: func(c entities.Customer) string { return c.Name }, Searchable: true},
		{Name: "industry", Get: func(c entities.Customer) string { return c.Industry }, Searchable: true},
		{Name: "description", Get: func(c entities.Customer) string { return c.Description }, Searchable: true},
		{Name: "phone", Get: func(c entities.Customer) string { return c.ContactInfo.Phone }, Searchable: true},
		{Name: "email", Get: func(c entities.Customer) string { return c.ContactInfo.Email }, Searchable: true},
		{Name: "website", Get: func(c entities.Customer) string { return c.ContactInfo.Website }, Searchable: true},
		{Name: "address", Get: func(c entities.Customer) string { return c.Location.Address }, Searchable: true},
		{Name: "city", Get: func(c entities.Customer) string { return c.Location.City }},
		{Name: "state", Get: func(c entities.Customer) string { return c.Location.State }},
		{Name: "country", Get: func(c entities.Customer) string { return c.Location.Country }},
		{Name: "status", Get: func(c entities.Customer) string { return string(c.Status) }, Exact: true},
	}
}

// EngagementFields defines the filterable engagement attributes.
func EngagementFields() []query.Field[entities.Engagement] {
	return []query.Field[entities.Engagement]{
		{Name: "id", Get: func(e entities.Engagement) string { return e.ID }, Searchable: true, Exact: true},
		{Name: "customerId", Get: func(e entities.Engagement) string { return e.CustomerID }, Exact: true},
		{Name: "name", Get: func(e entities.Engagement) string { return e.Name }, Searchable: true},
		{Name: "type", Get: func(e entities.Engagement) string { return e.Type }, Searchable: true},
		{Name: "description", Get: func(e entities.Engagement) string { return e.Description }, Searchable: true},
		{Name: "status", Get: func(e entities.Engagement) string { return string(e.Status) }, Searchable: true, Exact: true},
		{Name: "ryg_status", Get: func(e entities.Engagement) string { return string(e.RYGStatus) }, Exact: true},
	}
}

// ActionItemFields defines the filterable action-item attributes.
func ActionItemFields() []query.Field[entities.ActionItem] {
	return []query.Field[entities.ActionItem]{
		{Name: "id", Get: func(a entities.ActionItem) string { return a.ID }, Searchable: true, Exact: true},
		{Name: "engagementId", Get: func(a entities.ActionItem) string { return a.EngagementID }, Exact: true},
		{Name: "description", Get: func(a entities.ActionItem) string { return a.Description }, Searchable: true},
		{Name: "owner", Get: func(a entities.ActionItem) string { return a.Owner }, Searchable: true},
		{Name: "assignedTo", Get: func(a entities.ActionItem) string { return a.AssignedTo }, Searchable: true},
		{Name: "priority", Get: func(a entities.ActionItem) string { return a.Priority }, Exact: true},
		{Name: "status", Get: func(a entities.ActionItem) string { return a.Status }, Exact: true},
	}
}

// EmailFields defines the filterable email attributes.
func EmailFields() []query.Field[entities.Email] {
	return []query.Field[entities.Email]{
		{Name: "id", Get: func(e entities.Email) string { return e.ID }, Searchable: true, Exact: true},
		{Name: "engagementId", Get: func(e entities.Email) string { return e.EngagementID }, Exact: true},
		{Name: "subject", Get: func(e entities.Email) string { return e.Subject }, Searchable: true},
		{Name: "sender", Get: func(e entities.Email) string { return e.Sender }, Searchable: true},
		{Name: "content", Get: func(e entities.Email) string { return e.Content }, Searchable: true},
	}
}
