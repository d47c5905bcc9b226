package interfaces

import "context"

// ICustomerRepository abstracts DynamoDB persistence for customers.
//
// Reads return raw records exactly as stored. The customers table carries
// items imported from the legacy MongoDB system, so shapes vary and callers
// must normalize before use. A nil map means not found. Writes accept
// sanitized payload maps and return the resulting raw record.

type ICustomerRepository interface {
	List(ctx context.Context) ([]map[string]any, error)
	GetByID(ctx context.Context, id string) (map[string]any, error)
	Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) (bool, error)
}
