package interfaces

import "context"

// IEmailRepository abstracts DynamoDB persistence for captured emails,
// following the same raw-record contract as ICustomerRepository. Emails are
// append-only; there is no update or delete path.

type IEmailRepository interface {
	List(ctx context.Context) ([]map[string]any, error)
	GetByID(ctx context.Context, id string) (map[string]any, error)
	Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
}
