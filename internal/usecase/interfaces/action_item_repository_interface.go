package interfaces

import "context"

// IActionItemRepository abstracts DynamoDB persistence for action items,
// following the same raw-record contract as ICustomerRepository.

type IActionItemRepository interface {
	List(ctx context.Context) ([]map[string]any, error)
	GetByID(ctx context.Context, id string) (map[string]any, error)
	Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) (bool, error)
}
