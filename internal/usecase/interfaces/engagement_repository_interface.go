package interfaces

import "context"

// IEngagementRepository abstracts DynamoDB persistence for engagements with
// the same raw-record conventions as ICustomerRepository.
//
// AppendContractDocument attaches an uploaded document reference to the
// engagement's msa or sow document list, creating the list when absent.

type IEngagementRepository interface {
	List(ctx context.Context) ([]map[string]any, error)
	GetByID(ctx context.Context, id string) (map[string]any, error)
	Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) (bool, error)
	AppendContractDocument(ctx context.Context, id, fileType, reference string) (map[string]any, error)
}
