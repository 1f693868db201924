package dataverse

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/dataverse_mock.go -package=mocks

// API is the surface the gateway's services use to reach the CRM. The
// concrete implementation is Client; tests substitute a gomock mock.
type API interface {
	Query(ctx context.Context, entitySet string, opts QueryOptions) ([]Entity, error)
	QueryOne(ctx context.Context, entitySet string, opts QueryOptions) (Entity, error)
	Create(ctx context.Context, entitySet string, attributes Entity) (uuid.UUID, error)
	Update(ctx context.Context, entitySet string, id uuid.UUID, attributes Entity) error
	CreateMultiple(ctx context.Context, entitySet, logicalName string, records []Entity) ([]uuid.UUID, error)
	GetOptionSetValue(ctx context.Context, entityLogicalName, attributeLogicalName, label string) (int, error)
	WhoAmI(ctx context.Context) error
}

var _ API = (*Client)(nil)
