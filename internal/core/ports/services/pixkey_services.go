package services

import (
	"context"

	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/minibanco/minibanco/internal/dto"
)

// PixKeySvcFacade defines the PIX key directory operations.
type PixKeySvcFacade interface {
	// RegisterKey registers a new key for the owner's account. RANDOM keys get
	// a server-generated value.
	RegisterKey(ctx context.Context, ownerID string, req dto.RegisterPixKeyRequest) (*domain.PixKey, error)

	// ResolveKey looks up a key by value. Public: any caller may preview the
	// recipient of a transfer before confirming it.
	ResolveKey(ctx context.Context, value string) (*domain.PixKey, error)

	// RemoveKey deletes a key owned by the requesting identity. A key owned by
	// someone else reports services.ErrKeyNotOwned, distinct from not-found for
	// auditing even though both are presented identically at the boundary.
	RemoveKey(ctx context.Context, ownerID string, value string) error

	// ListKeys retrieves the keys registered to the owner's account.
	ListKeys(ctx context.Context, ownerID string) (string, []domain.PixKey, error)
}
