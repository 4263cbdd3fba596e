package repositories

import (
	"context"

	"github.com/minibanco/minibanco/internal/core/domain"
)

// PixKeyReader defines read operations for PIX key data
type PixKeyReader interface {
	// FindPixKeyByValue retrieves a key by its globally unique value.
	FindPixKeyByValue(ctx context.Context, value string) (*domain.PixKey, error)

	// ListPixKeysByAccount retrieves all keys registered to an account.
	ListPixKeysByAccount(ctx context.Context, accountID string) ([]domain.PixKey, error)

	// CountPixKeysByAccount returns the number of live keys on an account.
	CountPixKeysByAccount(ctx context.Context, accountID string) (int, error)
}

// PixKeyWriter defines write operations for PIX key data
type PixKeyWriter interface {
	// SavePixKey persists a new key as a single insert-if-absent; a value that
	// already exists reports apperrors.ErrDuplicate.
	SavePixKey(ctx context.Context, key domain.PixKey) error

	// DeletePixKey removes a key by value, conditional on it belonging to the
	// given owner, as one statement. Reports apperrors.ErrNotFound when the
	// value is absent and apperrors.ErrForbidden when it is held by someone
	// else.
	DeletePixKey(ctx context.Context, value string, ownerID string) error
}

// PixKeyRepositoryFacade combines all PIX-key repository interfaces.
type PixKeyRepositoryFacade interface {
	PixKeyReader
	PixKeyWriter
}
