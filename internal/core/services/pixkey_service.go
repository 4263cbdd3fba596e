package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/utils"
)

// maxPixKeysPerAccount caps the number of keys one account may register.
const maxPixKeysPerAccount = 5

var (
	// ErrInvalidKeyType reports an unknown PIX key type.
	ErrInvalidKeyType = fmt.Errorf("%w: invalid pix key type", apperrors.ErrValidation)
	// ErrKeyLimitExceeded reports an account at its key quota.
	ErrKeyLimitExceeded = fmt.Errorf("%w: pix key limit reached", apperrors.ErrValidation)
	// ErrKeyTaken reports a key value already claimed by some account.
	ErrKeyTaken = fmt.Errorf("%w: pix key already registered", apperrors.ErrDuplicate)
	// ErrKeyNotOwned reports an attempt to remove another account's key.
	ErrKeyNotOwned = fmt.Errorf("%w: pix key belongs to another account", apperrors.ErrForbidden)
)

// PixKeyService implements the PIX key directory.
type PixKeyService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	pixKeyRepo  portsrepo.PixKeyRepositoryFacade
}

// NewPixKeyService creates a new PixKeyService.
func NewPixKeyService(repos portsrepo.RepositoryProvider) *PixKeyService {
	return &PixKeyService{
		accountRepo: repos.AccountRepo,
		pixKeyRepo:  repos.PixKeyRepo,
	}
}

// RegisterKey registers a new key for the owner's account. RANDOM keys get a
// server-generated value; all other types take the caller-supplied one.
func (s *PixKeyService) RegisterKey(ctx context.Context, ownerID string, req dto.RegisterPixKeyRequest) (*domain.PixKey, error) {
	keyType := domain.PixKeyType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !keyType.IsValid() {
		return nil, ErrInvalidKeyType
	}

	account, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := s.pixKeyRepo.CountPixKeysByAccount(ctx, account.AccountID)
	if err != nil {
		return nil, err
	}
	if count >= maxPixKeysPerAccount {
		return nil, ErrKeyLimitExceeded
	}

	value, err := s.keyValue(keyType, req.Value)
	if err != nil {
		return nil, err
	}

	key := domain.PixKey{
		Value:      value,
		Type:       keyType,
		AccountID:  account.AccountID,
		OwnerID:    ownerID,
		HolderName: account.Name,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.pixKeyRepo.SavePixKey(ctx, key); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, ErrKeyTaken
		}
		return nil, err
	}
	return &key, nil
}

func (s *PixKeyService) keyValue(keyType domain.PixKeyType, raw string) (string, error) {
	if keyType == domain.KeyTypeRandom {
		return utils.GenerateRandomKey(utils.RandomKeyLength)
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("%w: key value is required for type %s", apperrors.ErrValidation, keyType)
	}
	switch keyType {
	case domain.KeyTypeEmail:
		value = strings.ToLower(value)
		if !strings.Contains(value, "@") {
			return "", fmt.Errorf("%w: malformed email key", apperrors.ErrValidation)
		}
	case domain.KeyTypeTaxID:
		for _, c := range value {
			if c < '0' || c > '9' {
				return "", fmt.Errorf("%w: tax id key must be digits only", apperrors.ErrValidation)
			}
		}
	}
	return value, nil
}

// ResolveKey looks up a key by value.
func (s *PixKeyService) ResolveKey(ctx context.Context, value string) (*domain.PixKey, error) {
	return s.pixKeyRepo.FindPixKeyByValue(ctx, value)
}

// RemoveKey deletes one of the owner's keys. The ownership condition lives in
// the delete statement itself; a rejected delete of someone else's key comes
// back as ErrKeyNotOwned, distinguishable in logs from plain not-found.
func (s *PixKeyService) RemoveKey(ctx context.Context, ownerID string, value string) error {
	err := s.pixKeyRepo.DeletePixKey(ctx, value, ownerID)
	if errors.Is(err, apperrors.ErrForbidden) {
		return ErrKeyNotOwned
	}
	return err
}

// ListKeys retrieves the keys registered to the owner's account.
func (s *PixKeyService) ListKeys(ctx context.Context, ownerID string) (string, []domain.PixKey, error) {
	account, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err != nil {
		return "", nil, err
	}
	keys, err := s.pixKeyRepo.ListPixKeysByAccount(ctx, account.AccountID)
	if err != nil {
		return "", nil, err
	}
	return account.AccountID, keys, nil
}
