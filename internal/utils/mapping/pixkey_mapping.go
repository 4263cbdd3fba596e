package mapping

import (
	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/minibanco/minibanco/internal/models"
)

// ToModelPixKey converts a domain PixKey to a model PixKey
func ToModelPixKey(d domain.PixKey) models.PixKey {
	return models.PixKey{
		KeyValue:   d.Value,
		KeyType:    string(d.Type),
		AccountID:  d.AccountID,
		OwnerID:    d.OwnerID,
		HolderName: d.HolderName,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainPixKey converts a model PixKey to a domain PixKey
func ToDomainPixKey(m models.PixKey) domain.PixKey {
	return domain.PixKey{
		Value:      m.KeyValue,
		Type:       domain.PixKeyType(m.KeyType),
		AccountID:  m.AccountID,
		OwnerID:    m.OwnerID,
		HolderName: m.HolderName,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainPixKeySlice converts a slice of model PixKeys to a slice of domain PixKeys
func ToDomainPixKeySlice(ms []models.PixKey) []domain.PixKey {
	ds := make([]domain.PixKey, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPixKey(m)
	}
	return ds
}
