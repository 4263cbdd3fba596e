package mapping

import (
	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/minibanco/minibanco/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		TaxID:     d.TaxID,
		Balance:   d.Balance,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		TaxID:     m.TaxID,
		Balance:   m.Balance,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
