package mapping

import (
	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/minibanco/minibanco/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Kind:        domain.EntryKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
