package pgsql

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories together.
func NewRepositoryProvider(dbPool *pgxpool.Pool, allowOwnerScanFallback bool) (portsrepo.RepositoryProvider, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to create entry ID node: %w", err)
	}

	accountRepo := newPgxAccountRepository(dbPool, allowOwnerScanFallback)
	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		PixKeyRepo:  newPgxPixKeyRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool, accountRepo, node),
	}, nil
}
