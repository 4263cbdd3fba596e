package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/models"
	"github.com/minibanco/minibanco/internal/utils/mapping"
)

// execer abstracts over a pool or an open transaction for statements.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgxLedgerRepository implements the append-only ledger using pgx. Entry IDs
// come from a snowflake node, so they sort by creation time.
type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountBalanceMutator
	node        *snowflake.Node
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountBalanceMutator, node *snowflake.Node) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		node:           node,
	}
}

func (r *PgxLedgerRepository) insertEntry(ctx context.Context, q execer, entry domain.Transaction) error {
	entry.EntryID = r.node.Generate().Int64()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	model := mapping.ToModelTransaction(entry)
	query := `
		INSERT INTO transactions (entry_id, account_id, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.Exec(ctx, query,
		model.EntryID, model.AccountID, model.Kind, model.Amount, model.Description, model.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

// AppendEntry writes a single entry without touching any balance.
func (r *PgxLedgerRepository) AppendEntry(ctx context.Context, entry domain.Transaction) error {
	return r.insertEntry(ctx, r.Pool, entry)
}

// RecordOperation applies a balance delta and appends the matching entry in
// one transaction, so the ledger never disagrees with the balance.
func (r *PgxLedgerRepository) RecordOperation(ctx context.Context, accountID string, delta decimal.Decimal, entry domain.Transaction) (*domain.Account, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	account, err := r.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, accountID, delta, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := r.insertEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return account, nil
}

// lockOrder returns the two account ids sorted, so every transaction locks
// rows in the same order regardless of transfer direction.
func lockOrder(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

func (r *PgxLedgerRepository) lockAccounts(ctx context.Context, tx execer, accountA, accountB string) error {
	first, second := lockOrder(accountA, accountB)
	for _, id := range []string{first, second} {
		if _, err := tx.Exec(ctx, `SELECT account_id FROM accounts WHERE account_id = $1 FOR UPDATE`, id); err != nil {
			return fmt.Errorf("failed to lock account row: %w", err)
		}
	}
	return nil
}

// RecordTransfer moves funds between two accounts and appends both legs of
// the movement in one transaction. Both rows are locked in id order first,
// so opposing concurrent transfers cannot deadlock. The debit carries the
// non-negative guard; if it fails the whole transfer rolls back and the
// destination is untouched.
func (r *PgxLedgerRepository) RecordTransfer(ctx context.Context, sourceAccountID, destAccountID string, amount decimal.Decimal, outEntry, inEntry domain.Transaction) (*domain.Account, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.lockAccounts(ctx, tx, sourceAccountID, destAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	source, err := r.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, sourceAccountID, amount.Neg(), now)
	if err != nil {
		return nil, err
	}
	if _, err := r.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, destAccountID, amount, now); err != nil {
		return nil, err
	}
	if err := r.insertEntry(ctx, tx, outEntry); err != nil {
		return nil, err
	}
	if err := r.insertEntry(ctx, tx, inEntry); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return source, nil
}

// ListEntriesByAccount returns up to limit entries, newest first. Entry IDs
// are time-ordered so ordering by them is ordering by creation time.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT entry_id, account_id, kind, amount, description, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY entry_id DESC
		LIMIT $2`
	rows, err := r.Pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.EntryID, &m.AccountID, &m.Kind, &m.Amount, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to list ledger entries: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return mapping.ToDomainTransactionSlice(entries), nil
}
