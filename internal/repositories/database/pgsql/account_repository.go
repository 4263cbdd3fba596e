package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/middleware"
	"github.com/minibanco/minibanco/internal/models"
	"github.com/minibanco/minibanco/internal/utils/mapping"
)

const accountColumns = `account_id, owner_id, name, tax_id, balance, is_active, created_at, updated_at`

// PgxAccountRepository implements account persistence using pgx.
type PgxAccountRepository struct {
	BaseRepository
	allowOwnerScanFallback bool
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func newPgxAccountRepository(pool *pgxpool.Pool, allowOwnerScanFallback bool) *PgxAccountRepository {
	return &PgxAccountRepository{
		BaseRepository:         BaseRepository{Pool: pool},
		allowOwnerScanFallback: allowOwnerScanFallback,
	}
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.OwnerID, &m.Name, &m.TaxID, &m.Balance, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount persists a new account row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	model := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, owner_id, name, tax_id, balance, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.Pool.Exec(ctx, query,
		model.AccountID, model.OwnerID, model.Name, model.TaxID,
		model.Balance, model.IsActive, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: owner %s already has an account", apperrors.ErrDuplicate, account.OwnerID)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// DeleteAccount removes an account row. Callers only use this to undo a
// creation whose follow-up steps failed, before any ledger entry references
// the account.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE account_id = $1`, accountColumns)
	model, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID: %w", err)
	}
	account := mapping.ToDomainAccount(*model)
	return &account, nil
}

// FindAccountByOwner retrieves the account belonging to an owner. The owner
// column is uniquely indexed; if the indexed lookup fails the repository can
// optionally fall back to walking the table, mirroring a secondary-index
// outage. The fallback is disabled by default and the caller sees
// ErrUnavailable instead.
func (r *PgxAccountRepository) FindAccountByOwner(ctx context.Context, ownerID string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE owner_id = $1`, accountColumns)
	model, err := scanAccount(r.Pool.QueryRow(ctx, query, ownerID))
	if err == nil {
		account := mapping.ToDomainAccount(*model)
		return &account, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: no account for owner %s", apperrors.ErrNotFound, ownerID)
	}
	if !r.allowOwnerScanFallback {
		return nil, fmt.Errorf("%w: owner lookup failed: %v", apperrors.ErrUnavailable, err)
	}
	return r.scanForOwner(ctx, ownerID)
}

func (r *PgxAccountRepository) scanForOwner(ctx context.Context, ownerID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Warn("owner index lookup failed, falling back to table scan", "owner_id", ownerID)

	query := fmt.Sprintf(`SELECT %s FROM accounts`, accountColumns)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: owner scan failed: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		model, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: owner scan failed: %v", apperrors.ErrUnavailable, err)
		}
		if model.OwnerID == ownerID {
			account := mapping.ToDomainAccount(*model)
			return &account, nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: owner scan failed: %v", apperrors.ErrUnavailable, err)
	}
	return nil, fmt.Errorf("%w: no account for owner %s", apperrors.ErrNotFound, ownerID)
}

// ApplyBalanceDelta atomically adjusts an account balance. The update only
// matches when the resulting balance stays non-negative, so a concurrent
// withdrawal can never overdraw the account.
func (r *PgxAccountRepository) ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	return r.applyDelta(ctx, r.Pool, accountID, delta, now)
}

// ApplyBalanceDeltaInTx is ApplyBalanceDelta executed inside a caller-owned
// transaction, used by the ledger repository to pair balance movement with
// its ledger entry.
func (r *PgxAccountRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	return r.applyDelta(ctx, tx, accountID, delta, now)
}

func (r *PgxAccountRepository) applyDelta(ctx context.Context, q rowQuerier, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	query := fmt.Sprintf(`
		UPDATE accounts
		SET balance = balance + $2, updated_at = $3
		WHERE account_id = $1 AND balance + $2 >= 0
		RETURNING %s`, accountColumns)
	model, err := scanAccount(q.QueryRow(ctx, query, accountID, delta, now))
	if err == nil {
		account := mapping.ToDomainAccount(*model)
		return &account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to apply balance delta: %w", err)
	}

	// No row matched: either the account is missing or the guard rejected
	// the delta. A follow-up read tells the two apart.
	existsQuery := fmt.Sprintf(`SELECT %s FROM accounts WHERE account_id = $1`, accountColumns)
	if _, err := scanAccount(q.QueryRow(ctx, existsQuery, accountID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to apply balance delta: %w", err)
	}
	return nil, fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, accountID)
}
