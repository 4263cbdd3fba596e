package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/models"
	"github.com/minibanco/minibanco/internal/utils/mapping"
)

const pixKeyColumns = `key_value, key_type, account_id, owner_id, holder_name, created_at`

// PgxPixKeyRepository implements PIX key persistence using pgx.
type PgxPixKeyRepository struct {
	BaseRepository
}

var _ portsrepo.PixKeyRepositoryFacade = (*PgxPixKeyRepository)(nil)

func newPgxPixKeyRepository(pool *pgxpool.Pool) *PgxPixKeyRepository {
	return &PgxPixKeyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func scanPixKey(row pgx.Row) (*models.PixKey, error) {
	var m models.PixKey
	err := row.Scan(&m.KeyValue, &m.KeyType, &m.AccountID, &m.OwnerID, &m.HolderName, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePixKey persists a new key. The key value is the primary key, so a
// concurrent registration of the same value fails here with ErrDuplicate.
func (r *PgxPixKeyRepository) SavePixKey(ctx context.Context, key domain.PixKey) error {
	model := mapping.ToModelPixKey(key)
	query := `
		INSERT INTO pix_keys (key_value, key_type, account_id, owner_id, holder_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.Pool.Exec(ctx, query,
		model.KeyValue, model.KeyType, model.AccountID, model.OwnerID, model.HolderName, model.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: key already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save pix key: %w", err)
	}
	return nil
}

// FindPixKeyByValue retrieves a key by its value.
func (r *PgxPixKeyRepository) FindPixKeyByValue(ctx context.Context, value string) (*domain.PixKey, error) {
	query := fmt.Sprintf(`SELECT %s FROM pix_keys WHERE key_value = $1`, pixKeyColumns)
	model, err := scanPixKey(r.Pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: pix key not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find pix key: %w", err)
	}
	key := mapping.ToDomainPixKey(*model)
	return &key, nil
}

// ListPixKeysByAccount returns every key attached to an account, oldest first.
func (r *PgxPixKeyRepository) ListPixKeysByAccount(ctx context.Context, accountID string) ([]domain.PixKey, error) {
	query := fmt.Sprintf(`SELECT %s FROM pix_keys WHERE account_id = $1 ORDER BY created_at`, pixKeyColumns)
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pix keys: %w", err)
	}
	defer rows.Close()

	var keys []models.PixKey
	for rows.Next() {
		model, err := scanPixKey(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list pix keys: %w", err)
		}
		keys = append(keys, *model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list pix keys: %w", err)
	}
	return mapping.ToDomainPixKeySlice(keys), nil
}

// CountPixKeysByAccount returns how many keys an account holds.
func (r *PgxPixKeyRepository) CountPixKeysByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM pix_keys WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pix keys: %w", err)
	}
	return count, nil
}

// DeletePixKey removes a key only if it belongs to the owner. The ownership
// check and the delete are one statement, so a concurrent re-registration of
// the value cannot be deleted by its previous owner. A zero row count is
// disambiguated by a follow-up read.
func (r *PgxPixKeyRepository) DeletePixKey(ctx context.Context, value string, ownerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM pix_keys WHERE key_value = $1 AND owner_id = $2`, value, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete pix key: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	if _, err := r.FindPixKeyByValue(ctx, value); err != nil {
		return err
	}
	return fmt.Errorf("%w: pix key belongs to another account", apperrors.ErrForbidden)
}
