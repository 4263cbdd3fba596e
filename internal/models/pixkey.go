package models

import "time"

// PixKey represents a PIX key row as stored in the database.
// KeyValue is the primary key; uniqueness is enforced by the store.
type PixKey struct {
	KeyValue   string    `db:"key_value"`
	KeyType    string    `db:"key_type"`
	AccountID  string    `db:"account_id"`
	OwnerID    string    `db:"owner_id"`
	HolderName string    `db:"holder_name"`
	CreatedAt  time.Time `db:"created_at"`
}
