package domain

import "time"

// PixKeyType classifies the value registered as a PIX key.
type PixKeyType string

const (
	KeyTypeTaxID  PixKeyType = "TAX_ID"
	KeyTypeEmail  PixKeyType = "EMAIL"
	KeyTypePhone  PixKeyType = "PHONE"
	KeyTypeRandom PixKeyType = "RANDOM"
)

// IsValid reports whether the key type is one of the recognized kinds.
func (t PixKeyType) IsValid() bool {
	switch t {
	case KeyTypeTaxID, KeyTypeEmail, KeyTypePhone, KeyTypeRandom:
		return true
	}
	return false
}

// PixKey maps a globally unique alias value to the account that owns it.
// The value itself is the primary key; an account holds at most five keys.
type PixKey struct {
	Value      string     `json:"value"`
	Type       PixKeyType `json:"type"`
	AccountID  string     `json:"accountID"`
	OwnerID    string     `json:"ownerID"`
	HolderName string     `json:"holderName"` // Snapshot of the account name at registration time
	CreatedAt  time.Time  `json:"createdAt"`
}
