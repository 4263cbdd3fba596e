package dto

import (
	"time"

	"github.com/minibanco/minibanco/internal/core/domain"
)

// RegisterPixKeyRequest defines the payload for registering a PIX key.
// Value is ignored for RANDOM keys; the server generates it.
type RegisterPixKeyRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
}

// PixKeyResponse defines the key representation returned to its owner.
type PixKeyResponse struct {
	Value     string    `json:"value"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPixKeyResponse converts a domain PixKey to a PixKeyResponse.
func ToPixKeyResponse(k *domain.PixKey) PixKeyResponse {
	return PixKeyResponse{
		Value:     k.Value,
		Type:      string(k.Type),
		CreatedAt: k.CreatedAt,
	}
}

// ToPixKeyResponseSlice converts a slice of domain PixKeys.
func ToPixKeyResponseSlice(keys []domain.PixKey) []PixKeyResponse {
	out := make([]PixKeyResponse, len(keys))
	for i := range keys {
		out[i] = ToPixKeyResponse(&keys[i])
	}
	return out
}

// ListPixKeysResponse wraps the keys of one account.
type ListPixKeysResponse struct {
	AccountID string           `json:"accountID"`
	PixKeys   []PixKeyResponse `json:"pixKeys"`
}

// ResolvePixKeyRequest defines the payload for the public recipient preview.
type ResolvePixKeyRequest struct {
	Value string `json:"value" binding:"required"`
}

// ResolvePixKeyResponse exposes only what a sender needs to confirm a transfer.
type ResolvePixKeyResponse struct {
	Value      string `json:"value"`
	Type       string `json:"type"`
	HolderName string `json:"holderName"`
}

// ToResolvePixKeyResponse converts a domain PixKey to a ResolvePixKeyResponse.
func ToResolvePixKeyResponse(k *domain.PixKey) ResolvePixKeyResponse {
	return ResolvePixKeyResponse{
		Value:      k.Value,
		Type:       string(k.Type),
		HolderName: k.HolderName,
	}
}

// RemovePixKeyRequest defines the payload for deleting a key.
type RemovePixKeyRequest struct {
	Value string `json:"value" binding:"required"`
}
