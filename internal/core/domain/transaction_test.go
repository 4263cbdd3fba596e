package domain_test

import (
	"testing"

	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEntryKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind domain.EntryKind
		want bool
	}{
		{name: "open entry", kind: domain.EntryOpen, want: true},
		{name: "deposit entry", kind: domain.EntryDeposit, want: true},
		{name: "withdraw entry", kind: domain.EntryWithdraw, want: true},
		{name: "transfer out entry", kind: domain.EntryTransferOut, want: true},
		{name: "transfer in entry", kind: domain.EntryTransferIn, want: true},
		{name: "pix out entry", kind: domain.EntryPixOut, want: true},
		{name: "pix in entry", kind: domain.EntryPixIn, want: true},
		{name: "unknown kind", kind: domain.EntryKind("REFUND"), want: false},
		{name: "empty kind", kind: domain.EntryKind(""), want: false},
		{name: "lowercase kind", kind: domain.EntryKind("deposit"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestPixKeyType_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		keyType domain.PixKeyType
		want    bool
	}{
		{name: "tax id key", keyType: domain.KeyTypeTaxID, want: true},
		{name: "email key", keyType: domain.KeyTypeEmail, want: true},
		{name: "phone key", keyType: domain.KeyTypePhone, want: true},
		{name: "random key", keyType: domain.KeyTypeRandom, want: true},
		{name: "unknown type", keyType: domain.PixKeyType("CNPJ"), want: false},
		{name: "empty type", keyType: domain.PixKeyType(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.keyType.IsValid())
		})
	}
}
