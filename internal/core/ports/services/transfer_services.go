package services

import (
	"context"

	"github.com/minibanco/minibanco/internal/dto"
)

// TransferSvcFacade defines the transfer engine operations. Both entry points
// reduce to one move-funds primitive: conditional debit, unconditional credit
// and a mirrored pair of ledger entries in a single database transaction.
type TransferSvcFacade interface {
	// TransferByID moves funds from the owner's account to a destination
	// addressed by account id.
	TransferByID(ctx context.Context, ownerID string, req dto.TransferRequest) (*dto.TransferResponse, error)

	// TransferByKey resolves the destination through the PIX key directory and
	// moves funds to it.
	TransferByKey(ctx context.Context, ownerID string, req dto.PixTransferRequest) (*dto.PixTransferResponse, error)
}
