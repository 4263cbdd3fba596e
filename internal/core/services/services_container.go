package services

import (
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/pkg/config"
	"github.com/minibanco/minibanco/pkg/metrics"
)

var (
	_ portssvc.AccountSvcFacade  = (*AccountService)(nil)
	_ portssvc.PixKeySvcFacade   = (*PixKeyService)(nil)
	_ portssvc.TransferSvcFacade = (*TransferService)(nil)
	_ portssvc.LedgerSvcFacade   = (*LedgerService)(nil)
)

// NewServiceContainer wires every service with its repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collector *metrics.Collector) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:  NewAccountService(cfg, repos, collector),
		PixKey:   NewPixKeyService(repos),
		Transfer: NewTransferService(repos, collector),
		Ledger:   NewLedgerService(cfg, repos),
	}
}
