package services

import (
	"github.com/transitops/cardledger/internal/common/lockregistry"
	"github.com/transitops/cardledger/internal/config"
	"github.com/transitops/cardledger/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo repositories.SQLRepository

	// locks serializes structural edits per card. Merge, split and undo on
	// the same card must never interleave.
	locks *lockregistry.Registry

	common service

	Ledger     *ledger
	Balance    *balance
	LedgerEdit *ledgerEdit
	Summary    *summary
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	locks *lockregistry.Registry,
) *Services {
	srv := &Services{
		conf:    conf,
		sqlRepo: sqlRepo,
		locks:   locks,
	}
	srv.common.srv = srv
	srv.Ledger = (*ledger)(&srv.common)
	srv.Balance = (*balance)(&srv.common)
	srv.LedgerEdit = (*ledgerEdit)(&srv.common)
	srv.Summary = (*summary)(&srv.common)

	return srv
}
