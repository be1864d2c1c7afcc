package repo

import (
	"github.com/MaxwellWhoSquats/acex/internal/pg"
	balancerepo "github.com/MaxwellWhoSquats/acex/internal/repo/balance-repo"
	ledgerrepo "github.com/MaxwellWhoSquats/acex/internal/repo/ledger-repo"
	roundrepo "github.com/MaxwellWhoSquats/acex/internal/repo/round-repo"
	userrepo "github.com/MaxwellWhoSquats/acex/internal/repo/user-repo"
	"github.com/MaxwellWhoSquats/acex/internal/service/authservice"
	"github.com/MaxwellWhoSquats/acex/internal/service/balanceservice"
	"github.com/MaxwellWhoSquats/acex/internal/service/roundservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	BalanceRepo balanceservice.BalanceRepo
	LedgerRepo  balanceservice.LedgerRepo
	RoundRepo   roundservice.RoundRepo
	TxManager   pg.TXManager
}

// New builds the repositories over conn. Calls made inside txManager.Begin
// run on the open transaction when conn routes through pg.DB.
func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		BalanceRepo: balancerepo.New(conn),
		LedgerRepo:  ledgerrepo.New(conn),
		RoundRepo:   roundrepo.New(conn),
		TxManager:   txManager,
	}
}
