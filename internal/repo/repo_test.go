package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/MaxwellWhoSquats/acex/internal/pg"
	balancerepo "github.com/MaxwellWhoSquats/acex/internal/repo/balance-repo"
	ledgerrepo "github.com/MaxwellWhoSquats/acex/internal/repo/ledger-repo"
	roundrepo "github.com/MaxwellWhoSquats/acex/internal/repo/round-repo"
	userrepo "github.com/MaxwellWhoSquats/acex/internal/repo/user-repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repo := New(pg.New(mockDB), mockTxManager)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &roundrepo.Repository{}, repo.RoundRepo)
	assert.Same(t, mockTxManager, repo.TxManager)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
