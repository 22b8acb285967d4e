package genesis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soyerSO/casper-node/chainspec"
	"github.com/soyerSO/casper-node/common/fixture"
	"github.com/soyerSO/casper-node/common/types"
	"github.com/soyerSO/casper-node/genesis"
)

func TestAccountsFromConfigPreservesOrderAndArity(t *testing.T) {
	gen := fixture.NewAccountsGenerator().WithSeed(3001)
	accounts := []chainspec.AccountConfig{
		gen.AccountConfig(),
		gen.AccountConfig(),
		gen.AccountConfig(),
	}
	cfg := chainspec.NewAccountsConfig(accounts, []chainspec.DelegatorConfig{gen.DelegatorConfig()})

	records := genesis.AccountsFromConfig(cfg)
	require.Len(t, records, len(accounts))
	for i, record := range records {
		require.Equal(t, accounts[i].PublicKey(), record.PublicKey())
		require.Equal(t, accounts[i].PublicKey().AccountHash(), record.AccountHash())
		require.Equal(t, accounts[i].Balance(), record.Balance())
		require.Equal(t, accounts[i].BondedAmount(), record.BondedAmount())
	}
}

func TestAccountsFromConfigIgnoresDelegators(t *testing.T) {
	gen := fixture.NewAccountsGenerator().WithSeed(3002)
	cfg := chainspec.NewAccountsConfig(nil, []chainspec.DelegatorConfig{
		gen.DelegatorConfig(),
		gen.DelegatorConfig(),
	})
	require.Empty(t, genesis.AccountsFromConfig(cfg))
}

func TestAccountsFromConfigEmpty(t *testing.T) {
	records := genesis.AccountsFromConfig(chainspec.AccountsConfig{})
	require.Empty(t, records)
}

func TestAccountHashDependsOnlyOnPublicKey(t *testing.T) {
	gen := fixture.NewAccountsGenerator().WithSeed(3003)
	key := gen.PublicKey()
	a := chainspec.NewAccountConfig(key, types.MotesFromUint64(1), types.MotesFromUint64(2))
	b := chainspec.NewAccountConfig(key, types.MotesFromUint64(3), types.MotesFromUint64(4))

	cfg := chainspec.NewAccountsConfig([]chainspec.AccountConfig{a, b}, nil)
	records := genesis.AccountsFromConfig(cfg)
	require.Equal(t, records[0].AccountHash(), records[1].AccountHash())
}

func TestGenesisAccountValidatorFlag(t *testing.T) {
	gen := fixture.NewAccountsGenerator().WithSeed(3004)
	key := gen.PublicKey()
	validator := genesis.NewAccount(key, key.AccountHash(), types.MotesFromUint64(10), types.MotesFromUint64(5))
	require.True(t, validator.IsValidator())

	bystander := genesis.NewAccount(key, key.AccountHash(), types.MotesFromUint64(10), types.MotesFromUint64(0))
	require.False(t, bystander.IsValidator())
}
