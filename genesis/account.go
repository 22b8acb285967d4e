// Package genesis turns the loaded accounts configuration into the records
// the execution engine seeds initial ledger state from.
package genesis

import (
	"github.com/soyerSO/casper-node/chainspec"
	"github.com/soyerSO/casper-node/common/types"
	"github.com/soyerSO/casper-node/signing"
)

// Account is one genesis record: the account identity in both public-key
// and derived account-hash form, plus its starting balance and bonded
// stake.
type Account struct {
	publicKey    signing.PublicKey
	accountHash  types.AccountHash
	balance      types.Motes
	bondedAmount types.Motes
}

// NewAccount constructs a genesis record.
func NewAccount(publicKey signing.PublicKey, accountHash types.AccountHash, balance, bondedAmount types.Motes) Account {
	return Account{
		publicKey:    publicKey,
		accountHash:  accountHash,
		balance:      balance,
		bondedAmount: bondedAmount,
	}
}

// PublicKey returns the account identity.
func (a Account) PublicKey() signing.PublicKey {
	return a.publicKey
}

// AccountHash returns the ledger-side identity derived from the public key.
func (a Account) AccountHash() types.AccountHash {
	return a.accountHash
}

// Balance returns the starting balance.
func (a Account) Balance() types.Motes {
	return a.balance
}

// BondedAmount returns the stake bonded at genesis.
func (a Account) BondedAmount() types.Motes {
	return a.bondedAmount
}

// IsValidator reports whether the record seeds a genesis validator.
func (a Account) IsValidator() bool {
	return !a.bondedAmount.IsZero()
}

// AccountsFromConfig maps every configured account to a genesis record,
// preserving input order. Delegations are not part of this mapping; the
// execution engine applies them.
func AccountsFromConfig(cfg chainspec.AccountsConfig) []Account {
	accounts := make([]Account, 0, len(cfg.Accounts()))
	for _, account := range cfg.Accounts() {
		accounts = append(accounts, NewAccount(
			account.PublicKey(),
			account.PublicKey().AccountHash(),
			account.Balance(),
			account.BondedAmount(),
		))
	}
	return accounts
}
