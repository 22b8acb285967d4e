// Package chainspec holds the bootstrap economic configuration of the
// network: the genesis accounts and delegations, their canonical byte
// encoding, and the loader for the accounts file.
package chainspec

import (
	"slices"

	"github.com/soyerSO/casper-node/codec"
	"github.com/soyerSO/casper-node/common/types"
	"github.com/soyerSO/casper-node/hash"
	"github.com/soyerSO/casper-node/signing"
)

// AccountConfig is one genesis account: its identity, starting balance and
// bonded stake. It is an immutable comparable value.
type AccountConfig struct {
	publicKey    signing.PublicKey
	balance      types.Motes
	bondedAmount types.Motes
}

// NewAccountConfig constructs an account entry. No validation is performed
// here; amount non-negativity is a property of the Motes type.
func NewAccountConfig(publicKey signing.PublicKey, balance, bondedAmount types.Motes) AccountConfig {
	return AccountConfig{
		publicKey:    publicKey,
		balance:      balance,
		bondedAmount: bondedAmount,
	}
}

// PublicKey returns the account identity.
func (a AccountConfig) PublicKey() signing.PublicKey {
	return a.publicKey
}

// Balance returns the starting balance.
func (a AccountConfig) Balance() types.Motes {
	return a.balance
}

// BondedAmount returns the stake bonded at genesis.
func (a AccountConfig) BondedAmount() types.Motes {
	return a.bondedAmount
}

// IsGenesisValidator reports whether the account participates as a
// validator at genesis, i.e. whether any stake is bonded.
func (a AccountConfig) IsGenesisValidator() bool {
	return !a.bondedAmount.IsZero()
}

// Bytes returns the canonical encoding: public key, balance, bonded amount,
// in that order.
func (a AccountConfig) Bytes() []byte {
	buf := make([]byte, 0, a.SerializedLen())
	buf = append(buf, a.publicKey.Bytes()...)
	buf = append(buf, a.balance.Bytes()...)
	return append(buf, a.bondedAmount.Bytes()...)
}

// SerializedLen returns the exact length of Bytes.
func (a AccountConfig) SerializedLen() int {
	return a.publicKey.SerializedLen() + a.balance.SerializedLen() + a.bondedAmount.SerializedLen()
}

// DecodeAccountConfig reads an AccountConfig from the front of buf and
// returns the remainder.
func DecodeAccountConfig(buf []byte) (AccountConfig, []byte, error) {
	publicKey, rest, err := signing.DecodePublicKey(buf)
	if err != nil {
		return AccountConfig{}, nil, err
	}
	balance, rest, err := types.DecodeMotes(rest)
	if err != nil {
		return AccountConfig{}, nil, err
	}
	bondedAmount, rest, err := types.DecodeMotes(rest)
	if err != nil {
		return AccountConfig{}, nil, err
	}
	return NewAccountConfig(publicKey, balance, bondedAmount), rest, nil
}

// DelegatorConfig is one genesis delegation: a delegator staking to a
// validator. No relationship between the two keys is enforced at this
// layer. It is an immutable comparable value.
type DelegatorConfig struct {
	validatorPublicKey signing.PublicKey
	delegatorPublicKey signing.PublicKey
	balance            types.Motes
	delegatedAmount    types.Motes
}

// NewDelegatorConfig constructs a delegation entry.
func NewDelegatorConfig(validatorPublicKey, delegatorPublicKey signing.PublicKey, balance, delegatedAmount types.Motes) DelegatorConfig {
	return DelegatorConfig{
		validatorPublicKey: validatorPublicKey,
		delegatorPublicKey: delegatorPublicKey,
		balance:            balance,
		delegatedAmount:    delegatedAmount,
	}
}

// ValidatorPublicKey returns the identity delegated to.
func (d DelegatorConfig) ValidatorPublicKey() signing.PublicKey {
	return d.validatorPublicKey
}

// DelegatorPublicKey returns the delegating identity.
func (d DelegatorConfig) DelegatorPublicKey() signing.PublicKey {
	return d.delegatorPublicKey
}

// Balance returns the delegator's starting balance.
func (d DelegatorConfig) Balance() types.Motes {
	return d.balance
}

// DelegatedAmount returns the stake delegated at genesis.
func (d DelegatorConfig) DelegatedAmount() types.Motes {
	return d.delegatedAmount
}

// Bytes returns the canonical encoding: validator key, delegator key,
// balance, delegated amount, in that order.
func (d DelegatorConfig) Bytes() []byte {
	buf := make([]byte, 0, d.SerializedLen())
	buf = append(buf, d.validatorPublicKey.Bytes()...)
	buf = append(buf, d.delegatorPublicKey.Bytes()...)
	buf = append(buf, d.balance.Bytes()...)
	return append(buf, d.delegatedAmount.Bytes()...)
}

// SerializedLen returns the exact length of Bytes.
func (d DelegatorConfig) SerializedLen() int {
	return d.validatorPublicKey.SerializedLen() +
		d.delegatorPublicKey.SerializedLen() +
		d.balance.SerializedLen() +
		d.delegatedAmount.SerializedLen()
}

// DecodeDelegatorConfig reads a DelegatorConfig from the front of buf and
// returns the remainder.
func DecodeDelegatorConfig(buf []byte) (DelegatorConfig, []byte, error) {
	validatorPublicKey, rest, err := signing.DecodePublicKey(buf)
	if err != nil {
		return DelegatorConfig{}, nil, err
	}
	delegatorPublicKey, rest, err := signing.DecodePublicKey(rest)
	if err != nil {
		return DelegatorConfig{}, nil, err
	}
	balance, rest, err := types.DecodeMotes(rest)
	if err != nil {
		return DelegatorConfig{}, nil, err
	}
	delegatedAmount, rest, err := types.DecodeMotes(rest)
	if err != nil {
		return DelegatorConfig{}, nil, err
	}
	return NewDelegatorConfig(validatorPublicKey, delegatorPublicKey, balance, delegatedAmount), rest, nil
}

// AccountsConfig aggregates the genesis accounts and delegations in author
// order. Order is preserved everywhere; no uniqueness of public keys is
// enforced at this layer.
type AccountsConfig struct {
	accounts   []AccountConfig
	delegators []DelegatorConfig
}

// NewAccountsConfig constructs the aggregate from the given sequences,
// cloning both so the result is insulated from later mutation of the
// arguments.
func NewAccountsConfig(accounts []AccountConfig, delegators []DelegatorConfig) AccountsConfig {
	return AccountsConfig{
		accounts:   slices.Clone(accounts),
		delegators: slices.Clone(delegators),
	}
}

// Accounts returns the genesis accounts in original order. The returned
// slice is a read-only view.
func (c AccountsConfig) Accounts() []AccountConfig {
	return c.accounts
}

// Delegators returns the genesis delegations in original order. The
// returned slice is a read-only view.
func (c AccountsConfig) Delegators() []DelegatorConfig {
	return c.delegators
}

// Bytes returns the canonical encoding: the accounts sequence followed by
// the delegators sequence.
func (c AccountsConfig) Bytes() []byte {
	buf := make([]byte, 0, c.SerializedLen())
	buf = codec.AppendSlice(buf, c.accounts)
	return codec.AppendSlice(buf, c.delegators)
}

// SerializedLen returns the exact length of Bytes.
func (c AccountsConfig) SerializedLen() int {
	return codec.SliceLen(c.accounts) + codec.SliceLen(c.delegators)
}

// DecodeAccountsConfig reads an AccountsConfig from the front of buf and
// returns the remainder.
func DecodeAccountsConfig(buf []byte) (AccountsConfig, []byte, error) {
	accounts, rest, err := codec.DecodeSlice(buf, DecodeAccountConfig)
	if err != nil {
		return AccountsConfig{}, nil, err
	}
	delegators, rest, err := codec.DecodeSlice(rest, DecodeDelegatorConfig)
	if err != nil {
		return AccountsConfig{}, nil, err
	}
	return AccountsConfig{accounts: accounts, delegators: delegators}, rest, nil
}

// Hash returns the digest of the canonical encoding, used to cross-check
// that independent nodes loaded identical genesis accounts.
func (c AccountsConfig) Hash() types.Hash32 {
	return types.Hash32(hash.Sum(c.Bytes()))
}
