// Package fixture generates random chainspec values. Generated values are
// structurally valid but not contextually meaningful. This is for codec
// round-trip and adapter tests; production code must not import it.
package fixture

import (
	"math/rand"
	"time"

	"github.com/holiman/uint256"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/soyerSO/casper-node/chainspec"
	"github.com/soyerSO/casper-node/common/types"
	"github.com/soyerSO/casper-node/signing"
)

// NewAccountsGenerator with time-based randomness.
func NewAccountsGenerator() *AccountsGenerator {
	return new(AccountsGenerator).WithSeed(time.Now().UnixNano())
}

// AccountsGenerator generates random chainspec entities.
type AccountsGenerator struct {
	rng *rand.Rand
}

// WithSeed updates the randomness source.
func (g *AccountsGenerator) WithSeed(seed int64) *AccountsGenerator {
	g.rng = rand.New(rand.NewSource(seed))
	return g
}

// PublicKey generates an ed25519 identity from a random seed.
func (g *AccountsGenerator) PublicKey() signing.PublicKey {
	seed := make([]byte, ed25519.SeedSize)
	g.rng.Read(seed)
	private := ed25519.NewKeyFromSeed(seed)
	key, err := signing.Ed25519PublicKey(private.Public().(ed25519.PublicKey))
	if err != nil {
		panic(err)
	}
	return key
}

// Secp256k1PublicKey generates random compressed-point bytes. The bytes are
// not a real curve point; keys are opaque at this layer.
func (g *AccountsGenerator) Secp256k1PublicKey() signing.PublicKey {
	raw := make([]byte, signing.Secp256k1PublicKeySize)
	g.rng.Read(raw)
	raw[0] = 0x02 + byte(g.rng.Intn(2))
	key, err := signing.Secp256k1PublicKey(raw)
	if err != nil {
		panic(err)
	}
	return key
}

// Motes generates an amount of random magnitude, anywhere from zero to the
// full 256-bit range.
func (g *AccountsGenerator) Motes() types.Motes {
	raw := make([]byte, g.rng.Intn(types.MaxMotesBytes+1))
	g.rng.Read(raw)
	var value uint256.Int
	value.SetBytes(raw)
	return types.NewMotes(&value)
}

// AccountConfig generates one genesis account entry.
func (g *AccountsGenerator) AccountConfig() chainspec.AccountConfig {
	return chainspec.NewAccountConfig(g.PublicKey(), g.Motes(), g.Motes())
}

// DelegatorConfig generates one delegation entry.
func (g *AccountsGenerator) DelegatorConfig() chainspec.DelegatorConfig {
	return chainspec.NewDelegatorConfig(g.PublicKey(), g.PublicKey(), g.Motes(), g.Motes())
}

// AccountsConfig generates a populated aggregate: several accounts and one
// delegation staking to the first of them.
func (g *AccountsGenerator) AccountsConfig() chainspec.AccountsConfig {
	accounts := []chainspec.AccountConfig{
		g.AccountConfig(),
		g.AccountConfig(),
		g.AccountConfig(),
		g.AccountConfig(),
	}
	delegators := []chainspec.DelegatorConfig{
		chainspec.NewDelegatorConfig(accounts[0].PublicKey(), g.PublicKey(), g.Motes(), g.Motes()),
	}
	return chainspec.NewAccountsConfig(accounts, delegators)
}
