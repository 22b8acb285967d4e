package chainspec

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/soyerSO/casper-node/common/types"
	"github.com/soyerSO/casper-node/signing"
)

// AccountsFilename is the conventional name of the accounts file beneath the
// chainspec directory.
const AccountsFilename = "accounts.toml"

var (
	// ErrReadAccounts is returned when the accounts file exists but cannot
	// be read.
	ErrReadAccounts = errors.New("read accounts file")
	// ErrParseAccounts is returned when the accounts file content does not
	// match the expected schema.
	ErrParseAccounts = errors.New("parse accounts file")
)

// Loader reads the accounts file from a chainspec directory.
type Loader struct {
	fs     afero.Fs
	logger *zap.Logger
}

// Opt modifies a Loader.
type Opt func(*Loader)

// WithFilesystem overrides the filesystem the accounts file is read from.
func WithFilesystem(fs afero.Fs) Opt {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithLogger sets the loader logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader reading from the OS filesystem and logging
// nowhere unless configured otherwise.
func NewLoader(opts ...Opt) *Loader {
	l := &Loader{
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the accounts file beneath dir. A missing file is
// not an error: omitting the file means "no genesis accounts", and yields
// an empty configuration. A path that exists but is not a regular file
// (e.g. a directory) counts as missing too. Read failures wrap
// ErrReadAccounts; content that does not match the schema wraps
// ErrParseAccounts.
func (l *Loader) Load(dir string) (AccountsConfig, error) {
	path := filepath.Join(dir, AccountsFilename)
	info, err := l.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("accounts file not present, using empty genesis accounts",
			zap.String("path", path))
		return AccountsConfig{}, nil
	}
	if err != nil {
		return AccountsConfig{}, fmt.Errorf("%w %s: %w", ErrReadAccounts, path, err)
	}
	if !info.Mode().IsRegular() {
		l.logger.Debug("accounts path is not a regular file, using empty genesis accounts",
			zap.String("path", path))
		return AccountsConfig{}, nil
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return AccountsConfig{}, fmt.Errorf("%w %s: %w", ErrReadAccounts, path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return AccountsConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	l.logger.Info("loaded genesis accounts",
		zap.String("path", path),
		zap.Int("accounts", len(cfg.Accounts())),
		zap.Int("delegators", len(cfg.Delegators())),
		zap.String("hash", cfg.Hash().Hex()),
	)
	return cfg, nil
}

// LoadAccountsConfig reads the accounts file beneath dir from the OS
// filesystem with default options.
func LoadAccountsConfig(dir string) (AccountsConfig, error) {
	return NewLoader().Load(dir)
}

type accountStanza struct {
	PublicKey    *signing.PublicKey `mapstructure:"public_key"`
	Balance      *types.Motes       `mapstructure:"balance"`
	BondedAmount *types.Motes       `mapstructure:"bonded_amount"`
}

type delegatorStanza struct {
	ValidatorPublicKey *signing.PublicKey `mapstructure:"validator_public_key"`
	DelegatorPublicKey *signing.PublicKey `mapstructure:"delegator_public_key"`
	Balance            *types.Motes       `mapstructure:"balance"`
	DelegatedAmount    *types.Motes       `mapstructure:"delegated_amount"`
}

type accountsDoc struct {
	Accounts   []accountStanza   `mapstructure:"accounts"`
	Delegators []delegatorStanza `mapstructure:"delegators"`
}

// Parse decodes the TOML accounts document. The top-level accounts list is
// required (an explicitly empty list is legal); the delegators table array
// is optional and defaults to empty. Every field inside a present stanza is
// required. All failures wrap ErrParseAccounts.
func Parse(data []byte) (AccountsConfig, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return AccountsConfig{}, fmt.Errorf("%w: %w", ErrParseAccounts, err)
	}
	if !v.IsSet("accounts") {
		return AccountsConfig{}, fmt.Errorf("%w: missing accounts", ErrParseAccounts)
	}
	var doc accountsDoc
	if err := v.Unmarshal(&doc, viper.DecodeHook(decodeHook())); err != nil {
		return AccountsConfig{}, fmt.Errorf("%w: %w", ErrParseAccounts, err)
	}

	accounts := make([]AccountConfig, 0, len(doc.Accounts))
	for i, stanza := range doc.Accounts {
		if err := requireFields(map[string]any{
			"public_key":    stanza.PublicKey,
			"balance":       stanza.Balance,
			"bonded_amount": stanza.BondedAmount,
		}); err != nil {
			return AccountsConfig{}, fmt.Errorf("%w: accounts[%d]: %w", ErrParseAccounts, i, err)
		}
		accounts = append(accounts, NewAccountConfig(*stanza.PublicKey, *stanza.Balance, *stanza.BondedAmount))
	}

	delegators := make([]DelegatorConfig, 0, len(doc.Delegators))
	for i, stanza := range doc.Delegators {
		if err := requireFields(map[string]any{
			"validator_public_key": stanza.ValidatorPublicKey,
			"delegator_public_key": stanza.DelegatorPublicKey,
			"balance":              stanza.Balance,
			"delegated_amount":     stanza.DelegatedAmount,
		}); err != nil {
			return AccountsConfig{}, fmt.Errorf("%w: delegators[%d]: %w", ErrParseAccounts, i, err)
		}
		delegators = append(delegators,
			NewDelegatorConfig(*stanza.ValidatorPublicKey, *stanza.DelegatorPublicKey, *stanza.Balance, *stanza.DelegatedAmount))
	}

	return NewAccountsConfig(accounts, delegators), nil
}

func requireFields(fields map[string]any) error {
	for name, field := range fields {
		if reflect.ValueOf(field).IsNil() {
			return fmt.Errorf("missing %s", name)
		}
	}
	return nil
}

// decodeHook turns the text forms of the accounts file into domain values:
// public keys and amounts come in as strings (amounts also as bare TOML
// integers) and are parsed through their TextUnmarshaler implementations.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		integerToStringHook(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// integerToStringHook stringifies bare TOML integers aimed at an amount
// field so the text-unmarshal hook can take over.
func integerToStringHook() mapstructure.DecodeHookFuncType {
	motesType := reflect.TypeOf(types.Motes{})
	return func(from, to reflect.Type, data any) (any, error) {
		if to != motesType {
			return data, nil
		}
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(reflect.ValueOf(data).Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return strconv.FormatUint(reflect.ValueOf(data).Uint(), 10), nil
		default:
			return data, nil
		}
	}
}
