// Package arena builds transactions and scripts for the ArenaToken contract.
//
// Every operation loads a fixed cadence template, resolves its contract imports against the
// addresses the Service was created with, and attaches a fixed argument list.
// Nothing is sent to the network.
package arena

import (
	"github.com/bjartek/arenatoken/pkg/imports"
	"github.com/bjartek/arenatoken/pkg/templates"
	"github.com/enescakir/emoji"
	"github.com/rs/zerolog"
)

// Contract names used in template placeholders
const (
	ArenaTokenContract    = "ArenaToken"
	FungibleTokenContract = "FungibleToken"
)

// Template paths relative to the loader base directory
const (
	ContractTemplate              = "contracts/ArenaToken.cdc"
	SendArenaTemplate             = "transactions/arenaToken/send_arena.cdc"
	SetupAccountTemplate          = "transactions/arenaToken/setup_account.cdc"
	MintArenaTemplate             = "transactions/arenaToken/mint_arena.cdc"
	BurnArenaTemplate             = "transactions/arenaToken/burn_arena.cdc"
	TransferAdministratorTemplate = "transactions/arenaToken/transfer_admin.cdc"
	DestroyAdministratorTemplate  = "transactions/arenaToken/destroy_admin.cdc"
	GetBalanceTemplate            = "scripts/arenaToken/get_balance.cdc"
)

// Gas limits
const (
	SendArenaGasLimit             uint64 = 25
	SetupAccountGasLimit          uint64 = 50
	MintArenaGasLimit             uint64 = 100
	BurnArenaGasLimit             uint64 = 40
	TransferAdministratorGasLimit uint64 = 40
	DestroyAdministratorGasLimit  uint64 = 40
)

// Service holds the contract addresses. It is not modified after New and is safe for concurrent use.
type Service struct {
	fungibleTokenAddress string
	arenaTokenAddress    string
	loader               *templates.Loader
	logger               zerolog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLoader sets where templates are read from. The embedded templates are used by default.
func WithLoader(loader *templates.Loader) Option {
	return func(s *Service) {
		s.loader = loader
	}
}

// WithLogger sets the logger descriptors are reported to
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a service for the given FungibleToken and ArenaToken deployments
func New(fungibleTokenAddress, arenaTokenAddress string, opts ...Option) *Service {
	s := &Service{
		fungibleTokenAddress: fungibleTokenAddress,
		arenaTokenAddress:    arenaTokenAddress,
		loader:               templates.NewEmbeddedLoader(),
		logger:               zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mapping returns the contract addresses templates are resolved against
func (s *Service) Mapping() imports.Mapping {
	return imports.Mapping{
		{Name: ArenaTokenContract, Address: s.arenaTokenAddress},
		{Name: FungibleTokenContract, Address: s.fungibleTokenAddress},
	}
}

func (s *Service) render(path string, mapping imports.Mapping) (string, error) {
	tpl, err := s.loader.Load(path)
	if err != nil {
		return "", err
	}
	code := imports.Resolve(tpl, mapping)
	if missing := imports.Unresolved(code); len(missing) > 0 {
		s.logger.Warn().Str("template", path).Strs("contracts", missing).Msg("Template has placeholders without an address")
	}
	return code, nil
}

func (s *Service) transaction(name, path string, gasLimit uint64, args ...Argument) (*Transaction, error) {
	code, err := s.render(path, s.Mapping())
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []Argument{}
	}
	tx := &Transaction{
		Name:     name,
		Code:     code,
		Args:     args,
		GasLimit: gasLimit,
	}
	s.logger.Debug().Object("transaction", tx).Msgf("%v Built transaction", emoji.Scroll)
	return tx, nil
}

func (s *Service) script(name, path string, args ...Argument) (*Script, error) {
	code, err := s.render(path, s.Mapping())
	if err != nil {
		return nil, err
	}
	script := &Script{
		Name: name,
		Code: code,
		Args: args,
	}
	s.logger.Debug().Object("script", script).Msgf("%v Built script", emoji.Scroll)
	return script, nil
}

// SendArena transfers amount tokens from the signer to recipient
func (s *Service) SendArena(recipient string, amount float64) (*Transaction, error) {
	value, err := FormatAmount(amount)
	if err != nil {
		return nil, err
	}
	return s.transaction("Send Arena", SendArenaTemplate, SendArenaGasLimit,
		AddressArg(recipient),
		UFix64Arg(value),
	)
}

// SetupAccount prepares recipient for holding tokens. recipient must sign the transaction.
func (s *Service) SetupAccount(recipient string) (*Transaction, error) {
	return s.transaction("Setup Account", SetupAccountTemplate, SetupAccountGasLimit,
		AddressArg(recipient),
	)
}

// GetBalance reads the token balance of target
func (s *Service) GetBalance(target string) (*Script, error) {
	return s.script("Get Balance", GetBalanceTemplate,
		AddressArg(target),
	)
}

// MintTokens mints amount new tokens into the vault of recipient.
// The signer must hold the Administrator resource.
func (s *Service) MintTokens(recipient string, amount float64) (*Transaction, error) {
	value, err := FormatAmount(amount)
	if err != nil {
		return nil, err
	}
	return s.transaction("Mint Arena", MintArenaTemplate, MintArenaGasLimit,
		AddressArg(recipient),
		UFix64Arg(value),
	)
}

// BurnTokens withdraws amount from the signer vault and destroys it
func (s *Service) BurnTokens(amount float64) (*Transaction, error) {
	value, err := FormatAmount(amount)
	if err != nil {
		return nil, err
	}
	return s.transaction("Burn Arena", BurnArenaTemplate, BurnArenaGasLimit,
		UFix64Arg(value),
	)
}

// TransferAdministrator moves the Administrator resource to newAdmin. Both accounts sign.
func (s *Service) TransferAdministrator(newAdmin string) (*Transaction, error) {
	return s.transaction("Transfer Administrator", TransferAdministratorTemplate, TransferAdministratorGasLimit,
		AddressArg(newAdmin),
	)
}

// DestroyAdministrator destroys the Administrator resource, no tokens can be minted afterwards
func (s *Service) DestroyAdministrator() (*Transaction, error) {
	return s.transaction("Destroy Administrator", DestroyAdministratorTemplate, DestroyAdministratorGasLimit)
}

// Contract returns the deployable source of the ArenaToken contract.
// Only the FungibleToken import is resolved since the contract does not import itself.
func (s *Service) Contract() (string, error) {
	return s.render(ContractTemplate, imports.Mapping{
		{Name: FungibleTokenContract, Address: s.fungibleTokenAddress},
	})
}
