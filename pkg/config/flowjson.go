package config

import (
	"github.com/cockroachdb/errors"
	"github.com/onflow/flowkit/v2"
	flowconfig "github.com/onflow/flowkit/v2/config"
	"github.com/spf13/afero"
)

// AddressesFromFlowJSON resolves the FungibleToken and ArenaToken addresses for network
// from flow.json. A network alias wins over the account the contract is deployed to.
func AddressesFromFlowJSON(fs afero.Fs, paths []string, network string) (ContractsConfig, error) {
	loader := &afero.Afero{Fs: fs}
	state, err := flowkit.Load(paths, loader)
	if err != nil {
		if errors.Is(err, flowconfig.ErrDoesNotExist) {
			return ContractsConfig{}, errors.Wrapf(err, "flow.json missing at %v", paths)
		}
		return ContractsConfig{}, errors.Wrap(err, "loading flow.json")
	}

	address := func(name string) (string, error) {
		if contract, err := state.Contracts().ByName(name); err == nil {
			if alias := contract.Aliases.ByNetwork(network); alias != nil {
				return alias.Address.Hex(), nil
			}
		}

		for _, deployment := range state.Deployments().ByNetwork(network) {
			for _, c := range deployment.Contracts {
				if c.Name != name {
					continue
				}
				account, err := state.Accounts().ByName(deployment.Account)
				if err != nil {
					return "", errors.Wrapf(err, "resolving deployment account %s of %s", deployment.Account, name)
				}
				return account.Address.Hex(), nil
			}
		}

		return "", errors.Newf("flow.json has no alias or deployment of %s on %s", name, network)
	}

	fungibleToken, err := address("FungibleToken")
	if err != nil {
		return ContractsConfig{}, err
	}
	arenaToken, err := address("ArenaToken")
	if err != nil {
		return ContractsConfig{}, err
	}

	return ContractsConfig{
		FungibleToken: fungibleToken,
		ArenaToken:    arenaToken,
	}, nil
}
