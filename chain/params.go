package chain

import "github.com/pkg/errors"

// ErrBadChainDescriptor is returned when a chain descriptor is missing
// its chain id, or a chain nickname isn't registered.
var ErrBadChainDescriptor = errors.New("chain: bad chain descriptor")

// Params describes the network a transaction is signed for. ChainID is
// required; Prefix and CoreSymbol are informational (address/asset
// display only) and unused by the wire codec or signer.
type Params struct {
	Name       string
	ChainID    string // 64 hex chars = 32 bytes
	CoreSymbol string
	Prefix     string
}

func (p Params) Validate() error {
	if len(p.ChainID) != 64 {
		return errors.Wrapf(ErrBadChainDescriptor, "chain_id must be 64 hex chars, got %d", len(p.ChainID))
	}
	if _, err := decodeHex(p.ChainID); err != nil {
		return errors.Wrap(ErrBadChainDescriptor, "chain_id is not valid hex")
	}
	return nil
}

// KnownChains mirrors python-graphenelib's known_chains table: a
// mapping from short network nickname to its descriptor.
var KnownChains = map[string]Params{
	"BTS": {
		Name:       "BTS",
		ChainID:    "",
		CoreSymbol: "",
		Prefix:     "",
	},
	"GPH": {
		Name:       "GPH",
		ChainID:    "b8d1603965b3eb1acba27e62ff59f74efa3154d43a4188d381088ac7cdf35539",
		CoreSymbol: "CORE",
		Prefix:     "GPH",
	},
}

// LookupChain resolves a known chain nickname, returning
// ErrBadChainDescriptor if it isn't registered or lacks a chain id.
func LookupChain(name string) (Params, error) {
	p, ok := KnownChains[name]
	if !ok {
		return Params{}, errors.Wrapf(ErrBadChainDescriptor, "unknown chain %q", name)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
