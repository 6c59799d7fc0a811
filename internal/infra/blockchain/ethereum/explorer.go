package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrUnknownChain is returned when no block explorer is known for a chain id.
var ErrUnknownChain = errors.New("no block explorer known for chain")

var explorers = map[int64]string{
	1:        "https://etherscan.io",
	17000:    "https://holesky.etherscan.io",
	11155111: "https://sepolia.etherscan.io",
}

// ExplorerURL returns the default block explorer of chainID.
func ExplorerURL(chainID int64) (string, error) {
	url, ok := explorers[chainID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownChain, chainID)
	}

	return url, nil
}

// txReference links hash on the explorer.
func txReference(explorer string, hash common.Hash) string {
	return strings.TrimRight(explorer, "/") + "/tx/" + hash.Hex()
}
