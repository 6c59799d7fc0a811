// Package ethereum implements watchregistry.LedgerWatcher for EVM nodes.
// Each subscription polls the node for ERC-20 Transfer logs into one
// destination address and reports them as transfer records.
package ethereum

import (
	"context"
	"math/big"

	httpclient "github.com/gabapcia/transferwatch/internal/pkg/transport/http"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Backend is the part of a node client the watcher relies on.
// *ethclient.Client satisfies it.
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

var _ Backend = (*ethclient.Client)(nil)

// Dial connects to the JSON-RPC endpoint at url. HTTP requests go through the
// retrying HTTP client configured by opts.
func Dial(ctx context.Context, url string, opts ...httpclient.Option) (*ethclient.Client, error) {
	conn, err := rpc.DialOptions(ctx, url, rpc.WithHTTPClient(httpclient.NewStandardClient(opts...)))
	if err != nil {
		return nil, err
	}

	return ethclient.NewClient(conn), nil
}
