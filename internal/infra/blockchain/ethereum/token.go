package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/transferwatch/internal/watchregistry"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
)

// ErrNotERC20 is returned when a contract executes the ERC-20 metadata calls
// but does not answer them as a token. Node and transport failures are not
// wrapped in it.
var ErrNotERC20 = fmt.Errorf("%w: contract does not look like an ERC-20 token", watchregistry.ErrUnsupportedToken)

// erc20JSON holds the subset of the ERC-20 ABI the watcher uses.
const erc20JSON = `[
	{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

var (
	erc20 = mustParseABI(erc20JSON)

	// transferTopic is keccak256("Transfer(address,address,uint256)").
	transferTopic = erc20.Events["Transfer"].ID
)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

// token is the metadata needed to render transfers of one contract.
type token struct {
	address  common.Address
	name     string
	decimals uint8
}

// errBadAnswer marks calls the node executed but the contract answered in a
// way no ERC-20 token would: a revert, no code or undecodable output.
var errBadAnswer = errors.New("unexpected contract answer")

// revertCode is the JSON-RPC error code nodes use for reverted calls.
const revertCode = 3

// isRevert reports whether err is the node rejecting the call itself rather
// than a failure to reach the node.
func isRevert(err error) bool {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertCode {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}

// call invokes a no-argument view method of the contract at address.
// Transport failures are returned as is; contract failures wrap errBadAnswer.
func (w *watcher) call(ctx context.Context, address common.Address, method string) ([]any, error) {
	input, err := erc20.Pack(method)
	if err != nil {
		return nil, err
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	output, err := w.backend.CallContract(ctx, ethereum.CallMsg{To: &address, Data: input}, nil)
	if err != nil {
		if isRevert(err) {
			return nil, fmt.Errorf("%w: %s(): %w", errBadAnswer, method, err)
		}
		return nil, fmt.Errorf("calling %s(): %w", method, err)
	}

	values, err := erc20.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%w: %s(): %w", errBadAnswer, method, err)
	}

	return values, nil
}

func (w *watcher) callString(ctx context.Context, address common.Address, method string) (string, error) {
	values, err := w.call(ctx, address, method)
	if err != nil {
		return "", err
	}

	s, ok := values[0].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s() returned no text", errBadAnswer, method)
	}

	return s, nil
}

// tokenError wraps contract failures in ErrNotERC20 so they are not retried.
func tokenError(address common.Address, err error) error {
	if errors.Is(err, errBadAnswer) {
		return fmt.Errorf("%w: %s: %w", ErrNotERC20, address.Hex(), err)
	}
	return fmt.Errorf("reading token %s: %w", address.Hex(), err)
}

// readToken loads the display name and decimals of the contract at address.
// The symbol stands in for contracts without a name.
func (w *watcher) readToken(ctx context.Context, address common.Address) (token, error) {
	name, err := w.callString(ctx, address, "name")
	if errors.Is(err, errBadAnswer) {
		name, err = w.callString(ctx, address, "symbol")
	}
	if err != nil {
		return token{}, tokenError(address, err)
	}

	values, err := w.call(ctx, address, "decimals")
	if err != nil {
		return token{}, tokenError(address, err)
	}

	decimals, ok := values[0].(uint8)
	if !ok {
		return token{}, tokenError(address, fmt.Errorf("%w: unexpected decimals type %T", errBadAnswer, values[0]))
	}

	return token{address: address, name: name, decimals: decimals}, nil
}

// formatAmount scales a raw token amount by the token decimals.
func formatAmount(value *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}

// decodeTransfer turns a Transfer log of tok into a transfer record.
func (w *watcher) decodeTransfer(tok token, log types.Log) (watchregistry.TransferRecord, error) {
	// Transfer logs with a fourth topic are ERC-721.
	if len(log.Topics) != 3 || log.Topics[0] != transferTopic {
		return watchregistry.TransferRecord{}, fmt.Errorf("not an ERC-20 transfer log: %d topics", len(log.Topics))
	}

	values, err := erc20.Unpack("Transfer", log.Data)
	if err != nil {
		return watchregistry.TransferRecord{}, err
	}

	value, ok := values[0].(*big.Int)
	if !ok {
		return watchregistry.TransferRecord{}, fmt.Errorf("unexpected transfer value type %T", values[0])
	}

	return watchregistry.TransferRecord{
		From:        common.BytesToAddress(log.Topics[1].Bytes()),
		To:          common.BytesToAddress(log.Topics[2].Bytes()),
		AssetName:   tok.name,
		Amount:      formatAmount(value, tok.decimals),
		TxReference: txReference(w.cfg.explorerURL, log.TxHash),
	}, nil
}
