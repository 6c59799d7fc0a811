package watchregistry

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// TransferRecord is one token transfer observed on the ledger.
type TransferRecord struct {
	From        common.Address
	To          common.Address
	AssetName   string // token display name, e.g. "Tether USD"
	Amount      string // human readable, already scaled by the token decimals
	TxReference string // link to the transaction on a block explorer
}

// Subscription is a live ledger subscription.
type Subscription interface {
	// Unsubscribe stops event delivery. It is safe to call more than once.
	Unsubscribe()
}

// LedgerWatcher establishes transfer subscriptions on the ledger.
type LedgerWatcher interface {
	// Subscribe starts watching transfers of token to destination. onEvents
	// is called with every batch of matching transfers until the returned
	// Subscription is cancelled.
	//
	// ctx bounds the setup only; the subscription outlives it. Errors that
	// no retry can fix wrap ErrUnsupportedToken.
	Subscribe(ctx context.Context, token, destination common.Address, onEvents func(ctx context.Context, records []TransferRecord)) (Subscription, error)
}
