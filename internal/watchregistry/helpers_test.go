package watchregistry

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/statepersist"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

func init() {
	_ = logger.Init("error")
}

const (
	admin    Owner = 1
	allowed  Owner = 111
	stranger Owner = 222

	usdtHex   = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
	daiHex    = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	vaultHex  = "0xc8Fb0Ec6C8331cE5e014a34E7e2adc85BC9C701A"
	senderHex = "0x52908400098527886E0F7030069857D2E4169EE7"
)

var (
	usdt   = common.HexToAddress(usdtHex)
	dai    = common.HexToAddress(daiHex)
	vault  = common.HexToAddress(vaultHex)
	sender = common.HexToAddress(senderHex)
)

// destinationN returns a distinct non-zero address for every n.
func destinationN(n int) common.Address {
	return common.BigToAddress(big.NewInt(int64(n) + 0x1000))
}

// savedStates records every snapshot handed to a StateSaverMock.
type savedStates struct {
	mu     sync.Mutex
	states []statepersist.DurableState
}

func (s *savedStates) record(_ context.Context, state statepersist.DurableState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state)
}

func (s *savedStates) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *savedStates) last() statepersist.DurableState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.states) == 0 {
		return statepersist.DurableState{}
	}
	return s.states[len(s.states)-1]
}

// fixture bundles a registry with its collaborators.
type fixture struct {
	svc    *service
	ledger *LedgerWatcherMock
	sink   *NotificationSinkMock
	saver  *StateSaverMock
	saved  *savedStates
}

// newFixture builds a registry administered by admin with allowed already on
// the allow-list. Every save request is recorded.
func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		ledger: NewLedgerWatcherMock(t),
		sink:   NewNotificationSinkMock(t),
		saver:  NewStateSaverMock(t),
		saved:  &savedStates{},
	}
	f.saver.EXPECT().RequestSave(mock.Anything, mock.Anything).Run(f.saved.record).Return().Maybe()

	f.svc = New(admin, f.ledger, f.sink, f.saver, opts...)
	f.svc.allowList.Add(allowed)
	return f
}

// callbacks collects the notification callbacks handed to the ledger.
type callbacks struct {
	mu  sync.Mutex
	fns []func(context.Context, []TransferRecord)
}

func (c *callbacks) add(fn func(context.Context, []TransferRecord)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, fn)
}

func (c *callbacks) get(i int) func(context.Context, []TransferRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fns[i]
}

// expectSubscribe makes every Subscribe call succeed with a fresh
// SubscriptionMock that tolerates being cancelled. Callbacks are captured.
func (f *fixture) expectSubscribe(t *testing.T) *callbacks {
	t.Helper()

	cbs := &callbacks{}
	f.ledger.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ common.Address, fn func(context.Context, []TransferRecord)) (Subscription, error) {
			cbs.add(fn)
			sub := NewSubscriptionMock(t)
			sub.EXPECT().Unsubscribe().Return().Maybe()
			return sub, nil
		}).Maybe()
	return cbs
}
