// Package mocks provides recording doubles for the coordinator's injected
// capabilities. Every double appends to a shared CallLog so tests can assert
// the order of external effects, not just their presence.
package mocks

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tanminhan00/GasZero-sub001/pkg/models"
)

// CallLog records the sequence of capability calls made during a run.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *CallLog) record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

// Calls returns the recorded call names in order.
func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

// Index returns the position of the first call with the given name, or -1.
func (l *CallLog) Index(name string) int {
	for i, c := range l.Calls() {
		if c == name {
			return i
		}
	}
	return -1
}

// Count returns how many times the given call was recorded.
func (l *CallLog) Count(name string) int {
	n := 0
	for _, c := range l.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

// MockChainReader serves scripted chain reads.
type MockChainReader struct {
	Log *CallLog

	AllowanceValue *big.Int
	AllowanceErr   error

	// BalanceSeq is returned one value per NativeBalance call; once
	// exhausted the last value repeats.
	BalanceSeq []*big.Int
	BalanceErr error

	// ConfirmAfter is how many TransactionConfirmed calls return false
	// before the receipt appears.
	ConfirmAfter int

	balanceCalls int
	confirmCalls int
}

func NewMockChainReader(log *CallLog) *MockChainReader {
	return &MockChainReader{
		Log:            log,
		AllowanceValue: big.NewInt(0),
		BalanceSeq:     []*big.Int{big.NewInt(0)},
	}
}

func (m *MockChainReader) Allowance(_ context.Context, _, _, _ common.Address) (*big.Int, error) {
	m.Log.record("allowance")
	if m.AllowanceErr != nil {
		return nil, m.AllowanceErr
	}
	return new(big.Int).Set(m.AllowanceValue), nil
}

func (m *MockChainReader) NativeBalance(_ context.Context, _ common.Address) (*big.Int, error) {
	m.Log.record("balance")
	if m.BalanceErr != nil {
		return nil, m.BalanceErr
	}
	i := m.balanceCalls
	if i >= len(m.BalanceSeq) {
		i = len(m.BalanceSeq) - 1
	}
	m.balanceCalls++
	return new(big.Int).Set(m.BalanceSeq[i]), nil
}

func (m *MockChainReader) TransactionConfirmed(_ context.Context, _ common.Hash) (bool, error) {
	m.Log.record("confirmed")
	m.confirmCalls++
	return m.confirmCalls > m.ConfirmAfter, nil
}

// MockFunder records funding requests.
type MockFunder struct {
	Log *CallLog

	Err      error
	Requests []models.FundingRequest
}

func NewMockFunder(log *CallLog) *MockFunder {
	return &MockFunder{Log: log}
}

func (m *MockFunder) RequestFunding(_ context.Context, user common.Address, reason models.FundingReason) error {
	m.Log.record("fund")
	if m.Err != nil {
		return m.Err
	}
	m.Requests = append(m.Requests, models.FundingRequest{
		UserAddress: user.Hex(),
		Reason:      reason,
	})
	return nil
}

// MockRelay records relay submissions.
type MockRelay struct {
	Log *CallLog

	Hash     string
	Err      error
	Requests []models.RelayRequest
}

func NewMockRelay(log *CallLog) *MockRelay {
	return &MockRelay{Log: log, Hash: "0xrelayed"}
}

func (m *MockRelay) Submit(_ context.Context, request models.RelayRequest) (string, error) {
	m.Log.record("relay")
	if m.Err != nil {
		return "", m.Err
	}
	m.Requests = append(m.Requests, request)
	return m.Hash, nil
}

// MockSigner is a wallet double with a fixed address and scripted results.
type MockSigner struct {
	Log *CallLog

	Addr       common.Address
	Signature  []byte
	MessageErr error
	TxHash     common.Hash
	TxErr      error

	SignedMessages []string
	SentData       [][]byte
	SentTo         []common.Address
}

func NewMockSigner(log *CallLog) *MockSigner {
	return &MockSigner{
		Log:       log,
		Addr:      common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		Signature: []byte{0x01, 0x02, 0x03},
		TxHash:    common.HexToHash("0xabc123"),
	}
}

func (m *MockSigner) Address() common.Address {
	return m.Addr
}

func (m *MockSigner) SignMessage(_ context.Context, message string) ([]byte, error) {
	m.Log.record("sign")
	if m.MessageErr != nil {
		return nil, m.MessageErr
	}
	m.SignedMessages = append(m.SignedMessages, message)
	return m.Signature, nil
}

func (m *MockSigner) SendTransaction(_ context.Context, to common.Address, data []byte) (common.Hash, error) {
	m.Log.record("approve")
	if m.TxErr != nil {
		return common.Hash{}, m.TxErr
	}
	m.SentTo = append(m.SentTo, to)
	m.SentData = append(m.SentData, data)
	return m.TxHash, nil
}
