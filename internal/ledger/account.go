package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/congo-pay/txengine/internal/record"
)

// DisputeState tracks the dispute lifecycle of a stored transaction.
type DisputeState string

const (
	StateUndisputed   DisputeState = "undisputed"
	StateDisputed     DisputeState = "disputed"
	StateResolved     DisputeState = "resolved"
	StateChargebacked DisputeState = "chargebacked"
)

// StoredTransaction is the slice of history the account keeps per tx id:
// enough to validate and apply the dispute lifecycle later.
type StoredTransaction struct {
	Kind   record.Kind
	Amount decimal.Decimal
	State  DisputeState
}

// Account is the running state for a single client. It is owned exclusively
// by the worker processing that client's partition and needs no internal
// locking; once the partition is exhausted it becomes terminal and read-only.
type Account struct {
	Client    uint32
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool

	history map[uint32]*StoredTransaction
}

// NewAccount creates a zeroed, unlocked account for the client.
func NewAccount(client uint32) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		history:   make(map[uint32]*StoredTransaction),
	}
}

// Total is the derived overall balance. It is never stored.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Transaction returns a copy of the stored history entry for tx, if any.
func (a *Account) Transaction(tx uint32) (StoredTransaction, bool) {
	entry, ok := a.history[tx]
	if !ok {
		return StoredTransaction{}, false
	}
	return *entry, true
}

// HistoryLen reports how many deposit/withdrawal entries the account retains.
func (a *Account) HistoryLen() int {
	return len(a.history)
}
