package ledger

import "errors"

var (
	// ErrAccountLocked rejects deposits and withdrawals on a locked account.
	// Dispute, resolve and chargeback are still accepted while locked.
	ErrAccountLocked = errors.New("account locked")

	// ErrInsufficientFunds occurs when a withdrawal exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoSuchTransaction indicates a dispute-family record referencing a tx
	// id absent from the account history.
	ErrNoSuchTransaction = errors.New("no such transaction")

	// ErrDisputeState indicates a dispute-family record arriving while the
	// referenced transaction is not in the required dispute state.
	ErrDisputeState = errors.New("invalid dispute state")

	// ErrNotDisputable indicates an attempt to dispute a non-deposit.
	ErrNotDisputable = errors.New("transaction not disputable")
)
