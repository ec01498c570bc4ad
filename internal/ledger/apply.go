package ledger

import (
	"fmt"

	"github.com/congo-pay/txengine/internal/record"
)

// Apply runs one transaction through the account state machine. On error the
// account is left exactly as it was before the call; a failed record is a
// no-op. Only the fields of this account are ever touched.
func (a *Account) Apply(rec record.Transaction) error {
	switch rec.Kind {
	case record.KindDeposit:
		return a.deposit(rec)
	case record.KindWithdrawal:
		return a.withdraw(rec)
	case record.KindDispute:
		return a.dispute(rec)
	case record.KindResolve:
		return a.resolve(rec)
	case record.KindChargeback:
		return a.chargeback(rec)
	default:
		return fmt.Errorf("unsupported transaction kind %s", rec.Kind)
	}
}

func (a *Account) deposit(rec record.Transaction) error {
	if a.Locked {
		return fmt.Errorf("%w: client %d", ErrAccountLocked, a.Client)
	}

	a.Available = a.Available.Add(rec.Amount)
	// A repeated tx id overwrites the prior entry. Known quirk of the input
	// contract; do not change without confirming intent upstream.
	a.history[rec.TX] = &StoredTransaction{
		Kind:   rec.Kind,
		Amount: rec.Amount,
		State:  StateUndisputed,
	}
	return nil
}

func (a *Account) withdraw(rec record.Transaction) error {
	if a.Locked {
		return fmt.Errorf("%w: client %d", ErrAccountLocked, a.Client)
	}
	if a.Available.LessThan(rec.Amount) {
		return fmt.Errorf("%w: client %d", ErrInsufficientFunds, a.Client)
	}

	a.Available = a.Available.Sub(rec.Amount)
	a.history[rec.TX] = &StoredTransaction{
		Kind:   rec.Kind,
		Amount: rec.Amount,
		State:  StateUndisputed,
	}
	return nil
}

// dispute moves the referenced deposit's amount from available into held.
// Permitted even on a locked account.
func (a *Account) dispute(rec record.Transaction) error {
	entry, ok := a.history[rec.TX]
	if !ok {
		return fmt.Errorf("%w: tx %d", ErrNoSuchTransaction, rec.TX)
	}
	if entry.Kind != record.KindDeposit {
		return fmt.Errorf("%w: tx %d is a %s", ErrNotDisputable, rec.TX, entry.Kind)
	}
	if entry.State != StateUndisputed {
		return fmt.Errorf("%w: tx %d is %s, want %s", ErrDisputeState, rec.TX, entry.State, StateUndisputed)
	}

	a.Available = a.Available.Sub(entry.Amount)
	a.Held = a.Held.Add(entry.Amount)
	entry.State = StateDisputed
	return nil
}

// resolve releases a disputed amount back into available, ending the dispute
// in the client's favor.
func (a *Account) resolve(rec record.Transaction) error {
	entry, ok := a.history[rec.TX]
	if !ok {
		return fmt.Errorf("%w: tx %d", ErrNoSuchTransaction, rec.TX)
	}
	if entry.State != StateDisputed {
		return fmt.Errorf("%w: tx %d is %s, want %s", ErrDisputeState, rec.TX, entry.State, StateDisputed)
	}

	a.Available = a.Available.Add(entry.Amount)
	a.Held = a.Held.Sub(entry.Amount)
	entry.State = StateResolved
	return nil
}

// chargeback reverses a disputed amount out of held and permanently locks
// the account. No transition reverses a lock.
func (a *Account) chargeback(rec record.Transaction) error {
	entry, ok := a.history[rec.TX]
	if !ok {
		return fmt.Errorf("%w: tx %d", ErrNoSuchTransaction, rec.TX)
	}
	if entry.State != StateDisputed {
		return fmt.Errorf("%w: tx %d is %s, want %s", ErrDisputeState, rec.TX, entry.State, StateDisputed)
	}

	a.Held = a.Held.Sub(entry.Amount)
	entry.State = StateChargebacked
	a.Locked = true
	return nil
}
