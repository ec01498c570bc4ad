package record

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownKind indicates a transaction kind string outside the closed set.
var ErrUnknownKind = errors.New("unknown transaction kind")

// Kind enumerates the transaction kinds accepted on the input stream.
type Kind uint8

const (
	KindDeposit Kind = iota
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

// ParseKind maps the lowercase wire string onto a Kind. Anything outside the
// five recognized values is an error; no dispatch happens on the raw string
// after this point.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "deposit":
		return KindDeposit, nil
	case "withdrawal":
		return KindWithdrawal, nil
	case "dispute":
		return KindDispute, nil
	case "resolve":
		return KindResolve, nil
	case "chargeback":
		return KindChargeback, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// String renders the wire form of the kind.
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// HasAmount reports whether records of this kind carry a monetary amount.
// Dispute, resolve and chargeback reference a prior transaction instead.
func (k Kind) HasAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is one validated input event. Immutable once produced by the
// reader; Amount is only meaningful when Kind.HasAmount() is true.
type Transaction struct {
	Kind   Kind
	Client uint32
	TX     uint32
	Amount decimal.Decimal
}
