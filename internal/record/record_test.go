package record

import (
	"errors"
	"testing"
)

func TestParseKindRecognizesAllWireValues(t *testing.T) {
	cases := map[string]Kind{
		"deposit":    KindDeposit,
		"withdrawal": KindWithdrawal,
		"dispute":    KindDispute,
		"resolve":    KindResolve,
		"chargeback": KindChargeback,
	}
	for raw, want := range cases {
		got, err := ParseKind(raw)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", raw, got, want)
		}
		if got.String() != raw {
			t.Fatalf("Kind.String() = %q, want %q", got.String(), raw)
		}
	}
}

func TestParseKindRejectsUnknownAndCaseVariants(t *testing.T) {
	for _, raw := range []string{"", "Deposit", "DEPOSIT", "transfer", "deposit "} {
		if _, err := ParseKind(raw); !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("ParseKind(%q): expected ErrUnknownKind, got %v", raw, err)
		}
	}
}

func TestHasAmount(t *testing.T) {
	for _, k := range []Kind{KindDeposit, KindWithdrawal} {
		if !k.HasAmount() {
			t.Fatalf("%s should carry an amount", k)
		}
	}
	for _, k := range []Kind{KindDispute, KindResolve, KindChargeback} {
		if k.HasAmount() {
			t.Fatalf("%s should not carry an amount", k)
		}
	}
}
