package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedRow indicates an input row that cannot be turned into a
// Transaction. Any such row aborts the whole run; partial input is never
// processed.
var ErrMalformedRow = errors.New("malformed transaction row")

// ReadFile parses the CSV file at path into transactions in file order.
func ReadFile(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV input with a `type, client, tx, amount` header into typed
// transactions. The amount column is required and must be positive for
// deposits and withdrawals; it may be empty or absent for dispute, resolve
// and chargeback rows.
func Read(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Dispute-family rows commonly omit the trailing amount column entirely.
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing header", ErrMalformedRow)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var txs []Transaction
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return txs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		line++

		tx, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
}

func parseRow(row []string) (Transaction, error) {
	if len(row) < 3 || len(row) > 4 {
		return Transaction{}, fmt.Errorf("%w: expected 3 or 4 columns, got %d", ErrMalformedRow, len(row))
	}

	kind, err := ParseKind(strings.TrimSpace(row[0]))
	if err != nil {
		return Transaction{}, err
	}

	client, err := parseUint32(row[1], "client")
	if err != nil {
		return Transaction{}, err
	}
	txID, err := parseUint32(row[2], "tx")
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{Kind: kind, Client: client, TX: txID}

	rawAmount := ""
	if len(row) == 4 {
		rawAmount = strings.TrimSpace(row[3])
	}

	if !kind.HasAmount() {
		// Amount is meaningless for the dispute family; ignore whatever is there.
		return tx, nil
	}

	if rawAmount == "" {
		return Transaction{}, fmt.Errorf("%w: %s requires an amount", ErrMalformedRow, kind)
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: amount %q: %v", ErrMalformedRow, rawAmount, err)
	}
	if amount.Sign() <= 0 {
		return Transaction{}, fmt.Errorf("%w: %s amount must be positive, got %s", ErrMalformedRow, kind, amount)
	}
	tx.Amount = amount

	return tx, nil
}

func parseUint32(s, field string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrMalformedRow, field, s, err)
	}
	return uint32(v), nil
}
