package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/congo-pay/txengine/internal/ledger"
)

// Write renders the terminal snapshot as CSV: one row per client with
// available, held and total at exactly four decimal places. Rows are sorted
// by client id so runs over the same input produce identical bytes.
func Write(w io.Writer, snapshot map[uint32]*ledger.Account) error {
	clients := make([]uint32, 0, len(snapshot))
	for client := range snapshot {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, client := range clients {
		acct := snapshot[client]
		row := []string{
			strconv.FormatUint(uint64(client), 10),
			acct.Available.StringFixed(4),
			acct.Held.StringFixed(4),
			acct.Total().StringFixed(4),
			strconv.FormatBool(acct.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
