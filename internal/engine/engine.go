package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/congo-pay/txengine/internal/ledger"
	"github.com/congo-pay/txengine/internal/record"
)

// Runner advances every client partition concurrently and collects the
// terminal accounts into a Registry.
type Runner struct {
	// Limit bounds the number of partitions processed at once. Zero or
	// negative means one goroutine per client with no bound.
	Limit int

	// OnRecordError observes every business-rule failure that the run
	// discards. The failed record is a no-op on its account either way; the
	// hook only decides whether anyone hears about it. Nil means silent.
	OnRecordError func(client uint32, rec record.Transaction, err error)
}

// Stats summarizes one run for operators. The report output is unaffected.
type Stats struct {
	Records   int
	Clients   int
	Discarded int64
}

// Run partitions the records by client, processes each partition on its own
// goroutine in strict input order, and returns the registry once every
// worker has been joined. Business-rule failures discard only the offending
// record; a bad record never aborts its worker or any other partition.
func (r *Runner) Run(ctx context.Context, recs []record.Transaction) (*Registry, Stats, error) {
	parts := Partition(recs)
	reg := NewRegistry()
	stats := Stats{Records: len(recs), Clients: len(parts)}

	var discarded atomic.Int64

	g, _ := errgroup.WithContext(ctx)
	if r.Limit > 0 {
		g.SetLimit(r.Limit)
	}

	for client, part := range parts {
		client, part := client, part
		g.Go(func() error {
			acct := ledger.NewAccount(client)
			for _, rec := range part {
				if err := acct.Apply(rec); err != nil {
					discarded.Add(1)
					if r.OnRecordError != nil {
						r.OnRecordError(client, rec, err)
					}
				}
			}
			return reg.Put(acct)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats.Discarded = discarded.Load()
	return reg, stats, nil
}
