package engine

import "github.com/congo-pay/txengine/internal/record"

// Partition groups records into one ordered sub-sequence per client. Each
// client's slice preserves the original input order, which the dispute
// lifecycle depends on; order across clients carries no meaning.
func Partition(recs []record.Transaction) map[uint32][]record.Transaction {
	parts := make(map[uint32][]record.Transaction)
	for _, rec := range recs {
		parts[rec.Client] = append(parts[rec.Client], rec)
	}
	return parts
}
