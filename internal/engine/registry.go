package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/congo-pay/txengine/internal/ledger"
)

// ErrDuplicateClient indicates a second insert for a client id. Each client's
// partition is processed by exactly one worker, so this never fires in a
// correct run.
var ErrDuplicateClient = errors.New("client already registered")

// Registry collects terminal accounts from concurrently-running workers. It
// is the only state shared across workers; everything else is partition
// local. Readers must not touch it until every worker has been joined.
type Registry struct {
	mu       sync.Mutex
	accounts map[uint32]*ledger.Account
}

// NewRegistry creates an empty registry scoped to one run.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[uint32]*ledger.Account)}
}

// Put inserts a terminal account, exactly once per client. The lock is held
// for a single map insertion.
func (r *Registry) Put(acct *ledger.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[acct.Client]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateClient, acct.Client)
	}
	r.accounts[acct.Client] = acct
	return nil
}

// Get returns the terminal account for a client, if present.
func (r *Registry) Get(client uint32) (*ledger.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[client]
	return acct, ok
}

// Len reports the number of registered clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.accounts)
}

// Snapshot returns a copy of the client map. The accounts themselves are
// terminal by the time any reader calls this.
func (r *Registry) Snapshot() map[uint32]*ledger.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[uint32]*ledger.Account, len(r.accounts))
	for client, acct := range r.accounts {
		out[client] = acct
	}
	return out
}
