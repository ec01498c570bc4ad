package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/congo-pay/txengine/internal/ledger"
)

func TestRegistryPutOnce(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Put(ledger.NewAccount(1)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := reg.Put(ledger.NewAccount(1)); !errors.Is(err, ErrDuplicateClient) {
		t.Fatalf("second put: expected ErrDuplicateClient, got %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("registry size = %d, want 1", reg.Len())
	}
}

func TestRegistryGetMissing(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Get(42); ok {
		t.Fatalf("expected miss for unregistered client")
	}
}

func TestRegistrySnapshotIsACopy(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Put(ledger.NewAccount(1)); err != nil {
		t.Fatalf("put: %v", err)
	}

	snap := reg.Snapshot()
	delete(snap, 1)

	if reg.Len() != 1 {
		t.Fatalf("mutating the snapshot must not touch the registry")
	}
}

func TestRegistryConcurrentInserts(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for client := uint32(0); client < 200; client++ {
		wg.Add(1)
		go func(client uint32) {
			defer wg.Done()
			if err := reg.Put(ledger.NewAccount(client)); err != nil {
				t.Errorf("put client %d: %v", client, err)
			}
		}(client)
	}
	wg.Wait()

	if reg.Len() != 200 {
		t.Fatalf("registry size = %d, want 200", reg.Len())
	}
}
