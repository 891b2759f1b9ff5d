package session

import (
	"context"
	"sync"
	"testing"

	"github.com/monjil99/intakeagent/language"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(func(ctx context.Context) *Session {
		return New(language.NewLocal())
	})
}

func TestStoreRoutesByKey(t *testing.T) {
	store := newTestStore()
	alice := WithSessionKey(context.Background(), "alice")
	bob := WithSessionKey(context.Background(), "bob")

	if store.Load(alice) == store.Load(bob) {
		t.Error("distinct keys must get distinct sessions")
	}
	if store.Load(alice) != store.Load(alice) {
		t.Error("the same key must get the same session back")
	}
}

func TestStoreDefaultKey(t *testing.T) {
	store := newTestStore()
	a := store.Load(context.Background())
	b := store.Load(WithSessionKey(context.Background(), ""))
	if a != b {
		t.Error("missing and empty keys both route to the default session")
	}
}

func TestStoreRemove(t *testing.T) {
	store := newTestStore()
	ctx := WithSessionKey(context.Background(), "alice")
	first := store.Load(ctx)
	store.Remove(ctx)
	if store.Load(ctx) == first {
		t.Error("Remove must drop the stored session")
	}
}

func TestStoreConcurrentLoad(t *testing.T) {
	store := newTestStore()
	ctx := WithSessionKey(context.Background(), "shared")

	var wg sync.WaitGroup
	sessions := make([]*Session, 16)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = store.Load(ctx)
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(sessions); i++ {
		if sessions[i] != sessions[0] {
			t.Fatal("concurrent loads of one key must converge on one session")
		}
	}
}

func TestSessionKeyFromContext(t *testing.T) {
	if _, ok := SessionKeyFromContext(context.Background()); ok {
		t.Error("bare context carries no key")
	}
	key, ok := SessionKeyFromContext(WithSessionKey(context.Background(), "alice"))
	if !ok || key != "alice" {
		t.Errorf("expected alice, got %q (%v)", key, ok)
	}
}
