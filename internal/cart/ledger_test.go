package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fashion_store_back_end/internal/models"
)

// fakeRemote simule le store Redis : un map en mémoire, avec une panne
// activable pour exercer le mode dégradé.
type fakeRemote struct {
	carts map[string]models.Cart
	down  bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{carts: make(map[string]models.Cart)}
}

func (f *fakeRemote) Get(ctx context.Context, userID string) (models.Cart, error) {
	if f.down {
		return nil, errors.New("connexion refusée")
	}
	if c, ok := f.carts[userID]; ok {
		return c.Clone(), nil
	}
	return models.Cart{}, nil
}

func (f *fakeRemote) Set(ctx context.Context, userID string, cart models.Cart) error {
	if f.down {
		return errors.New("connexion refusée")
	}
	f.carts[userID] = cart.Clone()
	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, userID string) error {
	if f.down {
		return errors.New("connexion refusée")
	}
	delete(f.carts, userID)
	return nil
}

func TestLedger_AddAccumulates(t *testing.T) {
	remote := newFakeRemote()
	l := NewLedger(remote)
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))
	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 2))
	assert.NoError(t, l.Add(ctx, "user1", "A", "L", 1))
	assert.NoError(t, l.Add(ctx, "user1", "B", "S", 5))

	snap := l.Snapshot(ctx, "user1")
	assert.Equal(t, 3, snap["A"]["M"])
	assert.Equal(t, 1, snap["A"]["L"])
	assert.Equal(t, 5, snap["B"]["S"])
	assert.Equal(t, 9, Count(snap))
	assert.False(t, l.Degraded("user1"))
}

func TestLedger_SetQuantityZeroPurgesEntry(t *testing.T) {
	l := NewLedger(newFakeRemote())
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 2))
	assert.NoError(t, l.SetQuantity(ctx, "user1", "A", "M", 0))

	snap := l.Snapshot(ctx, "user1")
	_, exists := snap["A"]
	assert.False(t, exists, "l'entrée à quantité nulle doit disparaître")
	assert.Equal(t, 0, Count(snap))
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	l := NewLedger(newFakeRemote())
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))

	snap := l.Snapshot(ctx, "user1")
	snap["A"]["M"] = 99

	again := l.Snapshot(ctx, "user1")
	assert.Equal(t, 1, again["A"]["M"])
}

func TestLedger_RemoteFailureNeverFailsMutation(t *testing.T) {
	remote := newFakeRemote()
	l := NewLedger(remote)
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))

	remote.down = true
	// La mutation réussit quand même : le shadow local fait foi
	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))
	assert.True(t, l.Degraded("user1"))

	snap := l.Snapshot(ctx, "user1")
	assert.Equal(t, 2, snap["A"]["M"])
}

func TestLedger_RecoveryLowersDegradedFlag(t *testing.T) {
	remote := newFakeRemote()
	l := NewLedger(remote)
	ctx := context.Background()

	remote.down = true
	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))
	assert.True(t, l.Degraded("user1"))

	remote.down = false
	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))
	assert.False(t, l.Degraded("user1"))
	// Le distant a reçu l'état réconcilié complet
	assert.Equal(t, 2, remote.carts["user1"]["A"]["M"])
}

func TestLedger_Clear(t *testing.T) {
	remote := newFakeRemote()
	l := NewLedger(remote)
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 3))
	assert.NoError(t, l.Clear(ctx, "user1"))

	assert.Empty(t, l.Snapshot(ctx, "user1"))
	_, exists := remote.carts["user1"]
	assert.False(t, exists)
}

func TestLedger_ClearWithRemoteDown(t *testing.T) {
	remote := newFakeRemote()
	l := NewLedger(remote)
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 3))

	remote.down = true
	assert.NoError(t, l.Clear(ctx, "user1"))
	assert.True(t, l.Degraded("user1"))

	// Le shadow est vidé même si le distant n'a pas pu l'être
	assert.Empty(t, l.Snapshot(ctx, "user1"))
}

func TestLedger_UsersAreIsolated(t *testing.T) {
	l := NewLedger(newFakeRemote())
	ctx := context.Background()

	assert.NoError(t, l.Add(ctx, "user1", "A", "M", 1))
	assert.NoError(t, l.Add(ctx, "user2", "B", "L", 2))

	assert.Empty(t, l.Snapshot(ctx, "user1")["B"])
	assert.Empty(t, l.Snapshot(ctx, "user2")["A"])
}

func TestAmount_UsesCurrentPricesAndSkipsUnknown(t *testing.T) {
	snapshot := models.Cart{
		"A":       {"M": 2},
		"B":       {"S": 1},
		"disparu": {"M": 4},
	}
	catalog := []models.Product{
		{ID: "A", Price: 19.99},
		{ID: "B", Price: 45.50},
	}

	// 19.99×2 + 45.50 = 85.48 ; le produit disparu est ignoré
	assert.InDelta(t, 85.48, Amount(snapshot, catalog), 1e-9)
	assert.Zero(t, Amount(models.Cart{}, catalog))
}
