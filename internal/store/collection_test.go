package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbmartins/secretaria/internal/model"
)

// memBackend is the in-memory Backend used across the store tests.
type memBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{docs: map[string][]byte{}}
}

func (b *memBackend) Load(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.docs[key], nil
}

func (b *memBackend) Save(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.docs[key] = data
	return nil
}

func (b *memBackend) doc(key string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.docs[key]
}

// gatedBackend holds every Save in flight until the test releases it,
// so mutations can land while an older snapshot is still being written.
type gatedBackend struct {
	*memBackend
	release chan struct{}
}

func newGatedBackend() *gatedBackend {
	return &gatedBackend{memBackend: newMemBackend(), release: make(chan struct{})}
}

func (b *gatedBackend) Save(key string, data []byte) error {
	<-b.release
	return b.memBackend.Save(key, data)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// seqIDs yields "id-1", "id-2", ... so tests can predict identities.
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestCollectionAddStampsIdentity(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	col := NewCollection[*model.RoutineItem]("routine", newMemBackend(),
		WithClock(fixedClock(now)), WithIDSource(seqIDs()))

	it := col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})

	assert.Equal(t, "id-1", it.ID)
	assert.Equal(t, now, it.CreatedAt)
	assert.Equal(t, now, it.UpdatedAt)
}

func TestCollectionAddOverwritesCallerIdentity(t *testing.T) {
	col := NewCollection[*model.RoutineItem]("routine", newMemBackend(), WithIDSource(seqIDs()))

	it := col.Add(&model.RoutineItem{Meta: model.Meta{ID: "forged"}, Time: "08:00", Activity: "Café"})

	assert.Equal(t, "id-1", it.ID)
}

func TestCollectionUpdate(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := created
	col := NewCollection[*model.RoutineItem]("routine", newMemBackend(),
		WithClock(func() time.Time { return clock }), WithIDSource(seqIDs()))
	it := col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})

	t.Run("patch merges only set fields", func(t *testing.T) {
		clock = created.Add(time.Hour)
		activity := "Café da manhã"
		ok := col.Update(it.ID, model.RoutineItemPatch{Activity: &activity}.Apply)

		require.True(t, ok)
		got, found := col.Get(it.ID)
		require.True(t, found)
		assert.Equal(t, "Café da manhã", got.Activity)
		assert.Equal(t, "08:00", got.Time)
		assert.Equal(t, created, got.CreatedAt)
		assert.Equal(t, created.Add(time.Hour), got.UpdatedAt)
	})

	t.Run("empty patch keeps content but refreshes UpdatedAt", func(t *testing.T) {
		clock = created.Add(2 * time.Hour)
		ok := col.Update(it.ID, model.RoutineItemPatch{}.Apply)

		require.True(t, ok)
		got, _ := col.Get(it.ID)
		assert.Equal(t, "Café da manhã", got.Activity)
		assert.Equal(t, created.Add(2*time.Hour), got.UpdatedAt)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		assert.False(t, col.Update("missing", model.RoutineItemPatch{}.Apply))
		assert.Equal(t, 1, col.Len())
	})
}

func TestCollectionDelete(t *testing.T) {
	col := NewCollection[*model.RoutineItem]("routine", newMemBackend(), WithIDSource(seqIDs()))
	it := col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})

	assert.True(t, col.Delete(it.ID))
	assert.Equal(t, 0, col.Len())

	// deleting again, and updating a deleted record, are both no-ops
	assert.False(t, col.Delete(it.ID))
	assert.False(t, col.Update(it.ID, nil))
}

func TestCollectionKeepsInsertionOrder(t *testing.T) {
	col := NewCollection[*model.RoutineItem]("routine", newMemBackend(), WithIDSource(seqIDs()))
	for _, a := range []string{"primeiro", "segundo", "terceiro"} {
		col.Add(&model.RoutineItem{Time: "10:00", Activity: a})
	}

	items := col.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "primeiro", items[0].Activity)
	assert.Equal(t, "segundo", items[1].Activity)
	assert.Equal(t, "terceiro", items[2].Activity)
}

func TestCollectionReplaceAllRoundTrip(t *testing.T) {
	backend := newMemBackend()
	col := NewCollection[*model.RoutineItem]("routine", backend, WithIDSource(seqIDs()))
	col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})
	col.Add(&model.RoutineItem{Time: "09:00", Activity: "Trabalho"})
	col.Wait()

	// a fresh store over the same backend sees the same records
	reloaded := NewCollection[*model.RoutineItem]("routine", backend)
	require.Equal(t, 2, reloaded.Len())

	exported := reloaded.Items()
	fresh := NewCollection[*model.RoutineItem]("routine", newMemBackend())
	fresh.ReplaceAll(exported)

	items := fresh.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "id-1", items[0].ID)
	assert.Equal(t, "Café", items[0].Activity)
	assert.Equal(t, "id-2", items[1].ID)
}

func TestCollectionFlushReachesBackend(t *testing.T) {
	backend := newMemBackend()
	col := NewCollection[*model.RoutineItem]("routine", backend, WithIDSource(seqIDs()))
	col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})
	col.Wait()

	var persisted []*model.RoutineItem
	require.NoError(t, json.Unmarshal(backend.doc("routine"), &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "id-1", persisted[0].ID)
	assert.Equal(t, "Café", persisted[0].Activity)
}

func TestCollectionDurableStateMatchesLastMutation(t *testing.T) {
	backend := newGatedBackend()
	col := NewCollection[*model.RoutineItem]("routine", backend, WithIDSource(seqIDs()))

	// the first snapshot's write is still in flight when further
	// mutations land; once everything drains, the document must hold
	// the final state, never an older snapshot written late
	col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})
	col.Add(&model.RoutineItem{Time: "09:00", Activity: "Trabalho"})
	it := col.Add(&model.RoutineItem{Time: "10:00", Activity: "Inglês"})
	col.Delete(it.ID)

	close(backend.release)
	col.Wait()

	var persisted []*model.RoutineItem
	require.NoError(t, json.Unmarshal(backend.doc("routine"), &persisted))
	require.Len(t, persisted, 2)
	assert.Equal(t, "Café", persisted[0].Activity)
	assert.Equal(t, "Trabalho", persisted[1].Activity)
}

func TestCollectionCorruptDocumentStartsEmpty(t *testing.T) {
	backend := newMemBackend()
	require.NoError(t, backend.Save("routine", []byte("{not json")))

	col := NewCollection[*model.RoutineItem]("routine", backend)
	assert.Equal(t, 0, col.Len())

	// the store stays usable and the next flush replaces the bad document
	col.Add(&model.RoutineItem{Time: "08:00", Activity: "Café"})
	col.Wait()
	var persisted []*model.RoutineItem
	require.NoError(t, json.Unmarshal(backend.doc("routine"), &persisted))
	assert.Len(t, persisted, 1)
}
