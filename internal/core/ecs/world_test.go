package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intComponent struct {
	Type_ ComponentType
	V     int
}

func (c *intComponent) Type() ComponentType { return c.Type_ }
func (c *intComponent) Clone() Component {
	cp := *c
	return &cp
}

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Register("A", func() Component { return &intComponent{Type_: "A"} })
	r.Register("B", func() Component { return &intComponent{Type_: "B"} })
	return r
}

func TestEntityIDMonotonic(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	assert.Less(t, uint32(e1), uint32(e2))
	assert.Less(t, uint32(e2), uint32(e3))
	assert.Equal(t, EntityID(4), w.NextEntityID())
}

func TestDestroyEntityRemovesFromAllStores(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e := w.CreateEntity()
	require.Nil(t, w.AddComponent(e, &intComponent{Type_: "A", V: 1}))
	require.Nil(t, w.AddComponent(e, &intComponent{Type_: "B", V: 2}))

	w.DestroyEntity(e)

	assert.False(t, w.IsValid(e))
	assert.False(t, w.HasComponent(e, "A"))
	assert.False(t, w.HasComponent(e, "B"))
}

func TestSetPreservesOrderOnUpdate(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	require.Nil(t, w.AddComponent(e1, &intComponent{Type_: "A", V: 1}))
	require.Nil(t, w.AddComponent(e2, &intComponent{Type_: "A", V: 2}))
	require.Nil(t, w.AddComponent(e3, &intComponent{Type_: "A", V: 3}))

	// Update e2 in place; order must be unchanged.
	require.Nil(t, w.AddComponent(e2, &intComponent{Type_: "A", V: 99}))

	got := w.Store("A").Entities()
	assert.Equal(t, []EntityID{e1, e2, e3}, got)
}

func TestRemovePreservesRemainingOrder(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	for _, e := range []EntityID{e1, e2, e3} {
		require.Nil(t, w.AddComponent(e, &intComponent{Type_: "A"}))
	}

	w.RemoveComponent(e2, "A")

	got := w.Store("A").Entities()
	assert.Equal(t, []EntityID{e1, e3}, got)
}

func TestCloneAndRestoreRoundTrip(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e := w.CreateEntity()
	require.Nil(t, w.AddComponent(e, &intComponent{Type_: "A", V: 42}))

	snap := w.Clone()

	// Mutate the original after the snapshot; the snapshot must be
	// unaffected.
	require.Nil(t, w.AddComponent(e, &intComponent{Type_: "A", V: 7}))

	restored := NewWorld(newTestRegistry())
	restored.RestoreFrom(snap)

	c, ok := restored.GetComponent(e, "A")
	require.True(t, ok)
	assert.Equal(t, 42, c.(*intComponent).V)

	c2, _ := w.GetComponent(e, "A")
	assert.Equal(t, 7, c2.(*intComponent).V)
}

func TestQueryFirstNamedStoreOrder(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	require.Nil(t, w.AddComponent(e1, &intComponent{Type_: "A"}))
	require.Nil(t, w.AddComponent(e2, &intComponent{Type_: "A"}))
	require.Nil(t, w.AddComponent(e3, &intComponent{Type_: "A"}))
	require.Nil(t, w.AddComponent(e1, &intComponent{Type_: "B"}))
	require.Nil(t, w.AddComponent(e3, &intComponent{Type_: "B"}))

	got := w.Query().With("A").With("B").Entities()
	assert.Equal(t, []EntityID{e1, e3}, got)
}

func TestAddComponentToInvalidEntity(t *testing.T) {
	w := NewWorld(newTestRegistry())
	err := w.AddComponent(EntityID(999), &intComponent{Type_: "A"})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidEntity, err.Kind)
}

func TestCloneIsEqualToOriginal(t *testing.T) {
	w := NewWorld(newTestRegistry())
	e := w.CreateEntity()
	require.Nil(t, w.AddComponent(e, &intComponent{Type_: "A", V: 42}))

	snap := w.Clone()
	assert.True(t, w.Equal(snap))

	require.Nil(t, w.AddComponent(e, &intComponent{Type_: "A", V: 7}))
	assert.False(t, w.Equal(snap))
}

func TestEqualDetectsEntityOrderDifference(t *testing.T) {
	w1 := NewWorld(newTestRegistry())
	e1 := w1.CreateEntity()
	e2 := w1.CreateEntity()
	require.Nil(t, w1.AddComponent(e1, &intComponent{Type_: "A"}))
	require.Nil(t, w1.AddComponent(e2, &intComponent{Type_: "A"}))

	w2 := w1.Clone()
	w2.RemoveComponent(e1, "A")
	require.Nil(t, w2.AddComponent(e1, &intComponent{Type_: "A"}))

	assert.False(t, w1.Equal(w2))
}
