package ecs

import "siegefall/internal/core/ecs/storage"

// ==============================================
// World — entity set + component stores + ID allocator
// ==============================================

// World is the collection of component stores, the entity set, and the
// entity ID allocator that together constitute one simulation state S(n).
// Every field here participates in World equality/cloning; nothing else
// (caches, accumulators, metrics) may live on World, or Clone/RestoreFrom
// would silently diverge from what was actually simulated.
type World struct {
	registry     *Registry
	entities     *entitySet
	stores       map[ComponentType]*storage.Store[EntityID, Component]
	nextEntityID EntityID
}

// NewWorld creates an empty World whose component stores are seeded from
// registry (see components.Register), one store per registered type, created
// in registration order.
func NewWorld(registry *Registry) *World {
	w := &World{
		registry:     registry,
		entities:     newEntitySet(),
		stores:       make(map[ComponentType]*storage.Store[EntityID, Component]),
		nextEntityID: 1,
	}
	for _, t := range registry.Types() {
		w.stores[t] = storage.New[EntityID, Component]()
	}
	return w
}

// CreateEntity allocates and returns a new, strictly increasing EntityID.
func (w *World) CreateEntity() EntityID {
	e := w.nextEntityID
	w.nextEntityID++
	w.entities.add(e)
	return e
}

// DestroyEntity removes e from every component store and from the entity
// set. Destroying an unknown entity is a silent no-op (spec §7
// InvalidEntity: skip, do not resurrect).
func (w *World) DestroyEntity(e EntityID) {
	if !w.entities.contains(e) {
		return
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	w.entities.remove(e)
}

// IsValid reports whether e is a live entity in this World.
func (w *World) IsValid(e EntityID) bool {
	return w.entities.contains(e)
}

// Entities returns every live entity in creation order.
func (w *World) Entities() []EntityID {
	return w.entities.slice()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.len()
}

// NextEntityID returns the ID that CreateEntity would hand out next. Used
// only for diagnostics/tests asserting ID monotonicity (spec §8).
func (w *World) NextEntityID() EntityID {
	return w.nextEntityID
}

// Store returns the ordered store for componentType, or nil if that type
// was never registered.
func (w *World) Store(componentType ComponentType) *storage.Store[EntityID, Component] {
	return w.stores[componentType]
}

// AddComponent attaches c to e. e must already exist in the World (spec §3
// invariant 1); violating that is a programmer error surfaced as
// InvalidEntity rather than silently creating orphaned component data.
func (w *World) AddComponent(e EntityID, c Component) *CoreError {
	if !w.entities.contains(e) {
		return NewInvalidEntityError(e)
	}
	store := w.stores[c.Type()]
	if store == nil {
		store = storage.New[EntityID, Component]()
		w.stores[c.Type()] = store
	}
	store.Set(e, c)
	return nil
}

// RemoveComponent detaches the component of componentType from e, if any.
func (w *World) RemoveComponent(e EntityID, componentType ComponentType) {
	if store := w.stores[componentType]; store != nil {
		store.Remove(e)
	}
}

// GetComponent returns e's component of componentType, or (nil, false).
func (w *World) GetComponent(e EntityID, componentType ComponentType) (Component, bool) {
	store := w.stores[componentType]
	if store == nil {
		return nil, false
	}
	return store.Get(e)
}

// HasComponent reports whether e carries a component of componentType.
func (w *World) HasComponent(e EntityID, componentType ComponentType) bool {
	store := w.stores[componentType]
	return store != nil && store.Has(e)
}

// Singleton returns the single instance of a singleton component kind
// (GridMap, FlowField), if present. Singletons are stored under a fixed
// pseudo-entity so they still flow through the ordinary store machinery.
const SingletonEntityID EntityID = 0xFFFFFFFF

// SetSingleton installs c as the singleton of its kind. The pseudo-entity it
// is stored under is never part of the live entity set, so it is invisible
// to ordinary entity enumeration and destruction.
func (w *World) SetSingleton(c Component) {
	store := w.stores[c.Type()]
	if store == nil {
		store = storage.New[EntityID, Component]()
		w.stores[c.Type()] = store
	}
	store.Set(SingletonEntityID, c)
}

// GetSingleton returns the singleton component of componentType, if one has
// been installed.
func (w *World) GetSingleton(componentType ComponentType) (Component, bool) {
	store := w.stores[componentType]
	if store == nil {
		return nil, false
	}
	return store.Get(SingletonEntityID)
}

// Clone deep-copies the World: every store, the entity set, and the next-ID
// counter. Restoring the clone must reproduce identical simulation
// behaviour from this point forward (spec §8 snapshot round-trip).
func (w *World) Clone() *World {
	out := &World{
		registry:     w.registry,
		entities:     w.entities.clone(),
		stores:       make(map[ComponentType]*storage.Store[EntityID, Component], len(w.stores)),
		nextEntityID: w.nextEntityID,
	}
	for t, s := range w.stores {
		out.stores[t] = s.Clone()
	}
	return out
}

// RestoreFrom replaces w's entity set, next-ID counter, and every component
// store by value from other. w is left indistinguishable from a fresh
// World.Clone() of other.
func (w *World) RestoreFrom(other *World) {
	w.entities = other.entities.clone()
	w.nextEntityID = other.nextEntityID
	w.stores = make(map[ComponentType]*storage.Store[EntityID, Component], len(other.stores))
	for t, s := range other.stores {
		w.stores[t] = s.Clone()
	}
}

// Equal reports whether w and other hold value-equal state: same next entity
// ID, same live entities in the same order, and value-equal components in
// every store (spec §8 universal invariants: determinism, state-machine
// purity, snapshot round-trip all phrase their guarantee in terms of
// "value-equal" worlds).
func (w *World) Equal(other *World) bool {
	if w.nextEntityID != other.nextEntityID {
		return false
	}
	if !w.entities.equal(other.entities) {
		return false
	}
	if len(w.stores) != len(other.stores) {
		return false
	}
	for t, s := range w.stores {
		os, ok := other.stores[t]
		if !ok || !s.Equal(os) {
			return false
		}
	}
	return true
}
