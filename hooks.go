package facet

import "reflect"

// Hooks receives notifications about registry and cast activity. All
// fields are optional. The core itself never produces output, hooks are
// the seam debug tooling such as the facetlog package attaches to.
type Hooks struct {
	// BindingRegistered fires when BindFunc registers an adapter.
	BindingRegistered func(facetType, entityType reflect.Type)

	// EntityInitialized fires after Init bound all trait slots of an
	// entity. The facets slice is in declaration order and must not be
	// modified.
	EntityInitialized func(entityType reflect.Type, facets []reflect.Type)

	// CastRejected fires when TryAs rejects a cast, including casts of
	// values that are no initialized entities at all.
	CastRejected func(facetType reflect.Type, entity any)
}

var hooks Hooks

// SetHooks installs the given hooks, replacing any previously installed
// ones. Not safe for concurrent use with other facet calls.
func SetHooks(h Hooks) {
	hooks = h
}

func (h *Hooks) bindingRegistered(facetType, entityType reflect.Type) {
	if h.BindingRegistered != nil {
		h.BindingRegistered(facetType, entityType)
	}
}

func (h *Hooks) entityInitialized(entityType reflect.Type, facets []reflect.Type) {
	if h.EntityInitialized != nil {
		h.EntityInitialized(entityType, facets)
	}
}

func (h *Hooks) castRejected(facetType reflect.Type, entity any) {
	if h.CastRejected != nil {
		h.CastRejected(facetType, entity)
	}
}
