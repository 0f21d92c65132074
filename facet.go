// Package facet adapts concrete types to interfaces they do not implement
// themselves and attaches multiple independent interface views ("facets")
// to a single entity.
//
// An entity declares its facets as Trait fields and initializes them once:
//
//	type SideEffects interface {
//	    HasSideEffect() bool
//	}
//
//	type AddOp struct {
//	    facet.Traits
//	    SideFx facet.Trait[SideEffects]
//	}
//
//	func (*AddOp) HasSideEffect() bool { return false }
//
//	op := facet.Init(&AddOp{})
//	op.SideFx.Facet().HasSideEffect()
//
// Selecting the Trait field is the static interface cast: an entity that
// does not declare a facet has no field for it, and the cast does not
// compile. Callers that only hold an entity behind any use TryAs or
// MustAs instead, which check the declaration at runtime.
//
// Types whose methods are spelled differently than the facet's operations,
// external types in particular, are adapted with an explicit binding, see
// BindFunc.
package facet

import (
	"fmt"
	"reflect"
)

// Trait is one adapter slot of an entity. Add one exported Trait field per
// facet the entity supports. The zero value is unbound, Init binds the
// slot to the entity.
//
// The slot holds the adapter for exactly one interface. All views created
// from it share that single adapter instance.
type Trait[I any] struct {
	entity any
	impl   I
	bound  bool
}

// FacetType returns the reflect.Type of the declared interface.
func (t Trait[I]) FacetType() reflect.Type {
	return reflect.TypeFor[I]()
}

// Facet returns the adapter implementing I, bound to the entity this slot
// belongs to. It panics if the entity was not passed through Init.
func (t *Trait[I]) Facet() I {
	if !t.bound {
		panic(fmt.Sprintf("facet: trait %s is not bound, call facet.Init on the entity first", reflect.TypeFor[I]()))
	}

	return t.impl
}

// View wraps the slot's adapter and entity into a type erased View.
// It panics if the entity was not passed through Init.
func (t *Trait[I]) View() View[I] {
	if !t.bound {
		panic(fmt.Sprintf("facet: trait %s is not bound, call facet.Init on the entity first", reflect.TypeFor[I]()))
	}

	return View[I]{
		entity: t.entity,
		impl:   t.impl,
		valid:  true,
	}
}

// Bound reports whether the slot was initialized.
func (t *Trait[I]) Bound() bool {
	return t.bound
}

func (t *Trait[I]) bind(entity, impl any) {
	t.entity = entity
	t.impl = impl.(I)
	t.bound = true
}

// traitSlot is implemented by *Trait[I] for any I. Init uses it to bind
// the slots it discovers on an entity.
type traitSlot interface {
	FacetType() reflect.Type
	bind(entity, impl any)
}
