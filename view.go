package facet

import (
	"fmt"
	"reflect"
)

// View is a type erased, non owning handle onto one entity through the
// facet I. Views are created from a bound Trait slot or by TryAs and
// MustAs. They are cheap to copy and must not outlive the entity they
// reference.
type View[I any] struct {
	entity any
	impl   I
	valid  bool
}

// Facet returns the adapter implementing I. Calls through the returned
// value forward to the entity's own methods, results are passed through
// unchanged. Facet panics when called on a zero View.
func (v View[I]) Facet() I {
	if !v.valid {
		panic(fmt.Sprintf("facet: use of unbound view of %s", reflect.TypeFor[I]()))
	}

	return v.impl
}

// Entity returns the entity this view was cast from.
func (v View[I]) Entity() any {
	return v.entity
}

// Valid reports whether the view is bound to an adapter.
func (v View[I]) Valid() bool {
	return v.valid
}

// TryAs casts an entity held behind any to the facet I. The entity must
// embed facet.Traits and have been passed through Init.
//
// If the entity does not declare I, TryAs reports an error matching
// ErrUnsupported without touching any adapter. Casting is a pure view
// construction: casting the same entity twice returns two views backed by
// the same adapter instance.
//
// Entities of a known concrete type do not need TryAs, selecting the
// entity's Trait field performs the same cast with the declaration
// checked by the compiler.
func TryAs[I any](entity any) (View[I], error) {
	facetType := reflect.TypeFor[I]()

	storage, ok := entity.(hasTraits)
	if !ok {
		hooks.castRejected(facetType, entity)
		return View[I]{}, fmt.Errorf("facet: %T does not embed facet.Traits", entity)
	}

	table := storage.traitsStorage()
	if table.adapters == nil {
		hooks.castRejected(facetType, entity)
		return View[I]{}, fmt.Errorf("facet: %T is not initialized, call facet.Init first", entity)
	}

	impl, ok := table.adapter(facetType)
	if !ok {
		hooks.castRejected(facetType, entity)
		return View[I]{}, &UnsupportedFacetError{
			Entity: reflect.TypeOf(entity).Elem(),
			Facet:  facetType,
		}
	}

	return View[I]{
		entity: entity,
		impl:   impl.(I),
		valid:  true,
	}, nil
}

// MustAs is TryAs for callers that consider an unsupported cast a
// programmer error. It panics where TryAs returns an error.
func MustAs[I any](entity any) View[I] {
	view, err := TryAs[I](entity)
	if err != nil {
		panic(err)
	}

	return view
}
