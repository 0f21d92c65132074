package facet

import "reflect"

// Box is a type erased container that, unlike View, owns the value it
// erases. It is the right shape for heterogeneous collections:
//
//	scene := []facet.Box[Drawable]{
//	    facet.Erase[Drawable](Circle{Radius: 2}),
//	    facet.Erase[Drawable](Triangle{}),
//	}
//
// The boxed value does not need any Trait declaration, the adapter is
// resolved from the registry (or plain conformance) when the box is
// created.
type Box[I any] struct {
	value any
	impl  I
}

// Erase copies value to the heap and wraps it into a Box viewed through
// I. Erase panics when no adapter from E to I can be resolved, which is
// the same resolution Init performs for a declared facet.
func Erase[I any, E any](value E) Box[I] {
	ptr := &value

	return Box[I]{
		value: ptr,
		impl:  resolveAdapter(reflect.TypeFor[I](), ptr).(I),
	}
}

// Facet returns the adapter implementing I for the boxed value.
func (b Box[I]) Facet() I {
	return b.impl
}

// Value returns a pointer to the boxed value.
func (b Box[I]) Value() any {
	return b.value
}
