package facet

import (
	"fmt"
	"reflect"

	"github.com/oliverbestmann/facet/internal/assert"
)

type bindingKey struct {
	Facet  reflect.Type
	Entity reflect.Type
}

type binding struct {
	// Make builds the adapter for one entity instance. The entity is
	// passed as a pointer to the concrete type the binding was
	// registered for.
	Make func(entity any) any
}

var bindings = map[bindingKey]binding{}

// BindFunc registers an explicit adapter from the concrete type E to the
// facet I. Use it when E does not implement I itself, typically because
// an external type spells its methods differently:
//
//	type circleDrawable struct{ circle *Circle }
//
//	func (d circleDrawable) Draw() string { return d.circle.Render() }
//
//	var _ = facet.BindFunc(func(c *Circle) Drawable {
//	    return circleDrawable{circle: c}
//	})
//
// Types that implement I directly need no binding, the entity pointer
// itself is used as the adapter in that case. An explicit binding takes
// precedence over that default. Registering two bindings for the same
// facet and type panics.
//
// Bindings are process global and meant to be registered from package
// level var statements, mirroring how the adapters would be spelled as
// methods if the type were our own.
func BindFunc[I any, E any](adapt func(*E) I) struct{} {
	assert.IsInterfaceType(reflect.TypeFor[I]())

	key := bindingKey{
		Facet:  reflect.TypeFor[I](),
		Entity: reflect.TypeFor[E](),
	}

	if _, exists := bindings[key]; exists {
		panic(fmt.Sprintf("facet: adapter from %s to %s is already registered", key.Entity, key.Facet))
	}

	bindings[key] = binding{
		Make: func(entity any) any {
			return adapt(entity.(*E))
		},
	}

	hooks.bindingRegistered(key.Facet, key.Entity)

	return struct{}{}
}

// resolveAdapter builds the adapter that lets entity be viewed through
// facetType. Explicit bindings win over plain interface conformance, the
// same way an explicit template specialization wins over the primary
// template.
func resolveAdapter(facetType reflect.Type, entity any) any {
	assert.IsInterfaceType(facetType)

	entityType := reflect.TypeOf(entity)
	assert.IsPointerType(entityType)

	key := bindingKey{Facet: facetType, Entity: entityType.Elem()}

	if b, ok := bindings[key]; ok {
		return b.Make(entity)
	}

	if entityType.Implements(facetType) {
		return entity
	}

	panic(fmt.Sprintf(
		"facet: %s does not implement %s and no adapter is registered",
		entityType.Elem(), facetType,
	))
}
