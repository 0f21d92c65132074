package facet

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDuplicateBinding(t *testing.T) {
	// the Circle binding is registered at package level already
	require.Panics(t, func() {
		BindFunc(func(c *Circle) Drawable {
			return circleDrawable{circle: c}
		})
	})
}

func TestBindingToNonInterface(t *testing.T) {
	require.Panics(t, func() {
		BindFunc(func(c *Circle) int { return 0 })
	})
}

type noSideEffects struct{}

func (noSideEffects) HasSideEffect() bool { return false }

func TestHooks(t *testing.T) {
	defer SetHooks(Hooks{})

	var registered, initialized, rejected []reflect.Type

	SetHooks(Hooks{
		BindingRegistered: func(facetType, entityType reflect.Type) {
			registered = append(registered, facetType)
		},
		EntityInitialized: func(entityType reflect.Type, facets []reflect.Type) {
			initialized = append(initialized, entityType)
		},
		CastRejected: func(facetType reflect.Type, entity any) {
			rejected = append(rejected, facetType)
		},
	})

	// register a binding that only exists for the duration of this test
	key := bindingKey{
		Facet:  reflect.TypeFor[SideEffects](),
		Entity: reflect.TypeFor[Triangle](),
	}
	defer delete(bindings, key)

	BindFunc(func(*Triangle) SideEffects { return noSideEffects{} })

	op := Init(&AddOp{})
	_, _ = TryAs[Drawable](op)

	require.Equal(t, []reflect.Type{reflect.TypeFor[SideEffects]()}, registered)
	require.Equal(t, []reflect.Type{reflect.TypeFor[AddOp]()}, initialized)
	require.Equal(t, []reflect.Type{reflect.TypeFor[Drawable]()}, rejected)
}
