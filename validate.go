package facet

import (
	"fmt"
	"reflect"

	"github.com/oliverbestmann/facet/internal/refl"
)

// ValidateEntity should be called to verify that an entity type is
// declared correctly: E is a struct embedding facet.Traits, every Trait
// field is exported, every declared facet is an interface type and no
// facet is declared twice.
//
//	type AddOp struct {
//	    facet.Traits
//	    SideFx facet.Trait[SideEffects]
//	}
//
//	var _ = facet.ValidateEntity[AddOp]()
//
// This identifies declaration mistakes during package initialization
// instead of at the first Init. Whether each facet can actually be
// resolved for E is left to Init: bindings are registered from package
// level vars as well and may not exist yet while this runs.
func ValidateEntity[E any]() struct{} {
	entityType := reflect.TypeFor[E]()

	if entityType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("facet: entity %s must be a struct", entityType))
	}

	if _, ok := any(new(E)).(hasTraits); !ok {
		panic(fmt.Sprintf("facet: %s does not embed facet.Traits", entityType))
	}

	seen := map[reflect.Type]struct{}{}

	for _, field := range refl.TraitFields(entityType) {
		if !field.Exported {
			panic(fmt.Sprintf("facet: trait field %s of %s must be exported", field.Name, entityType))
		}

		if field.Facet.Kind() != reflect.Interface {
			panic(fmt.Sprintf("facet: field %s of %s declares non interface facet %s", field.Name, entityType, field.Facet))
		}

		if _, ok := seen[field.Facet]; ok {
			panic(fmt.Sprintf("facet: %s declares facet %s more than once", entityType, field.Facet))
		}

		seen[field.Facet] = struct{}{}
	}

	return struct{}{}
}
