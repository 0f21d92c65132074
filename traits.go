package facet

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/oliverbestmann/facet/internal/refl"
)

// Traits is the per entity bookkeeping of the trait slots. Embed it
// (once) into every entity struct. Init populates it with one adapter per
// declared facet; the table is what TryAs and MustAs use to look up
// adapters for entities held behind any.
//
// A Traits value must not be copied once the entity is initialized.
type Traits struct {
	_        noCopy
	order    []reflect.Type
	adapters map[reflect.Type]any
}

func (t *Traits) traitsStorage() *Traits { return t }

func (t *Traits) adapter(facetType reflect.Type) (any, bool) {
	impl, ok := t.adapters[facetType]
	return impl, ok
}

// hasTraits is implemented by any entity pointer whose struct embeds Traits.
type hasTraits interface {
	traitsStorage() *Traits
}

// Init builds the adapters of an entity. It discovers the Trait fields
// declared on E, resolves exactly one adapter per declared facet and binds
// it to the entity. Call it once, right after constructing the entity
// value:
//
//	op := facet.Init(&AddOp{})
//
// Adapters close over the entity pointer, so the entity must be fully
// formed before Init runs and must not be copied afterwards.
//
// Init panics if E does not embed Traits, if the entity was already
// initialized, if a Trait field is unexported, if a facet is declared
// twice, or if a declared facet can not be resolved for E (neither
// implemented by *E nor covered by a registered binding).
func Init[E any](entity *E) *E {
	entityType := reflect.TypeFor[E]()

	storage, ok := any(entity).(hasTraits)
	if !ok {
		panic(fmt.Sprintf("facet: %s does not embed facet.Traits", entityType))
	}

	table := storage.traitsStorage()
	if table.adapters != nil {
		panic(fmt.Sprintf("facet: %s is already initialized", entityType))
	}

	fields := refl.TraitFields(entityType)

	table.adapters = make(map[reflect.Type]any, len(fields))

	entityValue := reflect.ValueOf(entity).Elem()

	for _, field := range fields {
		if !field.Exported {
			panic(fmt.Sprintf("facet: trait field %s of %s must be exported", field.Name, entityType))
		}

		if _, exists := table.adapters[field.Facet]; exists {
			panic(fmt.Sprintf("facet: %s declares facet %s more than once", entityType, field.Facet))
		}

		impl := resolveAdapter(field.Facet, entity)

		slot := entityValue.FieldByIndex(field.Index).Addr().Interface().(traitSlot)
		slot.bind(entity, impl)

		table.order = append(table.order, field.Facet)
		table.adapters[field.Facet] = impl
	}

	hooks.entityInitialized(entityType, table.order)

	return entity
}

// FacetsOf returns the facets an initialized entity declares, in
// declaration order. It panics if the value does not embed facet.Traits.
func FacetsOf(entity any) iter.Seq[reflect.Type] {
	storage, ok := entity.(hasTraits)
	if !ok {
		panic(fmt.Sprintf("facet: %T does not embed facet.Traits", entity))
	}

	order := storage.traitsStorage().order

	return func(yield func(reflect.Type) bool) {
		for _, facetType := range order {
			if !yield(facetType) {
				return
			}
		}
	}
}
