package refl

import (
	"iter"
	"reflect"
)

// traitMarker matches facet.Trait[I] for any I. Declared structurally
// here so this package does not need to import the root package.
type traitMarker interface {
	FacetType() reflect.Type
}

var traitMarkerType = reflect.TypeFor[traitMarker]()

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// TraitField describes one trait slot declared on an entity struct.
type TraitField struct {
	// Index is the field index for reflect.Value.FieldByIndex.
	Index []int

	// Facet is the interface type the slot declares.
	Facet reflect.Type

	Name     string
	Exported bool
}

// TraitFields returns the trait slots declared as direct fields of the
// entity struct, in declaration order. Only direct fields count as
// declarations, trait slots of a nested struct belong to that struct.
func TraitFields(entityType reflect.Type) []TraitField {
	var fields []TraitField

	if entityType.Kind() != reflect.Struct {
		return nil
	}

	for field := range IterFields(entityType) {
		if !field.Type.Implements(traitMarkerType) {
			continue
		}

		marker := reflect.New(field.Type).Elem().Interface().(traitMarker)

		fields = append(fields, TraitField{
			Index:    field.Index,
			Facet:    marker.FacetType(),
			Name:     field.Name,
			Exported: field.IsExported(),
		})
	}

	return fields
}
