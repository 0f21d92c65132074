package facet

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupported is matched by errors returned from TryAs when the entity
// does not declare the requested facet.
var ErrUnsupported = errors.New("facet not supported")

// UnsupportedFacetError reports a cast to a facet the entity does not
// declare. It matches ErrUnsupported in errors.Is.
type UnsupportedFacetError struct {
	Entity reflect.Type
	Facet  reflect.Type
}

func (e *UnsupportedFacetError) Error() string {
	return fmt.Sprintf("facet: %s does not declare facet %s", e.Entity, e.Facet)
}

func (e *UnsupportedFacetError) Is(target error) bool {
	return target == ErrUnsupported
}
