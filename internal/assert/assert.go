package assert

import (
	"fmt"
	"reflect"
)

func IsPointerType(t reflect.Type) {
	if t.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("expected pointer type, got %s", t))
	}
}

func IsInterfaceType(t reflect.Type) {
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("expected interface type, got %s", t))
	}
}
