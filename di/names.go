package di

import (
	"reflect"
	"strconv"
)

// NameOf returns the canonical registration name for T.
//
// It is the name a Module gets when none is given, and the key Resolve uses
// when called without an explicit name.
func NameOf[T any]() string {
	return TypeName(reflect.TypeFor[T]())
}

// TypeName renders t as a registration name.
//
// Named types use their full import path ("github.com/acme/app.Clock") so that
// equally named types from different packages never share a key. Pointer,
// slice, array, map and channel types are composed from their elements.
// Anything else falls back to t.String().
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + name
		}
		return name
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + TypeName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + TypeName(t.Elem())
		default:
			return "chan " + TypeName(t.Elem())
		}
	default:
		return t.String()
	}
}

// typeNameOf names the dynamic type of v.
func typeNameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return TypeName(reflect.TypeOf(v))
}
