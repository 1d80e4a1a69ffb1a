package module

import (
	"fmt"
	"reflect"
)

// PortSet is whatever a module returns from Ports, usually a struct of interfaces
type PortSet = any

// PortsOf finds a T in m's ports: the port set itself, or the first exported non-nil
// field of a port struct (or pointer to one) that holds a T
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() || isNilField(f) {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for startup wiring, where a missing port is a programming error
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s exposes no %s port", m.Name(), reflect.TypeFor[T]()))
	}
	return v
}

func isNilField(f reflect.Value) bool {
	switch f.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return f.IsNil()
	}
	return false
}
