package vector

import "reflect"

// Dropper is implemented by element types owning resources that must be
// released when a Vector destroys the element. Elements handed back to the
// caller (pop, remove, cursor yields) are never dropped by the vector.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeFor[Dropper]()

// needsDrop reports whether destroying a T may have to call Drop. Interface
// element types are answered per value.
func needsDrop[T any]() bool {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return true
	}
	return t.Implements(dropperType) || reflect.PointerTo(t).Implements(dropperType)
}

// dropInPlace destroys the value in *p and zeroes the slot.
func dropInPlace[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok && !isNilDropper(d) {
		d.Drop()
	}
	var zero T
	*p = zero
}

func isNilDropper(d Dropper) bool {
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// dropRange destroys s in index order when T carries drop glue, and zeroes
// it regardless so the collector sees no stale references.
func dropRange[T any](s []T) {
	if needsDrop[T]() {
		for i := range s {
			dropInPlace(&s[i])
		}
		return
	}
	clear(s)
}
