package rule

import "reflect"

// CloneRule creates a copy of a rule so per-run configuration never
// mutates the registered prototype. For Configurable rules the clone
// is a fresh zero-value instance with the original's DefaultSettings
// applied; other rules get a shallow copy.
func CloneRule(r Rule) Rule {
	rv := reflect.ValueOf(r)
	if rv.Kind() != reflect.Ptr {
		// Value type is already a copy.
		return r
	}

	fresh := reflect.New(rv.Elem().Type())

	if c, ok := r.(Configurable); ok {
		clone := fresh.Interface().(Rule)
		_ = clone.(Configurable).ApplySettings(c.DefaultSettings())
		return clone
	}

	fresh.Elem().Set(rv.Elem())
	return fresh.Interface().(Rule)
}
