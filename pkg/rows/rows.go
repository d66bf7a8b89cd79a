// Package rows normalizes heterogeneous row representations into an ordered
// sequence of column values. A row may be an ordered slice, a string-keyed
// map resolved against the table's column aliases, or any type implementing
// Extractor. The shape is decided by explicit capability checks at
// extraction time.
package rows

import (
	"fmt"
	"reflect"
)

// Value is a single extracted column value with its has-value status.
type Value struct {
	V    interface{}
	Null bool
}

// String returns the display text form of the value. Null values render as
// the empty string.
func (v Value) String() string {
	if v.Null || v.V == nil {
		return ""
	}
	return fmt.Sprint(v.V)
}

// Some wraps a present value. A nil payload still counts as null.
func Some(v interface{}) Value {
	return Value{V: v, Null: v == nil}
}

// Null is the absent value.
func Null() Value {
	return Value{Null: true}
}

// Extractor lets custom row types control their own column extraction.
// The alias list is the table's column aliases in declaration order.
type Extractor interface {
	ExtractRow(aliases []string) []Value
}

// Extract converts a row of unknown shape into ordered column values.
// Slices map positionally; string-keyed maps resolve one value per alias,
// with missing keys extracted as null. Any other value becomes a
// single-column row.
func Extract(row interface{}, aliases []string) []Value {
	if row == nil {
		return []Value{Null()}
	}

	if ex, ok := row.(Extractor); ok {
		return ex.ExtractRow(aliases)
	}

	switch typed := row.(type) {
	case []Value:
		return typed
	case []interface{}:
		out := make([]Value, len(typed))
		for i, v := range typed {
			out[i] = Some(v)
		}
		return out
	case []string:
		out := make([]Value, len(typed))
		for i, v := range typed {
			out[i] = Some(v)
		}
		return out
	case map[string]interface{}:
		return extractKeyed(typed, aliases)
	}

	rv := reflect.ValueOf(row)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Some(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keyed := make(map[string]interface{}, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				keyed[iter.Key().String()] = iter.Value().Interface()
			}
			return extractKeyed(keyed, aliases)
		}
	}

	return []Value{Some(row)}
}

func extractKeyed(row map[string]interface{}, aliases []string) []Value {
	out := make([]Value, len(aliases))
	for i, alias := range aliases {
		v, ok := row[alias]
		if !ok {
			out[i] = Null()
			continue
		}
		out[i] = Some(v)
	}
	return out
}
