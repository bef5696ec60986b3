// Package value holds the JSON-like tree model that jsonns operates on.
//
// A tree is built from these Go types:
//
//   - *Object for objects (insertion ordered)
//   - []any for arrays
//   - string, bool and nil for the matching JSON scalars
//   - json.Number (or float64 when decoded in float mode) for numbers
//
// Plain map[string]any values are accepted wherever an object is expected and
// are visited in sorted key order.
package value

import (
	"sort"
)

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a string-keyed mapping that remembers insertion order.
// The zero value is an empty object ready for use.
type Object struct {
	keys  []string
	index map[string]int
	vals  []any
}

// NewObject returns an empty object with room for n members.
func NewObject(n int) *Object {
	return &Object{
		keys:  make([]string, 0, n),
		index: make(map[string]int, n),
		vals:  make([]any, 0, n),
	}
}

// ObjectOf builds an object from members in order. Later duplicates overwrite
// earlier ones.
func ObjectOf(members ...Member) *Object {
	o := NewObject(len(members))
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.index == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// Set stores v under key. An existing key keeps its position and only the
// value is replaced.
func (o *Object) Set(key string, v any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Delete removes key, preserving the order of the remaining members.
func (o *Object) Delete(key string) {
	if o == nil || o.index == nil {
		return
	}
	i, ok := o.index[key]
	if !ok {
		return
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Members returns the members in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	out := make([]Member, len(o.keys))
	for i, k := range o.keys {
		out[i] = Member{Key: k, Value: o.vals[i]}
	}
	return out
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	if o == nil {
		return
	}
	for i, k := range o.keys {
		if !fn(k, o.vals[i]) {
			return
		}
	}
}

// AsObject reports whether v is an object and returns it as *Object. A
// map[string]any is converted shallowly with its keys sorted.
func AsObject(v any) (*Object, bool) {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil, false
		}
		return t, true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject(len(keys))
		for _, k := range keys {
			o.Set(k, t[k])
		}
		return o, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of v. Plain maps become *Object.
func Clone(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	case *Object, map[string]any:
		o, ok := AsObject(t)
		if !ok {
			return nil
		}
		out := NewObject(o.Len())
		o.Range(func(k string, item any) bool {
			out.Set(k, Clone(item))
			return true
		})
		return out
	default:
		return v
	}
}
