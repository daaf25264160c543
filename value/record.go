package value

import "sort"

// Record is an insertion-ordered set of named values.
//
// Keys keep the order in which they were first set; overwriting a key keeps
// its position. A nil *Record behaves as an empty, read-only record for
// lookups.
type Record struct {
	keys   []string
	fields map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// RecordFromMap builds a record from plain Go data, keys sorted.
func RecordFromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	r := NewRecord()
	for _, k := range keys {
		r.Set(k, Of(m[k]))
	}

	return r
}

// With sets key to v and returns r, for chained construction.
func (r *Record) With(key string, v Value) *Record {
	r.Set(key, v)
	return r
}

// Set stores v under key.
func (r *Record) Set(key string, v Value) {
	if r.fields == nil {
		r.fields = make(map[string]Value)
	}

	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.fields[key] = v
}

// Get returns the value stored under key, or an absent value.
func (r *Record) Get(key string) Value {
	v, _ := r.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether the key is present.
// A present key may still hold an absent value.
func (r *Record) Lookup(key string) (Value, bool) {
	if r == nil {
		return Absent(), false
	}

	v, ok := r.fields[key]

	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Delete removes key from r.
func (r *Record) Delete(key string) {
	if !r.Has(key) {
		return
	}

	delete(r.fields, key)

	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	out := make([]string, len(r.keys))
	copy(out, r.keys)

	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Clone returns a shallow copy of r: nested lists and records are shared.
func (r *Record) Clone() *Record {
	out := NewRecord()
	if r == nil {
		return out
	}

	out.keys = make([]string, len(r.keys))
	copy(out.keys, r.keys)

	for k, v := range r.fields {
		out.fields[k] = v
	}

	return out
}

// Merge overlays every key of other onto r, in other's key order.
func (r *Record) Merge(other *Record) {
	if other == nil {
		return
	}

	for _, k := range other.keys {
		r.Set(k, other.fields[k])
	}
}

// Interface converts r into a plain map. Absent values are omitted;
// null values become nil entries.
func (r *Record) Interface() map[string]any {
	out := make(map[string]any, r.Len())
	if r == nil {
		return out
	}

	for _, k := range r.keys {
		v := r.fields[k]
		if v.IsAbsent() {
			continue
		}

		out[k] = v.Interface()
	}

	return out
}

// Equal reports whether r and other hold the same keys, in the same order,
// with equal values.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}

	for i, k := range r.Keys() {
		if other.keys[i] != k {
			return false
		}

		if !r.fields[k].Equal(other.fields[k]) {
			return false
		}
	}

	return true
}
