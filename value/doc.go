// Package value provides the dynamic data model the mapper operates on.
//
// A Value is a small tagged variant covering the shapes plain data takes:
// absent, null, booleans, integers, floats, strings, lists, nested records,
// and an opaque escape hatch for any other Go value that should be carried
// through untouched.
//
// A Record is an insertion-ordered map from field name to Value. Field
// access on a Record never fails: a missing key reads as an absent Value,
// which keeps partially populated inputs usable.
//
// # Absent vs Null
//
// Absent means "the field has no value at all" (the key may or may not be
// present in the record). Null is an explicit empty value, used by the
// mapper for excluded keys. Both convert to nil in plain Go form, but only
// Null survives Record.Interface as a key.
package value
