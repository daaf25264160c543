// Package shape describes the objects a mapper produces.
//
// A Shape names a type and lists the fields it declares. The mapper only
// needs those two things: the field list decides which keys an output
// carries, and Instance produces the empty object the result is overlaid
// onto. Shapes are registered explicitly instead of being discovered by
// constructing a default instance, so types with required constructor
// arguments work the same as plain ones.
//
// Three kinds of shapes are provided:
//   - Declared: an explicit, static field list
//   - Plain: no declared fields; the mapper falls back to the input's keys
//   - Of / For: the exported fields of a Go struct type
//
// Struct fields are named by the `map` tag when present, otherwise by the
// Go field name. A `map:"-"` tag hides the field.
//
// Encode and Decode convert between Go structs and value.Record so typed
// callers can run records through the mapper.
package shape
