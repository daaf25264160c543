// Package mapper implements the bidirectional mapping engine.
//
// A Mapper is configured once per shape pair with a list of rule.Condition
// values and then reused for any number of calls. MapToSource takes
// source-side data and builds an object of the destination shape;
// MapToDestination goes back and builds an object of the source shape.
// Both run the same algorithm:
//
//  1. Key set: the target shape's declared fields, or the input's own keys
//     when the target shape declares none.
//  2. Per key, in order: excluded keys resolve to null; otherwise the first
//     keyed condition for the key is consulted, and when its predicate
//     holds the picked function (see rule.Transformation.Pick) transforms
//     the input value. Anything else passes through unchanged.
//  3. Keyless conditions run in configured order, each receiving the
//     previous one's output (the first one receives the per-key result).
//  4. Excluded keys are forced to null again, so exclusion always wins.
//  5. The result is overlaid onto a fresh instance of the target shape.
//
// Errors returned by predicates and transformations are passed to the caller
// unchanged. The Mapper holds no mutable state and may be shared between
// goroutines as long as the rule functions are reentrant.
//
// Typed wraps a Mapper for Go struct pairs, encoding inputs and decoding
// outputs with the shape package.
package mapper
