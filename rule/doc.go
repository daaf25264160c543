// Package rule defines the rule model consumed by the mapper: transformations
// and the conditions that gate them.
//
// A Transformation bundles up to three functions. Transform applies in both
// directions and always wins; Source applies only during MapToSource and
// Destination only during MapToDestination. A Transformation with no
// functions is the identity.
//
// A Condition attaches a Transformation to either one field (keyed) or the
// whole object (keyless), optionally gated by a Predicate.
//
// # Precedence
//
// Function resolution is an ordered, first-match-wins list:
//  1. Transform
//  2. Source (ToSource only)
//  3. Destination (ToDestination only)
//  4. none: the caller keeps the value as is
//
// Rule values are plain data and are never validated: a keyed condition
// whose key never appears simply never matches, and any error returned by a
// predicate or function is handed back to the mapper's caller unchanged.
package rule
