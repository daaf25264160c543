// Package match provides name normalization, Levenshtein distance, and
// "did you mean" suggestions for names referenced from mapping files.
//
// Key functions:
//   - NormalizeIdent: folds identifiers so "optional_value" and
//     "OptionalValue" compare equal
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
