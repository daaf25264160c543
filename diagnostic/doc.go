// Package diagnostic provides structured errors, warnings and notes produced
// while validating mapping files.
//
// Key capabilities:
//   - Unknown shape and transform references
//   - "Did you mean" suggestions for misspelled names
//   - Warnings for conditions that can never match
//   - A combined error for callers that only care about failure
package diagnostic
