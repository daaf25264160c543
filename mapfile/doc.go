// Package mapfile loads mapper configurations from YAML mapping files.
//
// A mapping file declares shapes (named field lists) and mappings between
// them. Conditions reference transformations by name; the functions
// themselves live in a Registry supplied by the program. Predicates are
// written as expressions evaluated against the record being mapped.
//
// # Schema Overview
//
//	version: "1"
//	shapes:
//	  - name: TestObject
//	    fields: [title, values, otherObject, optionalValue]
//	mappings:
//	  - name: test
//	    source: plain           # empty or "plain" means unshaped
//	    destination: TestObject
//	    conditions:
//	      # keyed: applies to one field
//	      - key: title
//	        when: '"Snow" in values'
//	        transform: john
//	      # keyed, one function per direction
//	      - key: otherObject
//	        source_transform: toObject
//	        destination_transform: fromObject
//	      # keyless: applies to the whole object, in file order
//	      - transform: markUpdated
//
// # Expressions
//
// "when" expressions use the expr language. The record's fields are the
// variables; fields that are absent read as nil. An expression must
// evaluate to a boolean.
//
// # Validation
//
// Validate reports structural problems as diagnostics: unknown shapes and
// transforms (with suggestions), invalid expressions, duplicate names, keys
// that can never match, and conditions shadowed by an earlier one for the
// same key. Build refuses files with errors.
package mapfile
