package rule

import "object-mapper/value"

// Predicate gates a Condition. It receives a shallow copy of the data the
// condition is evaluated against.
type Predicate func(*value.Record) (bool, error)

// Condition attaches a Transformation to a field or to the whole object.
type Condition struct {
	Transformation Transformation
	// Key scopes the condition to one field. Empty means keyless.
	Key string
	// When gates the transformation. Nil always applies.
	When Predicate
}

// Keyed returns a condition scoped to the field key.
func Keyed(key string, t Transformation) Condition {
	return Condition{Transformation: t, Key: key}
}

// Keyless returns a condition scoped to the whole object.
func Keyless(t Transformation) Condition {
	return Condition{Transformation: t}
}

// If returns a copy of c gated by p.
func (c Condition) If(p Predicate) Condition {
	c.When = p
	return c
}

// IsKeyed reports whether c targets a single field.
func (c Condition) IsKeyed() bool {
	return c.Key != ""
}

// Applies evaluates the predicate against a shallow copy of data.
func (c Condition) Applies(data *value.Record) (bool, error) {
	if c.When == nil {
		return true, nil
	}

	return c.When(data.Clone())
}
