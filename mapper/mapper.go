package mapper

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"object-mapper/rule"
	"object-mapper/shape"
	"object-mapper/value"
)

// Mapper converts records between a source shape and a destination shape.
// It is immutable after New.
type Mapper struct {
	source      shape.Shape
	destination shape.Shape

	keyed   []rule.Condition
	keyless []rule.Condition

	sourceHasFields      bool
	destinationHasFields bool

	log *zap.Logger
}

// New builds a Mapper for the given shape pair. Conditions are split into
// keyed and keyless lists here, preserving their relative order.
func New(source, destination shape.Shape, conditions []rule.Condition, opts ...Option) (*Mapper, error) {
	if source == nil || destination == nil {
		return nil, ErrNilShape
	}

	o := (&options{}).apply(opts...).correct()

	m := &Mapper{
		source:               source,
		destination:          destination,
		sourceHasFields:      shape.HasFields(source),
		destinationHasFields: shape.HasFields(destination),
		log:                  o.logger,
	}

	for _, c := range conditions {
		if c.IsKeyed() {
			m.keyed = append(m.keyed, c)
		} else {
			m.keyless = append(m.keyless, c)
		}
	}

	return m, nil
}

// Source returns the source shape.
func (m *Mapper) Source() shape.Shape { return m.source }

// Destination returns the destination shape.
func (m *Mapper) Destination() shape.Shape { return m.destination }

// MapToSource maps source-side data into an object of the destination
// shape, firing Source transformations. Every key in excludedKeys is null
// in the result, whatever the rules say.
func (m *Mapper) MapToSource(data *value.Record, excludedKeys ...string) (*value.Record, error) {
	return m.mapTo(m.destination, m.destinationHasFields, rule.ToSource, data, excludedKeys)
}

// MapToDestination maps destination-side data back into an object of the
// source shape, firing Destination transformations. Every key in
// excludedKeys is null in the result, whatever the rules say.
func (m *Mapper) MapToDestination(data *value.Record, excludedKeys ...string) (*value.Record, error) {
	return m.mapTo(m.source, m.sourceHasFields, rule.ToDestination, data, excludedKeys)
}

func (m *Mapper) mapTo(
	target shape.Shape, targetHasFields bool, dir rule.Direction,
	data *value.Record, excludedKeys []string,
) (*value.Record, error) {
	if data == nil {
		return nil, ErrMissingInput
	}

	keys := data.Keys()
	if targetHasFields {
		keys = target.Fields()
	}

	log := m.log.With(zap.Stringer("direction", dir), zap.String("shape", target.Name()))

	result, err := m.mapObject(log, keys, data, dir, excludedKeys)
	if err != nil {
		return nil, err
	}

	out := shape.Instance(target)
	out.Merge(result)

	return out, nil
}

func (m *Mapper) mapObject(
	log *zap.Logger, keys []string, data *value.Record, dir rule.Direction, excludedKeys []string,
) (*value.Record, error) {
	resolved := value.NewRecord()

	for _, key := range keys {
		v, err := m.resolveKey(log, data, key, dir, excludedKeys)
		if err != nil {
			return nil, err
		}

		resolved.Set(key, v)
	}

	working, err := m.applyKeyless(log, resolved, dir)
	if err != nil {
		return nil, err
	}

	// the last keyless result belongs to the rule that returned it
	if working != resolved {
		working = working.Clone()
	}

	for _, key := range excludedKeys {
		working.Set(key, value.Null())
	}

	return working, nil
}

// resolveKey computes one output field: exclusion first, then the first
// keyed condition for the key, then the raw input value.
func (m *Mapper) resolveKey(
	log *zap.Logger, data *value.Record, key string, dir rule.Direction, excludedKeys []string,
) (value.Value, error) {
	if slices.Contains(excludedKeys, key) {
		log.Debug("excluded key", zap.String("key", key))
		return value.Null(), nil
	}

	raw := data.Get(key)

	idx := slices.IndexFunc(m.keyed, func(c rule.Condition) bool { return c.Key == key })
	if idx < 0 {
		return raw, nil
	}

	cond := m.keyed[idx]

	ok, err := cond.Applies(data)
	if err != nil {
		return value.Value{}, err
	}

	if !ok {
		log.Debug("keyed condition not met", zap.String("key", key))
		return raw, nil
	}

	fn := cond.Transformation.Pick(dir)
	if fn == nil {
		log.Debug("no transformation for direction", zap.String("key", key))
		return raw, nil
	}

	log.Debug("applying keyed transformation", zap.String("key", key))

	return fn(raw)
}

// applyKeyless chains the keyless conditions over the per-key result.
func (m *Mapper) applyKeyless(log *zap.Logger, resolved *value.Record, dir rule.Direction) (*value.Record, error) {
	working := resolved

	for i, cond := range m.keyless {
		ok, err := cond.Applies(working)
		if err != nil {
			return nil, err
		}

		if !ok {
			log.Debug("keyless condition not met", zap.Int("index", i))
			continue
		}

		fn := cond.Transformation.Pick(dir)
		if fn == nil {
			continue
		}

		log.Debug("applying keyless transformation", zap.Int("index", i))

		out, err := fn(value.Object(working.Clone()))
		if err != nil {
			return nil, err
		}

		rec, ok := out.AsRecord()
		if !ok {
			return nil, fmt.Errorf("%w: condition %d returned %s", ErrKeylessResult, i, out.Kind())
		}

		working = rec
	}

	return working, nil
}
