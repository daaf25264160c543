package mapfile

import (
	"errors"
	"fmt"
	"slices"

	"object-mapper/mapper"
	"object-mapper/rule"
	"object-mapper/shape"
)

// ErrInvalidMappingFile is returned by Build when validation finds errors.
var ErrInvalidMappingFile = errors.New("invalid mapping file")

// Catalog holds the mappers built from one mapping file, by name.
type Catalog struct {
	mappers map[string]*mapper.Mapper
	names   []string
}

// Get returns the mapper with the given name.
func (c *Catalog) Get(name string) (*mapper.Mapper, bool) {
	m, ok := c.mappers[name]
	return m, ok
}

// Names returns the mapping names in file order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of mappers in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Build validates mf and builds one mapper per mapping. Warnings do not
// stop the build; errors do. opts are passed to every mapper.New call.
func Build(mf *MappingFile, registry *Registry, opts ...mapper.Option) (*Catalog, error) {
	diags := Validate(mf, registry)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMappingFile, diags.Error())
	}

	shapes := make(map[string]shape.Shape, len(mf.Shapes))
	for _, s := range mf.Shapes {
		shapes[s.Name] = shape.Declared(s.Name, s.Fields...)
	}

	c := &Catalog{
		mappers: make(map[string]*mapper.Mapper, len(mf.Mappings)),
		names:   make([]string, 0, len(mf.Mappings)),
	}

	for i := range mf.Mappings {
		md := &mf.Mappings[i]

		conditions, err := buildConditions(md, registry)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", md.Name, err)
		}

		m, err := mapper.New(resolveShape(shapes, md.Source), resolveShape(shapes, md.Destination), conditions, opts...)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", md.Name, err)
		}

		c.mappers[md.Name] = m
		c.names = append(c.names, md.Name)
	}

	return c, nil
}

// BuildFile loads the mapping file at path and builds it.
func BuildFile(path string, registry *Registry, opts ...mapper.Option) (*Catalog, error) {
	mf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Build(mf, registry, opts...)
}

func resolveShape(shapes map[string]shape.Shape, name string) shape.Shape {
	if IsPlain(name) {
		return shape.Plain()
	}

	return shapes[name]
}

func buildConditions(md *MappingDef, registry *Registry) ([]rule.Condition, error) {
	conditions := make([]rule.Condition, 0, len(md.Conditions))

	for j := range md.Conditions {
		cd := &md.Conditions[j]

		c := rule.Condition{
			Key: cd.Key,
			Transformation: rule.Transformation{
				Transform:   lookup(registry, cd.Transform),
				Source:      lookup(registry, cd.SourceTransform),
				Destination: lookup(registry, cd.DestinationTransform),
			},
		}

		if cd.When != "" {
			pred, err := CompilePredicate(cd.When)
			if err != nil {
				return nil, fmt.Errorf("conditions[%d]: %w", j, err)
			}

			c.When = pred
		}

		conditions = append(conditions, c)
	}

	return conditions, nil
}

func lookup(registry *Registry, name string) rule.Func {
	if name == "" {
		return nil
	}

	fn, _ := registry.Get(name)

	return fn
}
