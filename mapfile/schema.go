package mapfile

// CurrentVersion is the only mapping file version understood.
const CurrentVersion = "1"

// PlainShape is the reserved shape name for unshaped objects.
const PlainShape = "plain"

// MappingFile represents the root of a YAML mapping file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Shapes declares the named field lists mappings refer to.
	Shapes []ShapeDef `yaml:"shapes,omitempty"`

	// Mappings is a list of shape pair mappings.
	Mappings []MappingDef `yaml:"mappings"`
}

// ShapeDef declares a shape by name and field list.
type ShapeDef struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// MappingDef configures one mapper.
type MappingDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Source and Destination name declared shapes. Empty or "plain" means
	// unshaped.
	Source      string `yaml:"source,omitempty"`
	Destination string `yaml:"destination,omitempty"`

	// Conditions in evaluation order.
	Conditions []ConditionDef `yaml:"conditions,omitempty"`
}

// ConditionDef configures one rule.Condition.
type ConditionDef struct {
	// Key scopes the condition to one field. Empty means keyless.
	Key string `yaml:"key,omitempty"`

	// When is an optional boolean expression gating the condition.
	When string `yaml:"when,omitempty"`

	// Transform names a direction-agnostic transformation.
	Transform string `yaml:"transform,omitempty"`

	// SourceTransform names a transformation applied by MapToSource.
	SourceTransform string `yaml:"source_transform,omitempty"`

	// DestinationTransform names a transformation applied by
	// MapToDestination.
	DestinationTransform string `yaml:"destination_transform,omitempty"`
}

// IsKeyed reports whether the condition targets a single field.
func (c *ConditionDef) IsKeyed() bool {
	return c.Key != ""
}

// TransformRefs returns the non-empty transform names with their YAML keys.
func (c *ConditionDef) TransformRefs() []TransformRef {
	var refs []TransformRef

	for _, r := range []TransformRef{
		{Field: "transform", Name: c.Transform},
		{Field: "source_transform", Name: c.SourceTransform},
		{Field: "destination_transform", Name: c.DestinationTransform},
	} {
		if r.Name != "" {
			refs = append(refs, r)
		}
	}

	return refs
}

// TransformRef is a transform name referenced from a condition.
type TransformRef struct {
	Field string
	Name  string
}

// IsPlain reports whether name refers to the unshaped shape.
func IsPlain(name string) bool {
	return name == "" || name == PlainShape
}

// ShapeByName returns the declared shape with the given name, or nil.
func (mf *MappingFile) ShapeByName(name string) *ShapeDef {
	for i := range mf.Shapes {
		if mf.Shapes[i].Name == name {
			return &mf.Shapes[i]
		}
	}

	return nil
}

// ShapeNames returns the declared shape names in file order.
func (mf *MappingFile) ShapeNames() []string {
	names := make([]string, 0, len(mf.Shapes))
	for _, s := range mf.Shapes {
		names = append(names, s.Name)
	}

	return names
}
