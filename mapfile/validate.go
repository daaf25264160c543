package mapfile

import (
	"fmt"
	"slices"

	"object-mapper/diagnostic"
	"object-mapper/internal/common"
	"object-mapper/internal/match"
)

// Validate checks a mapping file against the transforms in registry.
// It does not stop at the first problem; every finding is reported.
func Validate(mf *MappingFile, registry *Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if registry == nil {
		res.AddError("registry_is_nil", "transform registry is nil", "", "")
		return res
	}

	if mf.Version != "" && mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, expected %q", mf.Version, CurrentVersion), "", "version")
	}

	res.Merge(validateShapes(mf))

	seenMappings := map[string]struct{}{}

	for i := range mf.Mappings {
		m := &mf.Mappings[i]
		path := fmt.Sprintf("mappings[%d]", i)

		if m.Name == "" {
			res.AddError("empty_mapping_name", "mapping has no name", "", path)
		} else if _, ok := seenMappings[m.Name]; ok {
			res.AddError("duplicate_mapping", fmt.Sprintf("duplicate mapping %q", m.Name), m.Name, path)
		} else {
			seenMappings[m.Name] = struct{}{}
		}

		validateMapping(res, mf, registry, path, m)
	}

	return res
}

func validateShapes(mf *MappingFile) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	seen := map[string]struct{}{}

	for i := range mf.Shapes {
		s := &mf.Shapes[i]
		path := fmt.Sprintf("shapes[%d]", i)

		switch {
		case s.Name == "":
			res.AddError("empty_shape_name", "shape has no name", "", path)
		case s.Name == PlainShape:
			res.AddError("reserved_shape_name", fmt.Sprintf("shape name %q is reserved", PlainShape), "", path)
		default:
			if _, ok := seen[s.Name]; ok {
				res.AddError("duplicate_shape", fmt.Sprintf("duplicate shape %q", s.Name), "", path)
			}

			seen[s.Name] = struct{}{}
		}

		if common.IsEmpty(s.Fields) {
			res.AddWarning("shape_without_fields",
				fmt.Sprintf("shape %q declares no fields and behaves like %q", s.Name, PlainShape), "", path)
		}

		if slices.Contains(s.Fields, "") {
			res.AddError("empty_field_name", fmt.Sprintf("shape %q has an empty field name", s.Name), "", path+".fields")
		}

		for _, dup := range common.Duplicates(s.Fields) {
			res.AddError("duplicate_field", fmt.Sprintf("shape %q declares field %q twice", s.Name, dup), "", path+".fields")
		}
	}

	return res
}

func validateMapping(res *diagnostic.Diagnostics, mf *MappingFile, registry *Registry, path string, m *MappingDef) {
	srcFields, srcKnown := validateShapeRef(res, mf, m.Name, path+".source", m.Source)
	dstFields, dstKnown := validateShapeRef(res, mf, m.Name, path+".destination", m.Destination)

	// a key can only be checked when both sides declare their fields
	checkKeys := srcKnown && dstKnown && len(srcFields) > 0 && len(dstFields) > 0
	allFields := append(slices.Clone(srcFields), dstFields...)

	transforms := registry.Names()
	seenKeys := map[string]int{}

	for j := range m.Conditions {
		c := &m.Conditions[j]
		cpath := fmt.Sprintf("%s.conditions[%d]", path, j)

		refs := c.TransformRefs()
		if common.IsEmpty(refs) {
			res.AddInfo("identity_condition", "condition names no transform and passes values through", m.Name, cpath)
		}

		for _, ref := range refs {
			if registry.Has(ref.Name) {
				continue
			}

			res.AddError("unknown_transform", fmt.Sprintf("unknown transform %q", ref.Name), m.Name,
				cpath+"."+ref.Field, match.Suggest(ref.Name, transforms, match.DefaultThreshold)...)
		}

		if c.Transform != "" && (c.SourceTransform != "" || c.DestinationTransform != "") {
			res.AddWarning("directional_transform_ignored",
				"transform applies in both directions; source_transform and destination_transform are never used",
				m.Name, cpath)
		}

		if c.When != "" {
			if _, err := compile(c.When); err != nil {
				res.AddError("invalid_expression", err.Error(), m.Name, cpath+".when")
			}
		}

		if !c.IsKeyed() {
			continue
		}

		if first, ok := seenKeys[c.Key]; ok {
			res.AddWarning("shadowed_condition",
				fmt.Sprintf("condition for key %q is shadowed by conditions[%d]", c.Key, first), m.Name, cpath+".key")
		} else {
			seenKeys[c.Key] = j
		}

		if checkKeys && !slices.Contains(allFields, c.Key) {
			res.AddWarning("unknown_key",
				fmt.Sprintf("key %q is not a field of %q or %q and never matches", c.Key, m.Source, m.Destination),
				m.Name, cpath+".key", match.Suggest(c.Key, allFields, match.DefaultThreshold)...)
		}
	}
}

// validateShapeRef resolves a shape reference. It returns the shape's
// fields and whether the reference is known.
func validateShapeRef(res *diagnostic.Diagnostics, mf *MappingFile, mapping, path, ref string) ([]string, bool) {
	if IsPlain(ref) {
		return nil, true
	}

	if s := mf.ShapeByName(ref); s != nil {
		return s.Fields, true
	}

	res.AddError("unknown_shape", fmt.Sprintf("unknown shape %q", ref), mapping, path,
		match.Suggest(ref, mf.ShapeNames(), match.DefaultThreshold)...)

	return nil, false
}
