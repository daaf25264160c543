package mapfile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-mapper/mapfile"
)

func TestValidate_ValidFile(t *testing.T) {
	mf, err := mapfile.LoadFile(filepath.Join("testdata", "test_object.yaml"))
	require.NoError(t, err)

	res := mapfile.Validate(mf, testRegistry())
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Codes())
}

func TestValidate_Nil(t *testing.T) {
	res := mapfile.Validate(nil, testRegistry())
	assert.Equal(t, []string{"mapping_is_nil"}, res.Codes())

	res = mapfile.Validate(&mapfile.MappingFile{}, nil)
	assert.Equal(t, []string{"registry_is_nil"}, res.Codes())
}

func testShape() mapfile.ShapeDef {
	return mapfile.ShapeDef{Name: "TestObject", Fields: []string{"title", "values"}}
}

func otherShape() mapfile.ShapeDef {
	return mapfile.ShapeDef{Name: "Other", Fields: []string{"name"}}
}

func oneMapping(conditions ...mapfile.ConditionDef) *mapfile.MappingFile {
	return &mapfile.MappingFile{
		Version: mapfile.CurrentVersion,
		Shapes:  []mapfile.ShapeDef{testShape(), otherShape()},
		Mappings: []mapfile.MappingDef{{
			Name:        "m",
			Source:      "TestObject",
			Destination: "Other",
			Conditions:  conditions,
		}},
	}
}

func TestValidate_Codes(t *testing.T) {
	tests := []struct {
		name string
		mf   *mapfile.MappingFile
		want []string
	}{
		{
			name: "unsupported version",
			mf:   &mapfile.MappingFile{Version: "2"},
			want: []string{"unsupported_version"},
		},
		{
			name: "shape problems",
			mf: &mapfile.MappingFile{Shapes: []mapfile.ShapeDef{
				{Name: "A", Fields: []string{"x"}},
				{Name: "A", Fields: []string{"x"}},
				{Name: "plain", Fields: []string{"x"}},
				{Name: "", Fields: []string{"x"}},
				{Name: "B"},
				{Name: "C", Fields: []string{"x", "x", ""}},
			}},
			want: []string{
				"duplicate_shape", "reserved_shape_name", "empty_shape_name",
				"empty_field_name", "duplicate_field", "shape_without_fields",
			},
		},
		{
			name: "mapping names",
			mf: &mapfile.MappingFile{Mappings: []mapfile.MappingDef{
				{Name: ""}, {Name: "m"}, {Name: "m"},
			}},
			want: []string{"empty_mapping_name", "duplicate_mapping"},
		},
		{
			name: "invalid expression",
			mf:   oneMapping(mapfile.ConditionDef{Key: "title", When: "title ==", Transform: "john"}),
			want: []string{"invalid_expression"},
		},
		{
			name: "shadowed keyed condition",
			mf: oneMapping(
				mapfile.ConditionDef{Key: "title", Transform: "john"},
				mapfile.ConditionDef{Key: "title", Transform: "upper"},
			),
			want: []string{"shadowed_condition"},
		},
		{
			name: "keyless conditions never shadow",
			mf: oneMapping(
				mapfile.ConditionDef{Transform: "setTitleJohn"},
				mapfile.ConditionDef{Transform: "markUpdated"},
			),
			want: nil,
		},
		{
			name: "identity condition",
			mf:   oneMapping(mapfile.ConditionDef{Key: "title"}),
			want: []string{"identity_condition"},
		},
		{
			name: "directional transforms ignored",
			mf: oneMapping(mapfile.ConditionDef{
				Key: "title", Transform: "john", SourceTransform: "upper",
			}),
			want: []string{"directional_transform_ignored"},
		},
		{
			name: "key on either side is fine",
			mf: oneMapping(
				mapfile.ConditionDef{Key: "values", Transform: "john"},
				mapfile.ConditionDef{Key: "name", Transform: "john"},
			),
			want: nil,
		},
		{
			name: "key is not checked against plain shapes",
			mf: &mapfile.MappingFile{
				Shapes: []mapfile.ShapeDef{testShape()},
				Mappings: []mapfile.MappingDef{{
					Name:       "m",
					Source:     "TestObject",
					Conditions: []mapfile.ConditionDef{{Key: "anything", Transform: "john"}},
				}},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mapfile.Validate(tt.mf, testRegistry())
			assert.Equal(t, tt.want, res.Codes())
		})
	}
}

func TestValidate_Suggestions(t *testing.T) {
	t.Run("unknown shape", func(t *testing.T) {
		mf := oneMapping()
		mf.Mappings[0].Source = "TestObjet"

		res := mapfile.Validate(mf, testRegistry())
		require.Len(t, res.Errors, 1)

		d := res.Errors[0]
		assert.Equal(t, "unknown_shape", d.Code)
		assert.Equal(t, "m", d.Mapping)
		assert.Equal(t, "mappings[0].source", d.Path)
		assert.Equal(t, []string{"TestObject"}, d.Suggestions)
	})

	t.Run("unknown transform", func(t *testing.T) {
		mf := oneMapping(mapfile.ConditionDef{Key: "title", DestinationTransform: "johm"})

		res := mapfile.Validate(mf, testRegistry())
		require.Len(t, res.Errors, 1)

		d := res.Errors[0]
		assert.Equal(t, "unknown_transform", d.Code)
		assert.Equal(t, "mappings[0].conditions[0].destination_transform", d.Path)
		assert.Equal(t, []string{"john"}, d.Suggestions)
		assert.Contains(t, d.String(), "did you mean john?")
	})

	t.Run("unknown key", func(t *testing.T) {
		mf := oneMapping(mapfile.ConditionDef{Key: "titl", Transform: "john"})

		res := mapfile.Validate(mf, testRegistry())
		assert.True(t, res.IsValid())
		require.Len(t, res.Warnings, 1)

		d := res.Warnings[0]
		assert.Equal(t, "unknown_key", d.Code)
		assert.Equal(t, "mappings[0].conditions[0].key", d.Path)
		assert.Equal(t, []string{"title"}, d.Suggestions)
	})
}
