package toolcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validBase(name string) Base {
	return Base{
		Name:        name,
		Description: "does something",
		Params: map[string]ParamDef{
			"address": {Type: TypeString, Description: "range address"},
		},
	}
}

func TestValidateCatalogAccepts(t *testing.T) {
	err := ValidateCatalog(
		[]Base{validBase("get_range_values"), validBase("sort_range")},
		[]Base{validBase("capture_plan")},
	)
	require.NoError(t, err)
}

func TestValidateCatalogDuplicateAcrossCatalogs(t *testing.T) {
	err := ValidateCatalog(
		[]Base{validBase("get_range_values")},
		[]Base{validBase("get_range_values")},
	)
	require.ErrorContains(t, err, `duplicate tool name "get_range_values"`)
}

func TestValidateCatalogEnumOnNonString(t *testing.T) {
	base := validBase("sort_range")
	base.Params = map[string]ParamDef{
		"column": {Type: TypeNumber, Enum: []string{"0", "1"}, Description: "column"},
	}
	err := ValidateCatalog([]Base{base})
	require.ErrorContains(t, err, "enum is only valid on string parameters")
}

func TestValidateCatalogEmptyEnum(t *testing.T) {
	base := validBase("create_chart")
	base.Params = map[string]ParamDef{
		"chartType": {Type: TypeString, Enum: []string{}, Description: "type"},
	}
	err := ValidateCatalog([]Base{base})
	require.ErrorContains(t, err, "empty enum")
}

func TestValidateCatalogDefaultTypeMismatch(t *testing.T) {
	cases := []struct {
		name string
		def  ParamDef
		want string
	}{
		{"string default on number", ParamDef{Type: TypeNumber, Default: "ten"}, "not a number"},
		{"number default on boolean", ParamDef{Type: TypeBoolean, Default: 1.0}, "not a boolean"},
		{"bool default on string", ParamDef{Type: TypeString, Default: true}, "not a string"},
		{"default outside enum", ParamDef{Type: TypeString, Enum: []string{"a", "b"}, Default: "c"}, "not in enum"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := validBase("tool")
			base.Params = map[string]ParamDef{"p": tc.def}
			err := ValidateCatalog([]Base{base})
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestValidateCatalogDefaultInEnum(t *testing.T) {
	base := validBase("insert_paragraph")
	base.Params = map[string]ParamDef{
		"location": {Type: TypeString, Enum: []string{"start", "end"}, Default: "end", Description: "where"},
	}
	require.NoError(t, ValidateCatalog([]Base{base}))
}

func TestValidateCatalogUnknownType(t *testing.T) {
	base := validBase("tool")
	base.Params = map[string]ParamDef{"p": {Type: ParamType("object"), Description: "p"}}
	err := ValidateCatalog([]Base{base})
	require.ErrorContains(t, err, `unknown type "object"`)
}

func TestValidateCatalogEmptyIdentity(t *testing.T) {
	err := ValidateCatalog([]Base{{Name: "", Description: "x"}})
	require.ErrorContains(t, err, "empty name")

	err = ValidateCatalog([]Base{{Name: "x", Description: ""}})
	require.ErrorContains(t, err, "empty description")
}

func TestValidateCatalogReportsAllProblems(t *testing.T) {
	bad := Base{
		Name:        "bad_tool",
		Description: "",
		Params: map[string]ParamDef{
			"a": {Type: TypeNumber, Enum: []string{"x"}, Description: "a"},
			"b": {Type: ParamType("array"), Description: "b"},
		},
	}
	err := ValidateCatalog([]Base{bad})
	require.ErrorContains(t, err, "empty description")
	require.ErrorContains(t, err, "enum is only valid on string parameters")
	require.ErrorContains(t, err, `unknown type "array"`)
}
