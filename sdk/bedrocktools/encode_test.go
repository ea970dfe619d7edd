package bedrocktools

import (
	"testing"

	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/require"

	"goa.design/officetools/registry"
)

func TestEncode(t *testing.T) {
	set := registry.ToolSet{
		Tools: []registry.Descriptor{
			{
				Name:        "get_range_values",
				Description: "Read a range.",
				InputSchema: map[string]any{"type": "object"},
			},
		},
		Total: 1,
	}
	cfg, err := Encode(set)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Tools, 1)

	spec, ok := cfg.Tools[0].(*brtypes.ToolMemberToolSpec)
	require.True(t, ok)
	require.Equal(t, "get_range_values", *spec.Value.Name)
	require.Equal(t, "Read a range.", *spec.Value.Description)

	schemaMember, ok := spec.Value.InputSchema.(*brtypes.ToolInputSchemaMemberJson)
	require.True(t, ok)
	var decoded map[string]any
	require.NoError(t, schemaMember.Value.UnmarshalSmithyDocument(&decoded))
	require.Equal(t, "object", decoded["type"])
}

func TestEncodeEmptySetIsNil(t *testing.T) {
	cfg, err := Encode(registry.ToolSet{})
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestEncodeMissingDescription(t *testing.T) {
	_, err := Encode(registry.ToolSet{Tools: []registry.Descriptor{{Name: "anon"}}})
	require.ErrorContains(t, err, `tool "anon" is missing description`)
}
