package openaitools

import (
	"context"
	"encoding/json"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"goa.design/officetools/factory"
	"goa.design/officetools/registry"
)

func testSet() registry.ToolSet {
	return registry.ToolSet{
		Tools: []registry.Descriptor{
			{
				Name:        "get_range_values",
				Description: "Read a range.",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"address": map[string]any{"type": "string"},
					},
				},
				Handler: func(context.Context, map[string]any) factory.LegacyHandlerResult {
					return factory.LegacyHandlerResult{ResultType: factory.ResultSuccess, TextResultForLLM: "ok"}
				},
			},
		},
		Total: 1,
	}
}

func TestEncode(t *testing.T) {
	toolList, err := Encode(testSet())
	require.NoError(t, err)
	require.Len(t, toolList, 1)
	require.Equal(t, openai.ToolTypeFunction, toolList[0].Type)

	fn := toolList[0].Function
	require.Equal(t, "get_range_values", fn.Name)
	require.Equal(t, "Read a range.", fn.Description)

	raw, ok := fn.Parameters.(json.RawMessage)
	require.True(t, ok, "parameters must be raw JSON for the legacy SDK")
	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	require.Equal(t, "object", schema["type"])
	require.Contains(t, schema, "properties")
}

func TestEncodeEmptySet(t *testing.T) {
	toolList, err := Encode(registry.ToolSet{})
	require.NoError(t, err)
	require.Nil(t, toolList)
}

func TestEncodeMissingDescription(t *testing.T) {
	_, err := Encode(registry.ToolSet{Tools: []registry.Descriptor{{Name: "anon"}}})
	require.ErrorContains(t, err, `tool "anon" is missing description`)
}

func TestHandlers(t *testing.T) {
	handlers := Handlers(testSet())
	require.Len(t, handlers, 1)
	res := handlers["get_range_values"](context.Background(), nil)
	require.Equal(t, factory.ResultSuccess, res.ResultType)
	require.Equal(t, "ok", res.TextResultForLLM)
}
