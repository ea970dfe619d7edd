package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/officetools/toolcfg"
)

// fakeSheet is a minimal host context for factory tests.
type fakeSheet struct {
	values [][]any
}

// passRunner invokes the callback directly, recording that a run happened.
func passRunner(runs *int) func(ctx context.Context, fn func(*fakeSheet) (any, error)) (any, error) {
	return func(_ context.Context, fn func(*fakeSheet) (any, error)) (any, error) {
		if runs != nil {
			*runs++
		}
		return fn(&fakeSheet{values: [][]any{{"a", 1.0}}})
	}
}

func rangeTool(execute func(ctx context.Context, hc *fakeSheet, bag map[string]any) (any, error)) toolcfg.ToolConfig[*fakeSheet] {
	return toolcfg.ToolConfig[*fakeSheet]{
		Base: toolcfg.Base{
			Name:        "get_range_values",
			Description: "read a range",
			Params: map[string]toolcfg.ParamDef{
				"address": {Type: toolcfg.TypeString, Description: "addr"},
			},
		},
		Execute: execute,
	}
}

func TestInvokeSuccessReturnsRawValue(t *testing.T) {
	var runs int
	tools, err := New([]toolcfg.ToolConfig[*fakeSheet]{
		rangeTool(func(_ context.Context, hc *fakeSheet, bag map[string]any) (any, error) {
			require.Equal(t, "A1:B2", bag["address"])
			return hc.values, nil
		}),
	}, passRunner(&runs))
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.Equal(t, "get_range_values", tools[0].Name())

	res := tools[0].Invoke(context.Background(), map[string]any{"address": "A1:B2"})
	require.Nil(t, res.Err)
	require.Equal(t, [][]any{{"a", 1.0}}, res.Value)
	require.Equal(t, 1, runs)
}

func TestInvokeExecuteErrorBecomesFailureResult(t *testing.T) {
	tools, err := New([]toolcfg.ToolConfig[*fakeSheet]{
		rangeTool(func(context.Context, *fakeSheet, map[string]any) (any, error) {
			return nil, errors.New("Invalid address")
		}),
	}, passRunner(nil))
	require.NoError(t, err)

	res := tools[0].Invoke(context.Background(), map[string]any{"address": "nope"})
	require.NotNil(t, res.Err)
	require.Equal(t, "Invalid address", res.Err.Message)
	require.Nil(t, res.Value)
}

func TestInvokePanicBecomesFailureResult(t *testing.T) {
	tools, err := New([]toolcfg.ToolConfig[*fakeSheet]{
		rangeTool(func(context.Context, *fakeSheet, map[string]any) (any, error) {
			panic("host object disposed")
		}),
	}, passRunner(nil))
	require.NoError(t, err)

	var res Result
	require.NotPanics(t, func() {
		res = tools[0].Invoke(context.Background(), map[string]any{"address": "A1"})
	})
	require.NotNil(t, res.Err)
	require.Contains(t, res.Err.Message, "host object disposed")
}

func TestInvokeValidatesBeforeExecute(t *testing.T) {
	called := false
	tools, err := New([]toolcfg.ToolConfig[*fakeSheet]{
		rangeTool(func(context.Context, *fakeSheet, map[string]any) (any, error) {
			called = true
			return nil, nil
		}),
	}, passRunner(nil))
	require.NoError(t, err)

	res := tools[0].Invoke(context.Background(), map[string]any{})
	require.NotNil(t, res.Err)
	require.Contains(t, res.Err.Message, `invalid arguments for tool "get_range_values"`)
	require.Contains(t, res.Err.Message, "missing_field")
	require.False(t, called, "execute must not run on rejected arguments")
}

func TestWithoutValidationTrustsCaller(t *testing.T) {
	var got map[string]any
	tools, err := New([]toolcfg.ToolConfig[*fakeSheet]{
		rangeTool(func(_ context.Context, _ *fakeSheet, bag map[string]any) (any, error) {
			got = bag
			return "ok", nil
		}),
	}, passRunner(nil), WithoutValidation())
	require.NoError(t, err)

	res := tools[0].Invoke(context.Background(), map[string]any{"address": 42})
	require.Nil(t, res.Err)
	require.Equal(t, 42, got["address"])
}

func TestNewRejectsInvalidCatalog(t *testing.T) {
	dup := rangeTool(func(context.Context, *fakeSheet, map[string]any) (any, error) { return nil, nil })
	_, err := New([]toolcfg.ToolConfig[*fakeSheet]{dup, dup}, passRunner(nil))
	require.ErrorContains(t, err, "duplicate tool name")
}

func TestNewRejectsMissingExecute(t *testing.T) {
	cfg := rangeTool(nil)
	_, err := New([]toolcfg.ToolConfig[*fakeSheet]{cfg}, passRunner(nil))
	require.ErrorContains(t, err, "no execute body")
}

func TestNewRequiresRunPrimitive(t *testing.T) {
	_, err := New[*fakeSheet](nil, nil)
	require.ErrorContains(t, err, "run primitive is required")
}

func TestInvokeRunPrimitiveErrorBecomesFailure(t *testing.T) {
	failing := func(context.Context, func(*fakeSheet) (any, error)) (any, error) {
		return nil, errors.New("network round trip failed")
	}
	tools, err := New([]toolcfg.ToolConfig[*fakeSheet]{
		rangeTool(func(context.Context, *fakeSheet, map[string]any) (any, error) {
			return "unreachable", nil
		}),
	}, failing)
	require.NoError(t, err)

	res := tools[0].Invoke(context.Background(), map[string]any{"address": "A1"})
	require.NotNil(t, res.Err)
	require.Equal(t, "network round trip failed", res.Err.Message)
}
