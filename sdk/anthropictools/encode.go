// Package anthropictools adapts the tool catalog to the Anthropic Messages
// API, the modern tool-calling SDK generation. Tools are encoded into
// sdk.ToolUnionParam values for the request and tool_use blocks are routed
// back through the registry descriptors. Argument validation happens in the
// factory handlers before any tool body runs; the raw result value is
// returned to the caller, which builds the provider tool_result envelope.
package anthropictools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"

	"goa.design/officetools/factory"
	"goa.design/officetools/registry"
	"goa.design/officetools/toolerrs"
)

// Encode converts a dispatch view into Anthropic tool parameters. It returns
// the provider tool list together with the sanitized-to-catalog name map
// used to route tool_use blocks back to descriptors. Name collisions after
// sanitation are configuration errors.
func Encode(set registry.ToolSet) ([]sdk.ToolUnionParam, map[string]string, error) {
	if len(set.Tools) == 0 {
		return nil, nil, nil
	}
	toolList := make([]sdk.ToolUnionParam, 0, len(set.Tools))
	sanToCatalog := make(map[string]string, len(set.Tools))
	for _, desc := range set.Tools {
		if desc.Name == "" {
			continue
		}
		sanitized := sanitizeToolName(desc.Name)
		if prev, ok := sanToCatalog[sanitized]; ok && prev != desc.Name {
			return nil, nil, fmt.Errorf(
				"anthropictools: tool name %q sanitizes to %q which collides with %q",
				desc.Name, sanitized, prev,
			)
		}
		sanToCatalog[sanitized] = desc.Name
		if desc.Description == "" {
			return nil, nil, fmt.Errorf("anthropictools: tool %q is missing description", desc.Name)
		}
		schema, err := toolInputSchema(desc.InputSchema)
		if err != nil {
			return nil, nil, fmt.Errorf("anthropictools: tool %q schema: %w", desc.Name, err)
		}
		u := sdk.ToolUnionParamOfTool(schema, sanitized)
		if u.OfTool != nil {
			u.OfTool.Description = sdk.String(desc.Description)
		}
		toolList = append(toolList, u)
	}
	return toolList, sanToCatalog, nil
}

// Dispatch routes a tool_use block back to its descriptor and invokes it.
// The provider-visible name is translated through the sanitized name map
// from Encode. An unknown name or undecodable input degrades to a failure
// Result; Dispatch never returns an error.
func Dispatch(ctx context.Context, set registry.ToolSet, sanToCatalog map[string]string, name string, input json.RawMessage) factory.Result {
	catalog := name
	if mapped, ok := sanToCatalog[name]; ok {
		catalog = mapped
	}
	for _, desc := range set.Tools {
		if desc.Name != catalog {
			continue
		}
		args := map[string]any{}
		if len(input) > 0 {
			if err := json.Unmarshal(input, &args); err != nil {
				return factory.Result{Err: toolerrs.Errorf("tool %s: undecodable arguments: %v", catalog, err)}
			}
		}
		return desc.Invoke(ctx, args)
	}
	return factory.Result{Err: toolerrs.Errorf("unknown tool %q", name)}
}

func toolInputSchema(schema map[string]any) (sdk.ToolInputSchemaParam, error) {
	if schema == nil {
		return sdk.ToolInputSchemaParam{}, nil
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return sdk.ToolInputSchemaParam{}, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return sdk.ToolInputSchemaParam{}, err
	}
	return sdk.ToolInputSchemaParam{ExtraFields: m}, nil
}

// sanitizeToolName maps a catalog tool identifier to the characters allowed
// by Anthropic tool naming constraints by replacing any disallowed rune with
// '_'. Catalog names are flat snake_case already, so this is almost always
// the identity.
func sanitizeToolName(in string) string {
	if isProviderSafeToolName(in) {
		return in
	}
	var b strings.Builder
	b.Grow(len(in))
	for _, r := range in {
		if isProviderSafeRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func isProviderSafeToolName(name string) bool {
	if name == "" || len(name) > 64 {
		return false
	}
	for _, r := range name {
		if !isProviderSafeRune(r) {
			return false
		}
	}
	return true
}

func isProviderSafeRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' || r == '-'
}
