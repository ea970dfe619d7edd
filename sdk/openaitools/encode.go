// Package openaitools adapts the tool catalog to the OpenAI Chat Completions
// API, the legacy calling-SDK generation. Tools are encoded as plain
// function definitions carrying the descriptive JSON-Schema object; no local
// validation is attached unless the registry descriptors were built with it.
// Handlers return the tagged legacy envelope and always resolve.
package openaitools

import (
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"goa.design/officetools/factory"
	"goa.design/officetools/registry"
)

// Encode converts a dispatch view into OpenAI function tools. The parameter
// schema is passed through as raw JSON; the provider performs no local
// validation, matching the legacy SDK contract.
func Encode(set registry.ToolSet) ([]openai.Tool, error) {
	if len(set.Tools) == 0 {
		return nil, nil
	}
	toolList := make([]openai.Tool, 0, len(set.Tools))
	for _, desc := range set.Tools {
		if desc.Name == "" {
			continue
		}
		if desc.Description == "" {
			return nil, fmt.Errorf("openaitools: tool %q is missing description", desc.Name)
		}
		params, err := json.Marshal(desc.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("openaitools: marshal tool %s schema: %w", desc.Name, err)
		}
		toolList = append(toolList, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        desc.Name,
				Description: desc.Description,
				Parameters:  json.RawMessage(params),
			},
		})
	}
	return toolList, nil
}

// Handlers indexes the legacy envelope handlers by tool name so a chat
// completion tool call can be routed in one lookup.
func Handlers(set registry.ToolSet) map[string]factory.LegacyHandler {
	handlers := make(map[string]factory.LegacyHandler, len(set.Tools))
	for _, desc := range set.Tools {
		handlers[desc.Name] = desc.Handler
	}
	return handlers
}
