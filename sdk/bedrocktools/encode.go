// Package bedrocktools adapts the tool catalog to the AWS Bedrock Converse
// API. Tool schemas are carried as lazy documents inside the Converse
// ToolConfiguration; Bedrock, like the legacy path, validates nothing
// locally and trusts the descriptive projection.
package bedrocktools

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"goa.design/officetools/registry"
)

// Encode converts a dispatch view into a Bedrock tool configuration. Nil is
// returned for an empty set so callers can omit the ToolConfig field
// entirely.
func Encode(set registry.ToolSet) (*brtypes.ToolConfiguration, error) {
	if len(set.Tools) == 0 {
		return nil, nil
	}
	toolList := make([]brtypes.Tool, 0, len(set.Tools))
	for _, desc := range set.Tools {
		if desc.Name == "" {
			continue
		}
		if desc.Description == "" {
			return nil, fmt.Errorf("bedrocktools: tool %q is missing description", desc.Name)
		}
		spec := brtypes.ToolSpecification{
			Name:        aws.String(desc.Name),
			Description: aws.String(desc.Description),
			InputSchema: &brtypes.ToolInputSchemaMemberJson{Value: lazyDocument(desc.InputSchema)},
		}
		toolList = append(toolList, &brtypes.ToolMemberToolSpec{Value: spec})
	}
	return &brtypes.ToolConfiguration{Tools: toolList}, nil
}

func lazyDocument(schema map[string]any) document.Interface {
	var v any = schema
	if schema == nil {
		v = map[string]any{"type": "object"}
	}
	return document.NewLazyDocument(&v)
}
