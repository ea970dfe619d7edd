// Package word declares the document host's capability catalog.
package word

import (
	"context"
	"fmt"

	"goa.design/officetools/catalog/args"
	"goa.design/officetools/hosts"
	"goa.design/officetools/toolcfg"
)

type cfg = toolcfg.ToolConfig[hosts.DocumentContext]

// Configs returns the document catalog in manifest order.
func Configs() []cfg { return configs }

var configs = []cfg{
	{
		Base: toolcfg.Base{
			Name:        "get_document_text",
			Description: "Read the full text of the document body.",
			Params:      map[string]toolcfg.ParamDef{},
		},
		Execute: func(_ context.Context, hc hosts.DocumentContext, _ map[string]any) (any, error) {
			return hc.BodyText()
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "insert_paragraph",
			Description: "Insert a paragraph at the start or end of the document body.",
			Params: map[string]toolcfg.ParamDef{
				"text": {
					Type:        toolcfg.TypeString,
					Description: "Paragraph text.",
				},
				"location": {
					Type:        toolcfg.TypeString,
					Enum:        []string{"start", "end"},
					Default:     "end",
					Description: "Where to insert the paragraph.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.DocumentContext, bag map[string]any) (any, error) {
			if err := hc.InsertParagraph(args.String(bag, "text"), args.StringOr(bag, "location", "end")); err != nil {
				return nil, err
			}
			return "paragraph inserted", nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "replace_text",
			Description: "Replace every occurrence of a search string in the document body.",
			Params: map[string]toolcfg.ParamDef{
				"search": {
					Type:        toolcfg.TypeString,
					Description: "Text to search for.",
				},
				"replacement": {
					Type:        toolcfg.TypeString,
					Description: "Replacement text.",
				},
				"matchCase": {
					Type:        toolcfg.TypeBoolean,
					Default:     false,
					Description: "Match case exactly when true.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.DocumentContext, bag map[string]any) (any, error) {
			n, err := hc.ReplaceText(args.String(bag, "search"), args.String(bag, "replacement"), args.BoolOr(bag, "matchCase", false))
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("replaced %d occurrences", n), nil
		},
	},
}
