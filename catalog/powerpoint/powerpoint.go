// Package powerpoint declares the presentation host's capability catalog.
package powerpoint

import (
	"context"

	"goa.design/officetools/catalog/args"
	"goa.design/officetools/hosts"
	"goa.design/officetools/toolcfg"
)

type cfg = toolcfg.ToolConfig[hosts.PresentationContext]

// Configs returns the presentation catalog in manifest order.
func Configs() []cfg { return configs }

var configs = []cfg{
	{
		Base: toolcfg.Base{
			Name:        "add_slide",
			Description: "Append a slide to the deck using the named layout. Returns the zero-based slide index.",
			Params: map[string]toolcfg.ParamDef{
				"layout": {
					Type:        toolcfg.TypeString,
					Enum:        []string{"blank", "title", "titleAndContent", "sectionHeader"},
					Default:     "blank",
					Description: "Slide layout to apply.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.PresentationContext, bag map[string]any) (any, error) {
			index, err := hc.AddSlide(args.StringOr(bag, "layout", "blank"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"index": index}, nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "set_slide_title",
			Description: "Set the title placeholder text of a slide.",
			Params: map[string]toolcfg.ParamDef{
				"index": {
					Type:        toolcfg.TypeNumber,
					Description: "Zero-based slide index.",
				},
				"title": {
					Type:        toolcfg.TypeString,
					Description: "Title text.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.PresentationContext, bag map[string]any) (any, error) {
			if err := hc.SetSlideTitle(args.Int(bag, "index"), args.String(bag, "title")); err != nil {
				return nil, err
			}
			return "title set", nil
		},
	},
}
