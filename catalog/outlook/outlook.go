// Package outlook declares the mail host's capability catalog.
package outlook

import (
	"context"

	"goa.design/officetools/catalog/args"
	"goa.design/officetools/hosts"
	"goa.design/officetools/toolcfg"
)

type cfg = toolcfg.ToolConfig[hosts.MailContext]

// Configs returns the mail catalog in manifest order.
func Configs() []cfg { return configs }

var configs = []cfg{
	{
		Base: toolcfg.Base{
			Name:        "get_mail_body",
			Description: "Read the body of the current mail item.",
			Params:      map[string]toolcfg.ParamDef{},
		},
		Execute: func(_ context.Context, hc hosts.MailContext, _ map[string]any) (any, error) {
			return hc.ItemBody()
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "insert_mail_text",
			Description: "Insert text at the cursor position of the compose window.",
			Params: map[string]toolcfg.ParamDef{
				"text": {
					Type:        toolcfg.TypeString,
					Description: "Text to insert.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.MailContext, bag map[string]any) (any, error) {
			if err := hc.InsertText(args.String(bag, "text")); err != nil {
				return nil, err
			}
			return "text inserted", nil
		},
	},
}
