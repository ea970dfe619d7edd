// Package general declares the host-independent tools merged into every
// host's tool set. These tools touch no document object model; their run
// primitive is a pass-through that skips the batched round trip.
//
// capture_plan returns the captured plan directly as its tool result. An
// earlier design smuggled the plan to the orchestrator through a one-shot
// module-level mailbox cleared on read; the explicit return value removes
// that hidden coupling.
package general

import (
	"context"

	"goa.design/officetools/catalog/args"
	"goa.design/officetools/toolcfg"
)

type cfg = toolcfg.ToolConfig[struct{}]

// Configs returns the host-independent catalog in manifest order.
func Configs() []cfg { return configs }

// Run is the pass-through run primitive for host-independent tools: no
// request context is opened and no batch is flushed.
func Run(_ context.Context, fn func(struct{}) (any, error)) (any, error) {
	return fn(struct{}{})
}

var configs = []cfg{
	{
		Base: toolcfg.Base{
			Name:        "capture_plan",
			Description: "Record the step-by-step plan for the current task. The plan is returned to the orchestrator as the tool result.",
			Params: map[string]toolcfg.ParamDef{
				"steps": {
					Type:        toolcfg.TypeStringArray,
					Description: "Ordered plan steps.",
				},
				"rationale": {
					Type:        toolcfg.TypeString,
					Required:    toolcfg.Bool(false),
					Description: "Why this plan was chosen.",
				},
			},
		},
		Execute: func(_ context.Context, _ struct{}, bag map[string]any) (any, error) {
			plan := map[string]any{"steps": args.Strings(bag, "steps")}
			if args.Has(bag, "rationale") {
				plan["rationale"] = args.String(bag, "rationale")
			}
			return plan, nil
		},
	},
}
