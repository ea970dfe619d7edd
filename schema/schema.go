// Package schema projects ParamDef maps into the two representations the
// calling SDKs consume: a descriptive JSON-Schema object for SDK generations
// that validate nothing locally, and a compiled validator for the path that
// enforces argument shapes before a tool body runs. Both projections derive
// from the single parameter-shape mapping in this package, so they cannot
// silently diverge.
package schema

import (
	"sort"

	"goa.design/officetools/toolcfg"
)

// TypeShape returns the JSON-Schema fragment for a parameter type. The
// string-matrix and value-matrix shapes are distinct: the former constrains
// inner items to strings, the latter leaves them unconstrained.
func TypeShape(t toolcfg.ParamType) map[string]any {
	switch t {
	case toolcfg.TypeString:
		return map[string]any{"type": "string"}
	case toolcfg.TypeNumber:
		return map[string]any{"type": "number"}
	case toolcfg.TypeBoolean:
		return map[string]any{"type": "boolean"}
	case toolcfg.TypeStringArray:
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	case toolcfg.TypeStringMatrix:
		return map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		}
	case toolcfg.TypeAnyMatrix:
		return map[string]any{
			"type": "array",
			"items": map[string]any{"type": "array"},
		}
	}
	// Unknown types are rejected by toolcfg.ValidateCatalog before any
	// projection runs; an empty shape keeps the projection total.
	return map[string]any{}
}

// PropertySchema returns the full JSON-Schema fragment for one parameter:
// the type shape plus enum restriction, description and default. Enum is
// only attached to string parameters; ValidateCatalog rejects any other
// combination at build time.
func PropertySchema(def toolcfg.ParamDef) map[string]any {
	prop := TypeShape(def.Type)
	if def.Description != "" {
		prop["description"] = def.Description
	}
	if def.Type == toolcfg.TypeString && len(def.Enum) > 0 {
		values := make([]any, len(def.Enum))
		for i, v := range def.Enum {
			values[i] = v
		}
		prop["enum"] = values
	}
	if def.Default != nil {
		prop["default"] = def.Default
	}
	return prop
}

// Object builds the descriptive projection: a passive JSON-Schema object
// describing the whole argument bag. The required array lists every
// parameter that is effectively required (not marked optional and carrying
// no default), sorted for deterministic output. No validation is attached;
// conformance is trusted to the calling SDK.
func Object(params map[string]toolcfg.ParamDef) map[string]any {
	properties := make(map[string]any, len(params))
	var required []string
	for name, def := range params {
		properties[name] = PropertySchema(def)
		if def.EffectiveRequired() {
			required = append(required, name)
		}
	}
	obj := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		sort.Strings(required)
		obj["required"] = required
	}
	return obj
}
