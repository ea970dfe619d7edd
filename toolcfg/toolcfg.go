// Package toolcfg holds the declarative tool configuration model: one
// ToolConfig per capability, each describing its parameters with ParamDef
// records. Configurations are source-level literals, defined once at package
// init and never constructed or mutated at runtime. Every downstream
// artifact (SDK schemas, live tools, the committed manifest) is projected
// mechanically from these records.
package toolcfg

import "context"

type (
	// ParamType enumerates the primitive and array shapes a tool parameter
	// may declare.
	ParamType string

	// ParamDef is one parameter's contract. Immutable once declared.
	ParamDef struct {
		// Type selects the parameter shape.
		Type ParamType
		// Required marks the parameter mandatory. Nil means required; a
		// parameter with a Default is effectively optional regardless.
		Required *bool
		// Description is the human and LLM facing explanation.
		Description string
		// Enum restricts a string parameter to a closed value set.
		Enum []string
		// Default is the literal used when the caller omits the parameter.
		// Its presence makes the parameter effectively optional.
		Default any
	}

	// Base carries the serializable identity of a tool: everything except
	// the execute closure. Manifest generation and schema projection consume
	// Base so they can never touch host-bound code.
	Base struct {
		// Name is the catalog-wide unique identifier. Names become dispatch
		// keys and LLM-visible identifiers.
		Name string
		// Description explains purpose and usage to the model.
		Description string
		// Params maps parameter name to its contract. Insertion order is
		// irrelevant; projections sort deterministically.
		Params map[string]ParamDef
	}

	// ToolConfig binds a Base to an executable body against one host
	// context type. Execute runs inside the host's batched-request
	// primitive: all reads and writes it issues flush over a single round
	// trip when the enclosing run completes.
	ToolConfig[C any] struct {
		Base
		// Execute performs the capability against the host context using
		// the caller's argument bag. The bag has already passed the
		// validating projection when the modern SDK path is in use.
		Execute func(ctx context.Context, hc C, args map[string]any) (any, error)
	}
)

const (
	// TypeString is a JSON string.
	TypeString ParamType = "string"
	// TypeNumber is a JSON number.
	TypeNumber ParamType = "number"
	// TypeBoolean is a JSON boolean.
	TypeBoolean ParamType = "boolean"
	// TypeStringArray is an array of strings.
	TypeStringArray ParamType = "string[]"
	// TypeStringMatrix is an array of arrays of strings.
	TypeStringMatrix ParamType = "string[][]"
	// TypeAnyMatrix is an array of arrays of arbitrary JSON values. Distinct
	// from TypeStringMatrix in every projection.
	TypeAnyMatrix ParamType = "any[][]"
)

// Known reports whether t is a declared parameter type.
func (t ParamType) Known() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeStringArray, TypeStringMatrix, TypeAnyMatrix:
		return true
	}
	return false
}

// EffectiveRequired reports whether a caller must supply the parameter:
// required unless Required is explicitly false or a Default is present.
func (p ParamDef) EffectiveRequired() bool {
	if p.Default != nil {
		return false
	}
	return p.Required == nil || *p.Required
}

// Bool returns a pointer to v for use in ParamDef literals.
func Bool(v bool) *bool { return &v }

// Bases projects a ToolConfig slice onto its serializable identities,
// preserving order.
func Bases[C any](configs []ToolConfig[C]) []Base {
	bases := make([]Base, len(configs))
	for i, cfg := range configs {
		bases[i] = cfg.Base
	}
	return bases
}
