package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"goa.design/officetools/toolcfg"
	"goa.design/officetools/toolerrs"
)

// Validator is the validating projection of one tool's parameter map: a
// compiled JSON Schema that accepts exactly the argument shapes a correct
// caller would send and rejects everything else with structured field
// issues.
type Validator struct {
	tool   string
	schema *jsonschema.Schema
}

// Compile builds a Validator for the named tool. The schema document is the
// descriptive projection of the same params, so the two projections agree by
// construction. Compilation failures are configuration errors and should be
// treated as fatal.
func Compile(tool string, params map[string]toolcfg.ParamDef) (*Validator, error) {
	raw, err := json.Marshal(Object(params))
	if err != nil {
		return nil, fmt.Errorf("marshal schema for tool %q: %w", tool, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema for tool %q: %w", tool, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource for tool %q: %w", tool, err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema for tool %q: %w", tool, err)
	}
	return &Validator{tool: tool, schema: compiled}, nil
}

// Validate checks a caller-supplied argument bag. Nil on success; a
// *toolerrs.ArgumentError enumerating every violated constraint otherwise.
// The bag must be JSON-decoded values (map[string]any, []any, float64,
// string, bool, nil).
func (v *Validator) Validate(args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}
	err := v.schema.Validate(normalize(args))
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &toolerrs.ArgumentError{
			Tool:   v.tool,
			Issues: []toolerrs.FieldIssue{{Field: "", Constraint: err.Error()}},
		}
	}
	return &toolerrs.ArgumentError{Tool: v.tool, Issues: collectIssues(ve, nil)}
}

// collectIssues flattens a validation error tree into field issues, keeping
// only leaves so each violated constraint is reported once.
func collectIssues(ve *jsonschema.ValidationError, issues []toolerrs.FieldIssue) []toolerrs.FieldIssue {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			issues = collectIssues(cause, issues)
		}
		return issues
	}
	field := strings.Join(ve.InstanceLocation, "/")
	switch k := ve.ErrorKind.(type) {
	case *kind.Required:
		for _, missing := range k.Missing {
			issues = append(issues, toolerrs.FieldIssue{
				Field:      missing,
				Constraint: "missing_field",
			})
		}
	case *kind.Type:
		issues = append(issues, toolerrs.FieldIssue{
			Field:      field,
			Constraint: "invalid_field_type",
		})
	case *kind.Enum:
		allowed := make([]string, 0, len(k.Want))
		for _, w := range k.Want {
			if s, ok := w.(string); ok {
				allowed = append(allowed, s)
			}
		}
		issues = append(issues, toolerrs.FieldIssue{
			Field:      field,
			Constraint: "invalid_enum_value",
			Allowed:    allowed,
		})
	case *kind.AdditionalProperties:
		// additionalProperties: false violations report at the object root
		// and name every unexpected key.
		for _, prop := range k.Properties {
			issues = append(issues, toolerrs.FieldIssue{
				Field:      prop,
				Constraint: "unknown_field",
			})
		}
	default:
		issues = append(issues, toolerrs.FieldIssue{
			Field:      field,
			Constraint: "invalid_value",
		})
	}
	return issues
}

// normalize re-encodes the argument bag through JSON so Go-native values
// (ints, []string, [][]any) validate the same as wire-decoded payloads.
func normalize(args map[string]any) any {
	raw, err := json.Marshal(args)
	if err != nil {
		return args
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return args
	}
	return doc
}
