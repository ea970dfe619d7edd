package toolcfg

import (
	"errors"
	"fmt"
	"sort"
)

// ValidateCatalog checks the merged catalogs for configuration errors:
// duplicate tool names, missing identity fields, unknown parameter types,
// enum restrictions on non-string parameters and defaults that contradict
// the declared shape. It returns every problem found joined into one error
// so a build fails with the complete list rather than the first hit.
//
// The validation runs before manifest generation and before registry
// composition; configuration errors are fatal by policy, never deferred to
// request time.
func ValidateCatalog(catalogs ...[]Base) error {
	var errs []error
	seen := make(map[string]bool)
	for _, catalog := range catalogs {
		for _, base := range catalog {
			if base.Name == "" {
				errs = append(errs, errors.New("tool with empty name"))
				continue
			}
			if seen[base.Name] {
				errs = append(errs, fmt.Errorf("duplicate tool name %q across merged catalogs", base.Name))
			}
			seen[base.Name] = true
			if base.Description == "" {
				errs = append(errs, fmt.Errorf("tool %q: empty description", base.Name))
			}
			errs = append(errs, validateParams(base)...)
		}
	}
	return errors.Join(errs...)
}

func validateParams(base Base) []error {
	var errs []error
	for _, name := range sortedParamNames(base.Params) {
		def := base.Params[name]
		if !def.Type.Known() {
			errs = append(errs, fmt.Errorf("tool %q: param %q: unknown type %q", base.Name, name, def.Type))
			continue
		}
		if def.Enum != nil {
			if def.Type != TypeString {
				errs = append(errs, fmt.Errorf(
					"tool %q: param %q: enum is only valid on string parameters, got %q",
					base.Name, name, def.Type))
			}
			if len(def.Enum) == 0 {
				errs = append(errs, fmt.Errorf("tool %q: param %q: empty enum", base.Name, name))
			}
		}
		if def.Default != nil {
			if err := checkDefault(def); err != nil {
				errs = append(errs, fmt.Errorf("tool %q: param %q: %w", base.Name, name, err))
			}
		}
	}
	return errs
}

func checkDefault(def ParamDef) error {
	switch def.Type {
	case TypeString:
		s, ok := def.Default.(string)
		if !ok {
			return fmt.Errorf("default %v is not a string", def.Default)
		}
		if len(def.Enum) > 0 && !containsString(def.Enum, s) {
			return fmt.Errorf("default %q is not in enum", s)
		}
	case TypeNumber:
		switch def.Default.(type) {
		case int, int64, float64:
		default:
			return fmt.Errorf("default %v is not a number", def.Default)
		}
	case TypeBoolean:
		if _, ok := def.Default.(bool); !ok {
			return fmt.Errorf("default %v is not a boolean", def.Default)
		}
	case TypeStringArray:
		if _, ok := def.Default.([]string); !ok {
			return fmt.Errorf("default %v is not a string array", def.Default)
		}
	case TypeStringMatrix:
		if _, ok := def.Default.([][]string); !ok {
			return fmt.Errorf("default %v is not a string matrix", def.Default)
		}
	case TypeAnyMatrix:
		if _, ok := def.Default.([][]any); !ok {
			return fmt.Errorf("default %v is not a value matrix", def.Default)
		}
	}
	return nil
}

func sortedParamNames(params map[string]ParamDef) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
