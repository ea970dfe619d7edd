// Package manifest generates the committed JSON tool catalog consumed by the
// out-of-process test harness. Generation is a pure projection of the
// configuration records: calling it twice with the same catalogs produces
// byte-identical output except for the generation timestamp, so the artifact
// can be diffed for drift detection.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"goa.design/officetools/toolcfg"
)

// Version is the manifest schema version written by Generate unless the
// caller overrides it.
const Version = "1.0"

type (
	// Param is the serialized contract of one tool parameter. Optional keys
	// are omitted entirely when absent to keep the JSON minimal.
	Param struct {
		Type        string   `json:"type"`
		Required    bool     `json:"required"`
		Description string   `json:"description"`
		Enum        []string `json:"enum,omitempty"`
		Default     any      `json:"default,omitempty"`
	}

	// Tool is the serialized identity of one capability: the execute
	// closure is dropped, nothing else is added.
	Tool struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Params      map[string]Param `json:"params"`
	}

	// Manifest is the generated artifact.
	Manifest struct {
		Version     string `json:"version"`
		GeneratedAt string `json:"generatedAt"`
		Tools       []Tool `json:"tools"`
	}
)

// now is stubbed in tests to pin the generation timestamp.
var now = time.Now

// Generate flattens the catalogs in caller-supplied order into one manifest.
// Order is significant and preserved: downstream consumers rely on it for
// display and indexing. The merged catalogs are validated first and any
// configuration error fails generation, keeping malformed records out of the
// committed artifact.
func Generate(version string, catalogs ...[]toolcfg.Base) (*Manifest, error) {
	if version == "" {
		version = Version
	}
	if err := toolcfg.ValidateCatalog(catalogs...); err != nil {
		return nil, fmt.Errorf("manifest: invalid catalog: %w", err)
	}
	var tools []Tool
	for _, catalog := range catalogs {
		for _, base := range catalog {
			params := make(map[string]Param, len(base.Params))
			for name, def := range base.Params {
				params[name] = Param{
					Type:        string(def.Type),
					Required:    def.EffectiveRequired(),
					Description: def.Description,
					Enum:        def.Enum,
					Default:     def.Default,
				}
			}
			tools = append(tools, Tool{
				Name:        base.Name,
				Description: base.Description,
				Params:      params,
			})
		}
	}
	return &Manifest{
		Version:     version,
		GeneratedAt: now().UTC().Format(time.RFC3339),
		Tools:       tools,
	}, nil
}

// Encode writes the manifest as 2-space indented JSON with a trailing
// newline, the format committed to the repository.
func (m *Manifest) Encode(w io.Writer) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("manifest: write: %w", err)
	}
	return nil
}

// WriteFile regenerates the manifest file at path.
func (m *Manifest) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("manifest: create %s: %w", path, err)
	}
	defer f.Close()
	if err := m.Encode(f); err != nil {
		return err
	}
	return f.Close()
}
